package app

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// startRemote sobe o listener WebSocket de controle remoto. As mensagens
// são JSON {"cmd": "...", "strength": ...} e alimentam a mesma fila de
// comandos do teclado; o loop de render continua sendo o único lugar que
// toca a malha.
func (a *App) startRemote() {
	addr := a.Config.RemoteAddr
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", a.handleRemote)

	go func() {
		log.Printf("[Remote] Escutando comandos em ws://%s/ws", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("[Remote] Listener encerrado: %v", err)
		}
	}()

	a.remoteOn = true
}

// handleRemote atende uma conexão de controle até o cliente desligar.
func (a *App) handleRemote(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Remote] Falha no upgrade de %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	log.Printf("[Remote] Controle conectado: %s", conn.RemoteAddr())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[Remote] Controle desconectado: %s", conn.RemoteAddr())
			return
		}

		cmd, err := parseRemoteCommand(data, a.Config.DefaultStrength)
		if err != nil {
			// Mensagem malformada não derruba a conexão nem o player
			log.Printf("[Remote] AVISO: %v", err)
			continue
		}
		a.enqueue(cmd)
	}
}
