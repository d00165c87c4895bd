package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// remoto envia um comando único para um player MeshWarp em execução.
//
//	remoto -cmd barrel -strength 0.4
//	remoto -cmd reset
func main() {
	addr := flag.String("addr", "127.0.0.1:8750", "Endereço do player (host:porta)")
	cmd := flag.String("cmd", "", "Comando: barrel, pincushion, reset, pause, resume, snapshot, save-mesh, quit")
	strength := flag.Float64("strength", 0.3, "Intensidade da distorção (barrel/pincushion)")
	flag.Parse()

	if *cmd == "" {
		log.Fatal("[Remoto] Informe um comando com -cmd")
	}

	url := fmt.Sprintf("ws://%s/ws", *addr)
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var conn *websocket.Conn
	var err error
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		conn, _, err = dialer.Dial(url, nil)
		if err == nil {
			break
		}
		log.Printf("[Remoto] Tentativa %d/%d falhou: %v", i+1, maxRetries, err)
		time.Sleep(time.Second)
	}
	if err != nil {
		log.Fatalf("[Remoto] Não foi possível conectar em %s: %v", url, err)
	}
	defer conn.Close()

	s := float32(*strength)
	msg := struct {
		Cmd      string   `json:"cmd"`
		Strength *float32 `json:"strength,omitempty"`
	}{Cmd: *cmd}
	if *cmd == "barrel" || *cmd == "pincushion" {
		msg.Strength = &s
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Fatalf("[Remoto] Falha ao montar mensagem: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Fatalf("[Remoto] Falha ao enviar comando: %v", err)
	}

	log.Printf("[Remoto] Comando %q enviado para %s", *cmd, url)
}
