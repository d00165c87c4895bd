package main

import (
	"flag"
	"log"
	"runtime"

	"MeshWarp/player/internal/app"
	"MeshWarp/shared/config"
)

func main() {
	// IMPORTANTE para estabilidade: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	video := flag.String("video", "", "Fonte de vídeo: arquivo .y4m, diretório de imagens ou vazio (padrão de teste)")
	meshFile := flag.String("mesh", "", "Arquivo de malha de warp (vazio = malha identidade)")
	rows := flag.Int("rows", 0, "Linhas da malha identidade")
	cols := flag.Int("cols", 0, "Colunas da malha identidade")
	remote := flag.String("remote", "", "Endereço do listener de controle remoto (ex: 127.0.0.1:8750)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          MeshWarp v0.1.0             ║")
	log.Println("║  Warping de vídeo em malha 2D        ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *video != "" {
		cfg.VideoPath = *video
	}
	if *meshFile != "" {
		cfg.MeshFile = *meshFile
	}
	if *rows > 1 {
		cfg.MeshRows = *rows
	}
	if *cols > 1 {
		cfg.MeshCols = *cols
	}
	if *remote != "" {
		cfg.RemoteAddr = *remote
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	// Criar e rodar o player
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("[MeshWarp] Erro fatal: %v", err)
	}
}
