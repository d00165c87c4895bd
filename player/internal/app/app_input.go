package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput traduz o teclado em comandos. Os comandos entram na mesma
// fila do canal remoto e só são aplicados entre frames.
func (a *App) handleInput() {
	// B - distorção de barril com a intensidade padrão
	if rl.IsKeyPressed(rl.KeyB) {
		a.enqueue(Command{Kind: CmdBarrel, Strength: a.Config.DefaultStrength})
	}

	// P - distorção de almofada
	if rl.IsKeyPressed(rl.KeyP) {
		a.enqueue(Command{Kind: CmdPincushion, Strength: a.Config.DefaultStrength})
	}

	// R - reset (recarrega do arquivo ou regenera identidade)
	if rl.IsKeyPressed(rl.KeyR) {
		a.enqueue(Command{Kind: CmdReset})
	}

	// SPACE - pausa/retoma
	if rl.IsKeyPressed(rl.KeySpace) {
		a.enqueue(Command{Kind: CmdTogglePause})
	}

	// S - salva a malha corrente no formato versão 2
	if rl.IsKeyPressed(rl.KeyS) {
		a.enqueue(Command{Kind: CmdSaveMesh})
	}

	// F10 - snapshot WebP da saída deformada
	if rl.IsKeyPressed(rl.KeyF10) {
		a.enqueue(Command{Kind: CmdSnapshot})
	}

	// Q/ESC - sair
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.enqueue(Command{Kind: CmdQuit})
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
}
