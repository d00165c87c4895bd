package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza um frame completo: plano de warp e HUD.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(a.camera)
	a.renderer.Draw()
	rl.EndMode3D()

	a.drawHUD()

	if a.State == StatePaused {
		a.drawPausedBanner()
	}

	rl.EndDrawing()
}

// drawHUD desenha o painel de debug sobreposto.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(330)
	height := int32(170)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 20 {
		fpsColor = rl.Red
	} else if fps < 30 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	// Fonte
	w, h := a.source.Size()
	rl.DrawText(fmt.Sprintf("Fonte: %dx%d @ %.1f fps", w, h, a.source.FPS()),
		x+10, y+35, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+55, x+width-10, y+55, rl.NewColor(100, 100, 100, 100))

	// Malha de warp
	rl.DrawText("MALHA", x+10, y+62, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("%dx%d nós | %d strips | %d quads",
		a.warp.Rows, a.warp.Cols, a.lastResult.Strips, a.lastResult.Quads),
		x+10, y+77, 14, rl.White)

	distortion := "nenhuma"
	if a.lastDistortion != "" {
		distortion = fmt.Sprintf("%s %.2f", a.lastDistortion, a.lastStrength)
	}
	rl.DrawText(fmt.Sprintf("Distorção: %s", distortion), x+10, y+95, 14, rl.LightGray)

	if a.lastCmdInfo != "" {
		rl.DrawText(fmt.Sprintf("Último comando: %s", a.lastCmdInfo), x+10, y+112, 14, rl.LightGray)
	}

	remoteStr := "Remoto: desligado"
	remoteColor := rl.Gray
	if a.remoteOn {
		remoteStr = fmt.Sprintf("Remoto: ws://%s/ws", a.Config.RemoteAddr)
		remoteColor = rl.SkyBlue
	}
	rl.DrawText(remoteStr, x+10, y+129, 14, remoteColor)

	// Atalhos
	rl.DrawText("B/P: Distorcer | R: Reset | Espaço: Pausa", x+10, y+149, 13, rl.SkyBlue)
}

// drawPausedBanner indica o estado pausado no centro da tela.
func (a *App) drawPausedBanner() {
	text := "PAUSADO"
	size := int32(40)
	tw := rl.MeasureText(text, size)
	x := (int32(rl.GetScreenWidth()) - tw) / 2
	y := int32(rl.GetScreenHeight()) - 80

	rl.DrawRectangle(x-20, y-10, tw+40, size+20, rl.NewColor(0, 0, 0, 180))
	rl.DrawText(text, x, y, size, rl.Yellow)
}
