package app

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"MeshWarp/player/internal/mesh"
	"MeshWarp/player/internal/meshing"
	"MeshWarp/player/internal/render"
	"MeshWarp/player/internal/video"
	"MeshWarp/shared/config"
	"MeshWarp/shared/store"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis do player.
type AppState int

const (
	StatePlaying AppState = iota // Reproduzindo e deformando o vídeo
	StatePaused                  // Congelado no último frame
)

// App é o player MeshWarp: mantém a malha de warp, a fonte de vídeo e o
// backend de renderização, e consome comandos discretos entre frames.
type App struct {
	Config *config.Config
	State  AppState

	source   video.Source
	renderer *render.Renderer
	camera   rl.Camera3D

	// Malha de warp (propriedade exclusiva da engine)
	warp            *mesh.Mesh
	meshPath        string // lembrado para que reset signifique "recarregar do arquivo"
	aspect          float32
	uploadedVersion uint64

	// Calibração persistida por fonte
	cal            *store.Store
	sourceKey      string
	lastDistortion mesh.Distortion
	lastStrength   float32

	// Comandos (teclado + remoto), drenados no topo de cada tick
	commands chan Command
	quit     bool
	remoteOn bool

	// Informações de debug/HUD
	frameCount  int
	lastResult  meshing.Result
	lastCmdInfo string
}

// New cria uma nova instância do player.
func New(cfg *config.Config) *App {
	return &App{
		Config:   cfg,
		State:    StatePlaying,
		commands: make(chan Command, 16),
	}
}

// Run abre a fonte de vídeo, inicializa a janela e roda o loop principal.
// Apenas a falha de abertura da fonte aborta a sessão; todo o resto é
// recuperado ou degradado com aviso.
func (a *App) Run() error {
	src, err := video.Open(a.Config.VideoPath, a.Config.VideoFPS)
	if err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	a.source = src
	a.sourceKey = sourceKey(a.Config.VideoPath)

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal
	rl.SetExitKey(0)                   // Q/ESC passam pelo despacho de comandos

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	fps := a.source.FPS()
	if a.Config.TargetFPS > 0 {
		fps = float32(a.Config.TargetFPS)
	}
	if fps <= 0 {
		fps = 30
	}
	rl.SetTargetFPS(int32(fps))

	w, h := a.source.Size()
	log.Printf("[App] Fonte de vídeo: %dx%d @ %.2f fps", w, h, fps)

	a.renderer = render.NewRenderer(w, h)
	a.camera = render.Camera()
	a.aspect = mesh.AspectOf(w, h)

	a.buildInitialMesh()
	a.openStore()

	if a.Config.RemoteAddr != "" {
		a.startRemote()
	}

	// Loop principal
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
	return nil
}

// buildInitialMesh monta a malha de partida: arquivo configurado (com
// fallback identidade contido no loader) ou identidade pura.
func (a *App) buildInitialMesh() {
	if a.Config.MeshFile != "" {
		a.meshPath = a.Config.MeshFile
		a.warp = mesh.Load(a.meshPath, a.Config.MeshRows, a.Config.MeshCols, a.aspect)
		log.Printf("[App] Malha carregada de %s (%dx%d nós)", a.meshPath, a.warp.Rows, a.warp.Cols)
		return
	}
	a.warp = mesh.NewIdentity(a.Config.MeshRows, a.Config.MeshCols, a.aspect)
	log.Printf("[App] Malha identidade %dx%d gerada (aspecto %.3f)", a.warp.Rows, a.warp.Cols, a.aspect)
}

// openStore abre o banco de calibração e reaplica a última distorção
// usada com esta fonte. Falhas aqui são avisos, nunca fatais.
func (a *App) openStore() {
	st, err := store.Open(a.Config.StorePath)
	if err != nil {
		log.Printf("[App] AVISO: banco de calibração indisponível: %v", err)
		return
	}
	a.cal = st

	cal, err := st.Load(a.sourceKey)
	if err != nil {
		return // fonte sem calibração salva
	}
	if kind := mesh.Distortion(cal.Distortion); kind != mesh.DistortionNone {
		if err := a.warp.Apply(kind, cal.Strength); err != nil {
			log.Printf("[App] AVISO: calibração salva inválida: %v", err)
			return
		}
		a.lastDistortion = kind
		a.lastStrength = cal.Strength
		log.Printf("[App] Calibração restaurada: %s %.2f", cal.Distortion, cal.Strength)
	}
}

// update processa um tick: comandos, tesselação se necessário e o frame.
func (a *App) update() {
	a.frameCount++

	a.handleInput()
	a.drainCommands()

	// Reenvia a geometria somente quando algum comando mutou a malha
	if a.warp.Version() != a.uploadedVersion {
		a.lastResult = meshing.Tessellate(a.warp)
		a.renderer.UploadGeometry(a.lastResult.Geometry)
		a.uploadedVersion = a.warp.Version()
	}

	if a.State == StatePlaying {
		a.readFrame()
	}
}

// drainCommands aplica todos os comandos pendentes entre frames.
func (a *App) drainCommands() {
	for {
		select {
		case cmd := <-a.commands:
			a.applyCommand(cmd)
		default:
			return
		}
	}
}

func (a *App) enqueue(cmd Command) {
	select {
	case a.commands <- cmd:
	default:
		log.Printf("[App] AVISO: fila de comandos cheia, %s descartado", cmd)
	}
}

func (a *App) applyCommand(cmd Command) {
	a.lastCmdInfo = cmd.String()

	switch cmd.Kind {
	case CmdBarrel:
		a.warp.ApplyBarrel(cmd.Strength)
		a.lastDistortion = mesh.DistortionBarrel
		a.lastStrength = cmd.Strength
		a.saveCalibration()
		log.Printf("[App] Distorção barrel aplicada (%.2f)", cmd.Strength)

	case CmdPincushion:
		a.warp.ApplyPincushion(cmd.Strength)
		a.lastDistortion = mesh.DistortionPincushion
		a.lastStrength = cmd.Strength
		a.saveCalibration()
		log.Printf("[App] Distorção pincushion aplicada (%.2f)", cmd.Strength)

	case CmdReset:
		// Reset recarrega do arquivo quando há um; só sem arquivo a
		// identidade é regenerada. As duas operações não se misturam.
		if a.meshPath != "" {
			a.warp = mesh.Load(a.meshPath, a.Config.MeshRows, a.Config.MeshCols, a.aspect)
			log.Printf("[App] Malha recarregada de %s", a.meshPath)
		} else {
			a.warp = mesh.NewIdentity(a.Config.MeshRows, a.Config.MeshCols, a.aspect)
			log.Printf("[App] Malha identidade regenerada")
		}
		a.uploadedVersion = 0
		a.lastDistortion = mesh.DistortionNone
		a.lastStrength = 0
		a.saveCalibration()

	case CmdPause:
		a.State = StatePaused
		log.Printf("[App] Pausado")

	case CmdResume:
		a.State = StatePlaying
		log.Printf("[App] Retomando reprodução")

	case CmdTogglePause:
		if a.State == StatePaused {
			a.State = StatePlaying
			log.Printf("[App] Retomando reprodução")
		} else {
			a.State = StatePaused
			log.Printf("[App] Pausado")
		}

	case CmdSnapshot:
		path, err := a.renderer.Snapshot(a.Config.SnapshotDir)
		if err != nil {
			log.Printf("[App] AVISO: snapshot falhou: %v", err)
		} else {
			log.Printf("[App] Snapshot gravado em %s", path)
		}

	case CmdSaveMesh:
		path := filepath.Join(a.Config.SnapshotDir,
			fmt.Sprintf("malha_%s.mesh", time.Now().Format("20060102_150405")))
		if err := mesh.Save(path, a.warp); err != nil {
			log.Printf("[App] AVISO: falha ao salvar malha: %v", err)
		} else {
			log.Printf("[App] Malha salva em %s", path)
		}

	case CmdQuit:
		a.quit = true
	}
}

// readFrame puxa um frame da fonte e o envia para a textura. No fim do
// stream (ou falha de decodificação) volta ao início e tenta uma vez; a
// segunda falha consecutiva encerra a sessão graciosamente.
func (a *App) readFrame() {
	pixels, err := a.source.NextFrame()
	if err != nil {
		if err != video.ErrEndOfStream {
			log.Printf("[App] AVISO: falha ao ler frame: %v", err)
		}
		if rwErr := a.source.Rewind(); rwErr != nil {
			log.Printf("[App] Falha ao reposicionar a fonte (%v), encerrando", rwErr)
			a.quit = true
			return
		}
		pixels, err = a.source.NextFrame()
		if err != nil {
			log.Printf("[App] Segunda falha consecutiva de leitura (%v), encerrando", err)
			a.quit = true
			return
		}
	}
	a.renderer.UpdateFrame(pixels)
}

// saveCalibration persiste a distorção corrente para esta fonte.
func (a *App) saveCalibration() {
	if a.cal == nil {
		return
	}
	a.cal.Save(&store.Calibration{
		ID:         a.sourceKey,
		MeshFile:   a.meshPath,
		Distortion: string(a.lastDistortion),
		Strength:   a.lastStrength,
	})
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando player...")

	a.saveCalibration()
	a.cal.Close()
	a.source.Close()
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}

// sourceKey identifica uma fonte no banco de calibração.
func sourceKey(path string) string {
	if path == "" {
		return "pattern"
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
