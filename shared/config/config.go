package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do MeshWarp.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"` // 0 = usa o FPS nativo da fonte de vídeo

	// Fonte de vídeo
	VideoPath string  `json:"video_path"` // arquivo .y4m, diretório de frames ou vazio (padrão de teste)
	VideoFPS  float32 `json:"video_fps"`  // FPS declarado para fontes que não informam (sequência de imagens)

	// Malha de warp
	MeshFile string `json:"mesh_file"` // arquivo de malha (vazio = malha identidade)
	MeshRows int    `json:"mesh_rows"`
	MeshCols int    `json:"mesh_cols"`

	// Distorção
	DefaultStrength float32 `json:"default_strength"` // intensidade padrão de barrel/pincushion

	// Controle remoto (WebSocket). Vazio desativa o listener.
	RemoteAddr string `json:"remote_addr"`

	// Saída
	SnapshotDir string `json:"snapshot_dir"`
	StorePath   string `json:"store_path"` // banco SQLite de calibração

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "MeshWarp",
		Fullscreen:   false,
		TargetFPS:    0,

		VideoPath: "",
		VideoFPS:  30,

		MeshFile: "",
		MeshRows: 20,
		MeshCols: 20,

		DefaultStrength: 0.3,

		RemoteAddr: "",

		SnapshotDir: "snapshots",
		StorePath:   "meshwarp.db",

		ShowDebugInfo: true,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
