package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do MuseumVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Acervo
	CatalogDBPath string `json:"catalog_db_path"`

	// Feed de acervo (Usado pelo Cliente)
	ServerURL   string `json:"server_url"`
	CatalogSync bool   `json:"catalog_sync"`

	// Servidor de catálogo
	ListenAddr string `json:"listen_addr"`

	// Geração do museu
	Seed               int64   `json:"seed"`
	RoomSpacing        float32 `json:"room_spacing"`
	GenerationDistance float32 `json:"generation_distance"`
	MaxRenderDistance  float32 `json:"max_render_distance"`

	// Câmera
	FOV              float32 `json:"fov"`
	MoveSpeed        float32 `json:"move_speed"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`

	// Texturas das obras
	TextureWorkers int `json:"texture_workers"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "MuseumVision",
		Fullscreen:   false,
		TargetFPS:    60,

		CatalogDBPath: "acervo/catalogo.db",

		ServerURL:   "ws://127.0.0.1:8091/feed",
		CatalogSync: false,

		ListenAddr: ":8091",

		Seed:               0,
		RoomSpacing:        30.0,
		GenerationDistance: 60.0,
		MaxRenderDistance:  80.0,

		FOV:              70.0,
		MoveSpeed:        6.0,
		MouseSensitivity: 0.15,

		TextureWorkers: 2,

		ShowDebugInfo: false,
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
