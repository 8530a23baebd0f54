package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"MuseumVision/cliente/internal/app"
	"MuseumVision/shared/config"
)

func main() {
	// IMPORTANTE para estabilidade no Windows: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	serverURL := flag.String("server", "", "URL do feed de acervo (padrão: ws://127.0.0.1:8091/feed)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar o painel de diagnóstico")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	seed := flag.Int64("seed", 0, "Semente do gerador (0 = semente do relógio)")
	sync := flag.Bool("sync", false, "Sincronizar o acervo com o servidor ao abrir")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_mv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		log.Println("--- INICIANDO MUSEUM VISION ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║        MuseumVision v0.1.0           ║")
	log.Println("║   Museu de arte infinito e procedural║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
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
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *sync {
		cfg.CatalogSync = true
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	application.Run()
}
