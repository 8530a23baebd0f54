package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"gorm.io/gorm"

	"MuseumVision/cliente/internal/camera"
	"MuseumVision/cliente/internal/client"
	"MuseumVision/cliente/internal/museum"
	"MuseumVision/cliente/internal/render"
	"MuseumVision/shared/catalog"
	"MuseumVision/shared/config"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Abrindo acervo e gerando o layout inicial
	StateViewing                 // Passeando pelo museu
	StatePaused                  // Menu de pausa
)

// App é a aplicação principal do MuseumVision.
type App struct {
	Config *config.Config
	State  AppState

	Cam *camera.Controller

	store    *catalog.Store
	db       *gorm.DB
	feed     *client.FeedClient
	renderer *render.Renderer
	engine   *museum.LayoutEngine

	// Obra sob o retículo, para o painel de informação.
	picked    catalog.Record
	hasPicked bool

	// Estado da tela de carregamento. Escrito pela goroutine de boot do
	// acervo, lido pelo draw.
	Loading         bool
	LoadingStatus   string
	LoadingProgress float32
	catalogReady    bool

	// Última mensagem do feed de acervo, para o overlay de debug.
	feedStatus string

	quit bool
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:        cfg,
		State:         StateLoading,
		Loading:       true,
		LoadingStatus: "Preparando o museu...",
	}
}

// entranceSpawn é o ponto onde o visitante nasce e para onde o atalho de
// retorno o leva: o centro do salão de entrada, na altura dos olhos.
func entranceSpawn() mgl32.Vec3 {
	return mgl32.Vec3{0, museum.EyeHeight, 0}
}

// Run inicia a janela e o laço principal. Bloqueia até o usuário sair.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)
	rl.DisableCursor()

	a.Cam = camera.New(entranceSpawn(), a.Config.FOV, a.Config.MoveSpeed, a.Config.MouseSensitivity)

	log.Printf("[App] janela pronta: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.store = catalog.NewStore()
	a.renderer = render.NewRenderer(a.Config.TextureWorkers)
	a.engine = museum.NewLayoutEngine(
		a.renderer,
		a.store,
		museum.NewRegionMap(museum.DefaultRegions()),
		museum.NewRand(a.Config.Seed),
		museum.EngineOptions{
			RoomSpacing:        a.Config.RoomSpacing,
			GenerationDistance: a.Config.GenerationDistance,
			MaxRenderDistance:  a.Config.MaxRenderDistance,
			ProximityThreshold: 5,
		},
	)

	go a.bootCatalog()

	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update avança a lógica de um quadro.
func (a *App) update() {
	switch a.State {
	case StateLoading:
		a.updateLoading()
	case StateViewing:
		a.renderer.ProcessPurge()
		a.renderer.ProcessTextureResults()
		a.updateCamera()
		a.updateInput()
		a.updateMuseum()
	case StatePaused:
		a.updateInput()
	}
}

// updateLoading espera o acervo ficar pronto e então gera o layout inicial
// na thread principal, onde os modelos podem subir à GPU.
func (a *App) updateLoading() {
	if rl.IsKeyPressed(rl.KeySpace) && !a.catalogReady {
		log.Printf("[App] espera do acervo pulada; usando coleção embutida")
		if a.store.Count() == 0 {
			a.store.AddAll(catalog.DefaultCollection())
		}
		a.catalogReady = true
	}

	if !a.catalogReady {
		return
	}

	a.LoadingStatus = "Gerando o salão de entrada..."
	a.LoadingProgress = 0.9
	a.engine.GenerateInitialLayout()

	a.Loading = false
	a.LoadingProgress = 1.0
	a.State = StateViewing
	log.Printf("[App] museu aberto: %d obras no acervo", a.store.Count())
}

// shutdown libera recursos na ordem inversa da criação.
func (a *App) shutdown() {
	log.Printf("[App] encerrando...")

	if a.feed != nil {
		a.feed.Close()
	}
	if a.renderer != nil {
		a.renderer.Unload()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if err := a.Config.Save(); err != nil {
		log.Printf("[App] erro ao salvar configurações: %v", err)
	}
}
