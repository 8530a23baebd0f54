package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera processa o movimento do visitante. Cada quadro com
// deslocamento dispara a checagem de expansão do museu na direção andada.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	if dir, moved := a.Cam.HandleInput(dt); moved {
		a.engine.CheckAndGenerateNewRooms(a.Cam.Position(), a.Cam.YawDeg, dir)
	}

	a.Cam.Update(dt)
}

// updateInput processa teclas globais de interface.
func (a *App) updateInput() {
	// Toggle do overlay de debug
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Tela cheia
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Voltar ao salão de entrada
	if a.State == StateViewing && rl.IsKeyPressed(rl.KeyR) {
		a.Cam.Teleport(entranceSpawn())
		log.Printf("[App] visitante voltou ao salão de entrada")
	}

	// ESC alterna pausa; a pausa devolve o cursor para o menu
	if rl.IsKeyPressed(rl.KeyEscape) {
		switch a.State {
		case StateViewing:
			a.State = StatePaused
			rl.EnableCursor()
			log.Printf("[App] pausado")
		case StatePaused:
			a.State = StateViewing
			rl.DisableCursor()
			log.Printf("[App] retomando passeio")
		}
	}
}
