package app

import (
	"fmt"
	"log"
	"strings"

	"MuseumVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	// Mesmo tom da névoa do shader da galeria; o horizonte some sem costura.
	rl.ClearBackground(rl.NewColor(18, 15, 20, 255))

	if a.Loading {
		a.drawLoadingScreen()
	} else {
		a.drawScene()
		a.drawHUD()

		if a.State == StatePaused {
			a.drawPauseMenu()
		}
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.renderer != nil {
		a.renderer.Draw(a.Cam.RLCamera)
	}

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta: mira, faixa de localização,
// ficha da obra observada e, sob F3, o painel de diagnóstico.
func (a *App) drawHUD() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// Mira central. Dourada quando há uma obra sob o olhar.
	cross := rl.NewColor(235, 235, 235, 170)
	if a.hasPicked {
		cross = rl.Gold
	}
	cx := screenWidth / 2
	cy := screenHeight / 2
	rl.DrawLine(cx-7, cy, cx+7, cy, cross)
	rl.DrawLine(cx, cy-7, cx, cy+7, cross)

	a.drawLocationBanner()

	if a.hasPicked {
		a.drawArtworkPlacard()
	}

	// Atalhos rápidos
	rl.DrawText("WASD: Andar | Shift: Correr | R: Entrada | F3: Diagnóstico | ESC: Menu",
		10, screenHeight-28, 14, rl.SkyBlue)

	if a.Config.ShowDebugInfo {
		a.drawDebugPanel()
	}

	// Título no canto inferior direito
	title := "MuseumVision v0.1.0 - Alpha"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		screenWidth-titleWidth-20, screenHeight-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawLocationBanner mostra onde o visitante está: sala, estilo, ala e o
// ponto cardeal para onde olha.
func (a *App) drawLocationBanner() {
	name, style := a.renderer.CurrentRoomInfo()
	if name == "" {
		return
	}

	width := int32(380)
	height := int32(64)
	x := int32(10)
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 160))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(60, 55, 50, 255))

	ala := a.engine.Regions().RegionFor(a.Cam.Position())
	rl.DrawText(name, x+12, y+10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("%s · estilo %s", ala.Name, style), x+12, y+38, 14, rl.LightGray)

	// Ponto cardeal, grande, encostado à direita da faixa.
	compass := util.CompassPoint(a.Cam.YawDeg)
	compassWidth := rl.MeasureText(compass, 30)
	rl.DrawText(compass, x+width-compassWidth-14, y+16, 30, rl.Gold)
}

// drawArtworkPlacard desenha a ficha técnica da obra sob a mira, como a
// plaqueta ao lado de um quadro.
func (a *App) drawArtworkPlacard() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	width := int32(460)
	lines := wrapText(a.picked.Description, 14, width-30)

	height := int32(86) + int32(len(lines))*18
	if a.picked.Source != "" {
		height += 20
	}
	x := (screenWidth - width) / 2
	y := screenHeight - height - 60

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(255, 215, 0, 255)) // Borda Dourada

	rl.DrawText(a.picked.Title, x+15, y+12, 20, rl.RayWhite)

	credit := a.picked.Artist
	if a.picked.Year != 0 {
		credit = fmt.Sprintf("%s, %d", a.picked.Artist, a.picked.Year)
	}
	rl.DrawText(credit, x+15, y+38, 16, rl.Gold)
	rl.DrawLine(x+15, y+60, x+width-15, y+60, rl.NewColor(100, 100, 100, 255))

	textY := y + 68
	for _, line := range lines {
		rl.DrawText(line, x+15, textY, 14, rl.LightGray)
		textY += 18
	}

	if a.picked.Source != "" {
		rl.DrawText(fmt.Sprintf("Fonte: %s", a.picked.Source), x+15, textY+4, 12, rl.Gray)
	}
}

// drawDebugPanel desenha o diagnóstico do gerador e do renderizador.
func (a *App) drawDebugPanel() {
	width := int32(340)
	height := int32(250)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(fmt.Sprintf("Semente: %d", a.Config.Seed), x+140, y+14, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Informações de Localização
	rl.DrawText("VISITANTE", x+10, y+45, 12, rl.Gray)

	pos := a.Cam.Position()
	rl.DrawText(fmt.Sprintf("Posição: (%.1f, %.1f, %.1f)", pos.X(), pos.Y(), pos.Z()), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Yaw: %.0f° (%s)", util.WrapDeg(a.Cam.YawDeg), util.CompassPoint(a.Cam.YawDeg)),
		x+10, y+80, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	// Estado do gerador e do renderizador
	rl.DrawText("MUSEU", x+10, y+110, 12, rl.Gray)

	rooms, hallways := a.engine.Counts()
	rl.DrawText(fmt.Sprintf("Salas: %d | Corredores: %d", rooms, hallways), x+10, y+125, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Espaços na GPU: %d", a.renderer.SpaceCount()), x+10, y+145, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Texturas pendentes: %d | Descarte: %d",
		a.renderer.PendingTextures(), a.renderer.PurgeBacklog()), x+10, y+165, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+185, x+width-10, y+185, rl.NewColor(100, 100, 100, 100))

	// Feed de acervo
	rl.DrawText("ACERVO", x+10, y+195, 12, rl.Gray)
	feed := a.feedStatus
	if feed == "" {
		feed = "feed desligado (--sync para ativar)"
	}
	rl.DrawText(feed, x+10, y+210, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Obras no acervo local: %d", a.store.Count()), x+10, y+228, 14, rl.LightGray)
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// 1. Fundo escurecido (Dimmer)
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	// 2. Painel Central
	panelWidth := int32(400)
	panelHeight := int32(300)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	// Título do Menu
	menuTitle := "PASSEIO PAUSADO"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	// 3. Botões
	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	// Botão: RETOMAR
	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateViewing
		rl.DisableCursor()
	}

	// Botão: VOLTAR À ENTRADA
	if a.drawButton(buttonX, panelY+145, buttonWidth, buttonHeight, "VOLTAR À ENTRADA", rl.Gray) {
		a.Cam.Teleport(entranceSpawn())
		a.State = StateViewing
		rl.DisableCursor()
		log.Println("[App] Visitante voltou ao salão de entrada pelo menu.")
	}

	// Botão: SAIR
	if a.drawButton(buttonX, panelY+200, buttonWidth, buttonHeight, "SAIR DO MUSEU", rl.Red) {
		log.Println("[App] Encerrando aplicação pelo menu.")
		a.quit = true
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R += 30
		drawColor.G += 30
		drawColor.B += 30
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (a *App) drawLoadingScreen() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// Fundo
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(18, 15, 20, 255))

	// Título
	title := "MUSEUMVISION"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-60, 40, rl.Gold)

	// Desenha barra de progresso
	barWidth := int32(400)
	barHeight := int32(30)
	barX := (screenWidth - barWidth) / 2
	barY := screenHeight/2 + 20

	rl.DrawRectangle(barX, barY, barWidth, barHeight, rl.DarkGray)
	rl.DrawRectangle(barX, barY, int32(float32(barWidth)*a.LoadingProgress), barHeight, rl.Orange)
	rl.DrawRectangleLines(barX, barY, barWidth, barHeight, rl.White)

	// Status
	statusWidth := rl.MeasureText(a.LoadingStatus, 18)
	rl.DrawText(a.LoadingStatus, (screenWidth-statusWidth)/2, barY+45, 18, rl.LightGray)

	// Rodapé
	tip := "Pressione ESPAÇO para entrar já com o acervo embutido."
	tipWidth := rl.MeasureText(tip, 16)
	rl.DrawText(tip, (screenWidth-tipWidth)/2, screenHeight-50, 16, rl.Gray)
}

// wrapText quebra o texto em linhas que caibam em maxWidth pixels.
func wrapText(text string, fontSize, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 3)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if rl.MeasureText(candidate, fontSize) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
