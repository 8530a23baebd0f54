package app

import (
	"fmt"
	"log"

	"MuseumVision/cliente/internal/client"
)

// connectFeed liga o cliente ao feed de acervo do servidor. O feed só
// enriquece o catálogo local; falhas aqui nunca impedem o passeio.
func (a *App) connectFeed() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro no feed de acervo: %v", r)
		}
	}()

	a.feed = client.NewFeedClient(a.Config.ServerURL, a.store, a.db)

	a.feed.OnStatus = func(msg string, ready bool, records int32) {
		state := "preparando"
		if ready {
			state = "pronto"
		}
		a.feedStatus = fmt.Sprintf("feed %s: %s (%d obras)", state, msg, records)
	}

	a.feed.OnBatch = func(added int) {
		if added > 0 {
			a.feedStatus = fmt.Sprintf("feed: +%d obras novas", added)
		}
	}

	if err := a.feed.Connect(); err != nil {
		log.Printf("[Network] feed de acervo indisponível: %v", err)
		a.feedStatus = "feed offline"
		return
	}

	// Pede obras de todos os temas das alas para engordar o acervo local.
	themes := make([]string, 0, 16)
	seen := make(map[string]bool)
	for _, region := range a.engine.Regions().All() {
		for _, theme := range region.Themes {
			if !seen[theme] {
				seen[theme] = true
				themes = append(themes, theme)
			}
		}
	}
	a.feed.RequestThemes(themes, 64)
}
