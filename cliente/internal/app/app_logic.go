package app

import (
	"fmt"
	"log"

	"MuseumVision/shared/catalog"
)

// bootCatalog abre o banco do acervo em background e preenche o Store em
// memória. Qualquer falha degrada para a coleção embutida; o museu nunca
// abre vazio.
func (a *App) bootCatalog() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro no boot do acervo: %v", r)
			a.LoadingStatus = "Falha no acervo; usando coleção embutida"
			a.store.AddAll(catalog.DefaultCollection())
			a.catalogReady = true
		}
	}()

	a.LoadingStatus = "Abrindo acervo..."
	a.LoadingProgress = 0.2

	db, err := catalog.OpenInitialize(a.Config.CatalogDBPath)
	if err != nil {
		log.Printf("[App] AVISO: acervo sem banco (%v); usando coleção embutida", err)
		a.store.AddAll(catalog.DefaultCollection())
	} else {
		a.db = db
		recs, err := catalog.LoadRecords(db)
		if err != nil || len(recs) == 0 {
			log.Printf("[App] AVISO: leitura do acervo falhou (%v); usando coleção embutida", err)
			a.store.AddAll(catalog.DefaultCollection())
		} else {
			a.store.AddAll(recs)
		}
	}

	a.LoadingProgress = 0.7
	a.LoadingStatus = fmt.Sprintf("Acervo pronto: %d obras", a.store.Count())
	a.catalogReady = true

	if a.Config.CatalogSync {
		a.connectFeed()
	}
}

// updateMuseum roda a manutenção do gerador a cada quadro: evicção e LOD pela
// posição do visitante, e a leitura da obra sob o retículo. A varredura
// percorre só os espaços vivos, algumas dezenas no pior caso.
func (a *App) updateMuseum() {
	a.engine.Update(a.Cam.Position())
	a.picked, a.hasPicked = a.renderer.PickCenter(a.Cam.RLCamera)
}
