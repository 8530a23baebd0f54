package main

import (
	"log"
	"time"

	"MuseumVision/shared/catalog"

	"gorm.io/gorm"
)

// featuredBatchSize limita o lote do tema em destaque.
const featuredBatchSize = 16

// Curator vigia o acervo e alimenta o feed: difunde obras recém-gravadas no
// banco e, de tempos em tempos, um tema em destaque. É o que permite a um
// operador inserir obras no banco do servidor e vê-las chegar aos visitantes
// conectados sem reinício.
type Curator struct {
	db  *gorm.DB
	hub *Hub

	lastCheck time.Time
	themes    []string
	themeIdx  int
}

func NewCurator(db *gorm.DB, h *Hub) *Curator {
	return &Curator{
		db:        db,
		hub:       h,
		lastCheck: time.Now(),
	}
}

func (c *Curator) Start() {
	go c.loop()
}

func (c *Curator) loop() {
	log.Println("[Curator] Iniciando rondas do acervo...")
	c.refreshThemes()

	round := 0
	for {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Curator] Recuperado de pânico: %v", r)
				}
			}()

			// Sem visitantes não há pra quem difundir; o banco espera.
			if c.hub.clientCount() == 0 {
				return
			}

			c.pushNewArrivals()

			// A cada terceira ronda um tema em destaque circula pelo feed.
			if round%3 == 2 {
				c.pushFeatured()
			}
		}()

		round++
		time.Sleep(20 * time.Second)
	}
}

// pushNewArrivals difunde obras gravadas no banco desde a última ronda.
func (c *Curator) pushNewArrivals() {
	since := c.lastCheck
	c.lastCheck = time.Now()

	recs, err := catalog.LoadUpdatedSince(c.db, since)
	if err != nil {
		log.Printf("[Curator] AVISO: leitura de novidades falhou: %v", err)
		return
	}
	if len(recs) == 0 {
		return
	}

	log.Printf("[Curator] %d obras novas no acervo; difundindo ao feed", len(recs))
	c.hub.BroadcastBatch(recs)

	if count, err := catalog.CountRecords(c.db); err == nil {
		c.hub.BroadcastStatus("Acervo atualizado", true, int32(count))
	}
	c.refreshThemes()
}

// pushFeatured difunde um pequeno lote do próximo tema da rotação. Obras
// repetidas são inofensivas: o acervo do cliente deduplica por ID.
func (c *Curator) pushFeatured() {
	if len(c.themes) == 0 {
		return
	}

	theme := c.themes[c.themeIdx%len(c.themes)]
	c.themeIdx++

	recs, err := catalog.LoadByThemes(c.db, []string{theme})
	if err != nil {
		log.Printf("[Curator] AVISO: consulta do destaque '%s' falhou: %v", theme, err)
		return
	}
	if len(recs) > featuredBatchSize {
		recs = recs[:featuredBatchSize]
	}

	log.Printf("[Curator] Tema em destaque '%s': %d obras ao feed", theme, len(recs))
	c.hub.BroadcastBatch(recs)
}

// refreshThemes reconstrói a rotação de temas a partir do acervo.
func (c *Curator) refreshThemes() {
	recs, err := catalog.LoadRecords(c.db)
	if err != nil {
		log.Printf("[Curator] AVISO: leitura do acervo falhou: %v", err)
		return
	}

	seen := make(map[string]bool)
	themes := make([]string, 0, 16)
	for _, rec := range recs {
		for _, theme := range rec.Themes {
			if !seen[theme] {
				seen[theme] = true
				themes = append(themes, theme)
			}
		}
	}
	c.themes = themes
}
