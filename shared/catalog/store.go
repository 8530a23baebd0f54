// Package catalog mantém o acervo de obras: registros em memória para o
// posicionador de quadros, persistência em sqlite e a coleção padrão
// embutida usada no primeiro boot.
package catalog

import (
	"log"
	"sync"
)

// FallbackTheme é o tema usado quando nenhum dos temas pedidos tem obras.
const FallbackTheme = "general"

// Record descreve uma obra do acervo. URL aponta para a imagem da obra;
// esquema "procgen://" indica uma tela sintetizada localmente.
type Record struct {
	ID          string
	Title       string
	Artist      string
	Description string
	Year        int
	Source      string
	URL         string
	Themes      []string
	Fallback    bool
}

// Shuffler embaralha índices; a fonte de aleatoriedade do gerador satisfaz
// esta interface, mantendo a seleção reproduzível sob semente fixa.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Store é o acervo em memória, indexado por tema.
type Store struct {
	mu      sync.RWMutex
	byTheme map[string][]Record
	byID    map[string]bool
	total   int
}

// NewStore cria um acervo vazio.
func NewStore() *Store {
	return &Store{
		byTheme: make(map[string][]Record),
		byID:    make(map[string]bool),
	}
}

// Add registra uma obra sob cada um de seus temas. Obras já conhecidas
// (mesmo ID) são ignoradas; o feed reenvia lotes inteiros com frequência.
func (s *Store) Add(rec Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byID[rec.ID] {
		return false
	}
	s.byID[rec.ID] = true
	s.total++

	themes := rec.Themes
	if len(themes) == 0 {
		themes = []string{FallbackTheme}
	}
	for _, theme := range themes {
		s.byTheme[theme] = append(s.byTheme[theme], rec)
	}
	return true
}

// AddAll registra um lote de obras e retorna quantas eram novas.
func (s *Store) AddAll(recs []Record) int {
	added := 0
	for _, rec := range recs {
		if s.Add(rec) {
			added++
		}
	}
	return added
}

// ImagesFor retorna até count obras para o conjunto de temas. Os temas são
// unidos em um único pool (sem repetir obras presentes em mais de um tema),
// o pool é embaralhado e cortado em count. Pool vazio cai para o tema
// "general"; temas desconhecidos contribuem com zero obras, sem erro.
func (s *Store) ImagesFor(themes []string, count int, rng Shuffler) []Record {
	if count <= 0 {
		return nil
	}

	s.mu.RLock()
	pool := make([]Record, 0, count)
	seen := make(map[string]bool)
	for _, theme := range themes {
		for _, rec := range s.byTheme[theme] {
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			pool = append(pool, rec)
		}
	}
	if len(pool) == 0 {
		log.Printf("[Catalog] AVISO: nenhum tema de %v tem obras, usando pool '%s'", themes, FallbackTheme)
		pool = append(pool, s.byTheme[FallbackTheme]...)
	}
	s.mu.RUnlock()

	if rng != nil {
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// Count retorna o total de obras distintas no acervo.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// ThemeCount retorna quantas obras estão registradas sob um tema.
func (s *Store) ThemeCount(theme string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byTheme[theme])
}
