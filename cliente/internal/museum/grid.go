package museum

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// CellKey é a célula quantizada da grade de ocupação: cada coordenada de
// mundo arredondada para o inteiro mais próximo.
type CellKey struct {
	X, Y, Z int32
}

// KeyOf quantiza uma posição de mundo para sua célula.
func KeyOf(pos mgl32.Vec3) CellKey {
	return CellKey{
		X: int32(math.Round(float64(pos.X()))),
		Y: int32(math.Round(float64(pos.Y()))),
		Z: int32(math.Round(float64(pos.Z()))),
	}
}

// OccupancyGrid impede geração sobreposta: no máximo um espaço por célula.
// O motor verifica a célula vazia e registra o ocupante dentro do mesmo
// trecho protegido pelo seu mutex, de modo que dois passos de expansão nunca
// intercalem verificação e registro sobre a mesma célula.
type OccupancyGrid struct {
	mu    sync.RWMutex
	cells map[CellKey]*Space
}

// NewOccupancyGrid cria uma grade vazia.
func NewOccupancyGrid() *OccupancyGrid {
	return &OccupancyGrid{cells: make(map[CellKey]*Space)}
}

// Get retorna o ocupante da célula da posição, ou nil se vazia.
func (g *OccupancyGrid) Get(pos mgl32.Vec3) *Space {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[KeyOf(pos)]
}

// Set registra o ocupante da célula da posição.
func (g *OccupancyGrid) Set(pos mgl32.Vec3, s *Space) {
	g.mu.Lock()
	g.cells[KeyOf(pos)] = s
	g.mu.Unlock()
}

// Remove libera a célula da posição. Chamado pela evicção no mesmo passo que
// descarta a geometria, para que a célula volte a ser gerável.
func (g *OccupancyGrid) Remove(pos mgl32.Vec3) {
	g.mu.Lock()
	delete(g.cells, KeyOf(pos))
	g.mu.Unlock()
}

// Len retorna o número de células ocupadas.
func (g *OccupancyGrid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.cells)
}
