package museum

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Region é uma ala temática estática do museu. O raio é informativo: a
// classificação de posições é sempre por centro mais próximo, nunca limitada
// pelo raio.
type Region struct {
	Name      string
	Style     string
	Center    mgl32.Vec3
	Radius    float32
	Templates []string
	Themes    []string
}

// RegionMap classifica posições de mundo em alas por centro mais próximo.
// As regiões são definidas na inicialização e nunca mudam.
type RegionMap struct {
	regions []Region
}

// NewRegionMap cria o mapa. Lista vazia usa as alas padrão.
func NewRegionMap(regions []Region) *RegionMap {
	if len(regions) == 0 {
		regions = DefaultRegions()
	}
	return &RegionMap{regions: regions}
}

// First retorna a primeira ala registrada, usada pela sala de entrada.
func (m *RegionMap) First() Region {
	return m.regions[0]
}

// All retorna as alas na ordem de registro.
func (m *RegionMap) All() []Region {
	return m.regions
}

// RegionFor retorna a ala cujo centro é o mais próximo da posição
// (distância euclidiana 3D completa). Empates são decididos pela ordem de
// registro: a primeira ala registrada vence. Toda posição resolve para
// alguma ala.
func (m *RegionMap) RegionFor(pos mgl32.Vec3) Region {
	best := m.regions[0]
	bestSq := pos.Sub(best.Center).LenSqr()

	for _, r := range m.regions[1:] {
		if dSq := pos.Sub(r.Center).LenSqr(); dSq < bestSq {
			best = r
			bestSq = dSq
		}
	}
	return best
}

// DefaultRegions define as cinco alas do museu. A Ala Clássica vem primeiro
// e por isso estiliza a sala de entrada na origem.
func DefaultRegions() []Region {
	return []Region{
		{
			Name:      "Ala Clássica",
			Style:     "classical",
			Center:    mgl32.Vec3{0, 0, 0},
			Radius:    90,
			Templates: []string{RoomBasic, RoomLarge, RoomHall, RoomCorner},
			Themes:    []string{"classical", "portrait", "sculpture"},
		},
		{
			Name:      "Pavilhão Moderno",
			Style:     "modern",
			Center:    mgl32.Vec3{180, 0, 0},
			Radius:    90,
			Templates: []string{RoomBasic, RoomLarge, RoomHall},
			Themes:    []string{"modern", "abstract"},
		},
		{
			Name:      "Galeria Barroca",
			Style:     "baroque",
			Center:    mgl32.Vec3{-180, 0, 0},
			Radius:    90,
			Templates: []string{RoomBasic, RoomHall, RoomCorner},
			Themes:    []string{"baroque", "portrait"},
		},
		{
			Name:      "Pavilhão Minimalista",
			Style:     "minimalist",
			Center:    mgl32.Vec3{0, 0, 180},
			Radius:    90,
			Templates: []string{RoomBasic, RoomLarge},
			Themes:    []string{"minimalist", "landscape", "abstract"},
		},
		{
			Name:      "Salão Industrial",
			Style:     "industrial",
			Center:    mgl32.Vec3{0, 0, -180},
			Radius:    90,
			Templates: []string{RoomBasic, RoomLarge, RoomHall},
			Themes:    []string{"industrial", "sculpture", "modern"},
		},
	}
}
