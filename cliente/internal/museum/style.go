package museum

import (
	"log"
	"sync"
)

// DefaultStyleName é o estilo substituto para nomes desconhecidos.
const DefaultStyleName = "classical"

// Color é uma cor RGBA independente da biblioteca de renderização.
type Color struct {
	R, G, B, A uint8
}

func lerpU8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)))
}

// Lerp interpola linearmente entre duas cores.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: lerpU8(c.R, o.R, t),
		G: lerpU8(c.G, o.G, t),
		B: lerpU8(c.B, o.B, t),
		A: lerpU8(c.A, o.A, t),
	}
}

// SurfaceProps reúne cor e propriedades de material de uma superfície.
type SurfaceProps struct {
	Color     Color
	Roughness float32
	Metalness float32
}

func (s SurfaceProps) lerp(o SurfaceProps, t float32) SurfaceProps {
	return SurfaceProps{
		Color:     s.Color.Lerp(o.Color, t),
		Roughness: s.Roughness + t*(o.Roughness-s.Roughness),
		Metalness: s.Metalness + t*(o.Metalness-s.Metalness),
	}
}

// StylePreset é um pacote imutável de parâmetros arquiteturais de uma ala.
// Campos numéricos participam do blend linear; os categóricos (TextureTag,
// tipos de elemento, Decorative, Lighting) tomam o lado dominante.
type StylePreset struct {
	Name       string
	Wall       SurfaceProps
	Floor      SurfaceProps
	Ceiling    SurfaceProps
	Accent     SurfaceProps
	Decorative bool
	Lighting   string
	TextureTag string
	ColumnKind string
	ArchKind   string
	DoorKind   string
}

// Presets embutidos. Construídos uma vez; o catálogo copia os valores, nunca
// expõe os originais para mutação.
var (
	styleClassical = StylePreset{
		Name:       "classical",
		Wall:       SurfaceProps{Color{228, 221, 204, 255}, 0.85, 0.02},
		Floor:      SurfaceProps{Color{176, 160, 134, 255}, 0.60, 0.05},
		Ceiling:    SurfaceProps{Color{240, 236, 226, 255}, 0.90, 0.00},
		Accent:     SurfaceProps{Color{191, 155, 88, 255}, 0.35, 0.60},
		Decorative: true,
		Lighting:   "warm",
		TextureTag: "marble",
		ColumnKind: "doric",
		ArchKind:   "roman",
		DoorKind:   "portal",
	}

	styleModern = StylePreset{
		Name:       "modern",
		Wall:       SurfaceProps{Color{245, 245, 245, 255}, 0.55, 0.05},
		Floor:      SurfaceProps{Color{90, 90, 96, 255}, 0.30, 0.15},
		Ceiling:    SurfaceProps{Color{250, 250, 250, 255}, 0.70, 0.00},
		Accent:     SurfaceProps{Color{30, 30, 34, 255}, 0.25, 0.80},
		Decorative: false,
		Lighting:   "cool",
		TextureTag: "concrete",
		ColumnKind: "steel",
		ArchKind:   "flat",
		DoorKind:   "glass",
	}

	styleBaroque = StylePreset{
		Name:       "baroque",
		Wall:       SurfaceProps{Color{112, 32, 38, 255}, 0.75, 0.05},
		Floor:      SurfaceProps{Color{74, 48, 34, 255}, 0.50, 0.08},
		Ceiling:    SurfaceProps{Color{214, 196, 162, 255}, 0.80, 0.10},
		Accent:     SurfaceProps{Color{212, 175, 55, 255}, 0.20, 0.90},
		Decorative: true,
		Lighting:   "dramatic",
		TextureTag: "damask",
		ColumnKind: "solomonic",
		ArchKind:   "ogee",
		DoorKind:   "gilded",
	}

	styleMinimalist = StylePreset{
		Name:       "minimalist",
		Wall:       SurfaceProps{Color{250, 250, 248, 255}, 0.95, 0.00},
		Floor:      SurfaceProps{Color{228, 228, 224, 255}, 0.85, 0.00},
		Ceiling:    SurfaceProps{Color{252, 252, 250, 255}, 0.95, 0.00},
		Accent:     SurfaceProps{Color{180, 180, 178, 255}, 0.75, 0.05},
		Decorative: false,
		Lighting:   "natural",
		TextureTag: "plaster",
		ColumnKind: "none",
		ArchKind:   "flat",
		DoorKind:   "hidden",
	}

	styleIndustrial = StylePreset{
		Name:       "industrial",
		Wall:       SurfaceProps{Color{126, 88, 74, 255}, 0.90, 0.10},
		Floor:      SurfaceProps{Color{70, 72, 75, 255}, 0.65, 0.30},
		Ceiling:    SurfaceProps{Color{52, 54, 58, 255}, 0.85, 0.40},
		Accent:     SurfaceProps{Color{150, 115, 60, 255}, 0.40, 0.85},
		Decorative: false,
		Lighting:   "spot",
		TextureTag: "brick",
		ColumnKind: "steel",
		ArchKind:   "truss",
		DoorKind:   "rolling",
	}
)

// StyleCatalog é o registro de presets. A tabela embutida é montada no
// construtor; a única mutação posterior é AddCustom.
type StyleCatalog struct {
	mu      sync.RWMutex
	presets map[string]StylePreset
}

// NewStyleCatalog cria o catálogo com os presets embutidos.
func NewStyleCatalog() *StyleCatalog {
	c := &StyleCatalog{presets: make(map[string]StylePreset)}
	for _, p := range []StylePreset{styleClassical, styleModern, styleBaroque, styleMinimalist, styleIndustrial} {
		c.presets[p.Name] = p
	}
	return c
}

// Get retorna o preset nomeado. Nome desconhecido degrada para o estilo
// padrão com aviso; nunca falha.
func (c *StyleCatalog) Get(name string) StylePreset {
	c.mu.RLock()
	p, ok := c.presets[name]
	if !ok {
		p = c.presets[DefaultStyleName]
	}
	c.mu.RUnlock()

	if !ok {
		log.Printf("[Styles] AVISO: estilo %q desconhecido, usando %q", name, DefaultStyleName)
	}
	return p
}

// Has informa se um estilo está registrado.
func (c *StyleCatalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.presets[name]
	return ok
}

// AddCustom registra um preset sob um nome. Presets incompletos (qualquer
// superfície sem cor) são rejeitados sem registrar; sobrescrever um nome
// existente é permitido.
func (c *StyleCatalog) AddCustom(name string, p StylePreset) bool {
	if name == "" || !presetComplete(p) {
		log.Printf("[Styles] AVISO: preset %q incompleto, registro rejeitado", name)
		return false
	}
	p.Name = name

	c.mu.Lock()
	c.presets[name] = p
	c.mu.Unlock()
	return true
}

// presetComplete exige cor visível nas quatro superfícies.
func presetComplete(p StylePreset) bool {
	for _, s := range []SurfaceProps{p.Wall, p.Floor, p.Ceiling, p.Accent} {
		if s.Color.A == 0 {
			return false
		}
	}
	return true
}

// BlendStyles interpola linearmente todos os campos numéricos de dois
// presets; campos categóricos tomam o valor de b quando factor >= 0.5, senão
// o de a. O resultado é nomeado transition_<a>_<b> e não é registrado.
func BlendStyles(a, b StylePreset, factor float32) StylePreset {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}

	dominant := a
	if factor >= 0.5 {
		dominant = b
	}

	return StylePreset{
		Name:       "transition_" + a.Name + "_" + b.Name,
		Wall:       a.Wall.lerp(b.Wall, factor),
		Floor:      a.Floor.lerp(b.Floor, factor),
		Ceiling:    a.Ceiling.lerp(b.Ceiling, factor),
		Accent:     a.Accent.lerp(b.Accent, factor),
		Decorative: dominant.Decorative,
		Lighting:   dominant.Lighting,
		TextureTag: dominant.TextureTag,
		ColumnKind: dominant.ColumnKind,
		ArchKind:   dominant.ArchKind,
		DoorKind:   dominant.DoorKind,
	}
}
