package museum

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Nomes de template reconhecidos. Nomes fora destas listas degradam para o
// default da classe com aviso; a geração nunca falha por nome ruim.
const (
	RoomBasic  = "basic"
	RoomLarge  = "large"
	RoomHall   = "hall"
	RoomCorner = "corner"

	HallStraight   = "straight"
	HallCurved     = "curved"
	HallStairs     = "stairs"
	HallTransition = "transition"

	DefaultRoomTemplate    = RoomBasic
	DefaultHallwayTemplate = HallStraight
)

// Dimensões da porta das salas com vão frontal.
const (
	doorWidth  = 2.0
	doorHeight = 3.0
)

// TemplateLibrary sintetiza salas e corredores a partir de estilo + tamanho.
// Os contadores de id são monotônicos, separados por classe de espaço.
type TemplateLibrary struct {
	roomSeq int
	hallSeq int
}

// NewTemplateLibrary cria a biblioteca com contadores zerados.
func NewTemplateLibrary() *TemplateLibrary {
	return &TemplateLibrary{}
}

func (tl *TemplateLibrary) newRoom(template string, style StylePreset, size mgl32.Vec3) *Space {
	tl.roomSeq++
	return &Space{
		ID:        tl.roomSeq,
		Name:      displayName(style.Name, template),
		Kind:      KindRoom,
		Template:  template,
		Style:     style.Name,
		Size:      size,
		CreatedAt: time.Now(),
	}
}

// Room sintetiza uma sala pelo nome do template.
func (tl *TemplateLibrary) Room(template string, style StylePreset, size mgl32.Vec3) *Space {
	switch template {
	case RoomBasic:
		return tl.basicRoom(style, size)
	case RoomLarge:
		return tl.largeRoom(style, size)
	case RoomHall:
		return tl.hallRoom(style, size)
	case RoomCorner:
		return tl.cornerRoom(style, size)
	default:
		log.Printf("[Templates] AVISO: template de sala %q desconhecido, usando %q", template, DefaultRoomTemplate)
		return tl.basicRoom(style, size)
	}
}

// rectShell monta chão, teto e as quatro paredes de uma sala retangular.
// Com withDoor, a parede frontal é dividida em duas metades parciais com um
// vão central de porta encimado por uma verga.
func rectShell(s *Space, style StylePreset, withDoor bool) {
	w, h, d := s.Size.X(), s.Size.Y(), s.Size.Z()
	hw, hd := w/2, d/2

	s.Panels = append(s.Panels,
		Panel{Name: "floor", Pos: mgl32.Vec3{0, -0.1, 0}, Size: mgl32.Vec3{w, 0.2, d}, Color: style.Floor.Color},
		Panel{Name: "ceiling", Pos: mgl32.Vec3{0, h + 0.1, 0}, Size: mgl32.Vec3{w, 0.2, d}, Color: style.Ceiling.Color},
	)

	walls := []Wall{
		wallFromTo("back", mgl32.Vec3{hw, 0, -hd}, mgl32.Vec3{-hw, 0, -hd}, h, true),
		wallFromTo("left", mgl32.Vec3{-hw, 0, -hd}, mgl32.Vec3{-hw, 0, hd}, h, true),
		wallFromTo("right", mgl32.Vec3{hw, 0, hd}, mgl32.Vec3{hw, 0, -hd}, h, true),
	}

	if withDoor {
		walls = append(walls,
			wallFromTo("frontLeft", mgl32.Vec3{-hw, 0, hd}, mgl32.Vec3{-doorWidth / 2, 0, hd}, h, false),
			wallFromTo("frontRight", mgl32.Vec3{doorWidth / 2, 0, hd}, mgl32.Vec3{hw, 0, hd}, h, false),
		)
		s.Panels = append(s.Panels, Panel{
			Name:  "header",
			Pos:   mgl32.Vec3{0, doorHeight + (h-doorHeight)/2, hd},
			Size:  mgl32.Vec3{doorWidth, h - doorHeight, wallThickness},
			Color: style.Wall.Color,
		})
	} else {
		walls = append(walls,
			wallFromTo("front", mgl32.Vec3{-hw, 0, hd}, mgl32.Vec3{hw, 0, hd}, h, true),
		)
	}

	for _, wall := range walls {
		s.Walls = append(s.Walls, wall)
		s.Panels = append(s.Panels, panelForWall(wall, h, style.Wall.Color))
	}
}

// finishRoom distribui as âncoras padrão pelas paredes inteiras. Sala sem
// referência de parede degrada para zero âncoras com aviso.
func (tl *TemplateLibrary) finishRoom(s *Space) {
	if len(s.Walls) == 0 {
		log.Printf("[Templates] AVISO: sala %s não produziu paredes, nenhuma âncora de obra", s.Key())
		return
	}
	for _, w := range s.Walls {
		if !w.Full {
			continue
		}
		s.Anchors = append(s.Anchors, wallAnchors(w)...)
	}
}

// basicRoom: quatro paredes com vão de porta frontal, chão e teto.
func (tl *TemplateLibrary) basicRoom(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{10, 5, 10})
	s := tl.newRoom(RoomBasic, style, size)
	rectShell(s, style, true)
	tl.finishRoom(s)
	return s
}

// largeRoom: sala basic ampliada com quatro colunas internas nos
// deslocamentos de um quarto.
func (tl *TemplateLibrary) largeRoom(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{20, 8, 20})
	s := tl.newRoom(RoomLarge, style, size)
	rectShell(s, style, true)

	w, h, d := size.X(), size.Y(), size.Z()
	idx := 0
	for _, cx := range []float32{-w / 4, w / 4} {
		for _, cz := range []float32{-d / 4, d / 4} {
			idx++
			base := Panel{
				Pos:   mgl32.Vec3{cx, 0.25, cz},
				Size:  mgl32.Vec3{0.55, 0.5, 0.55},
				Color: style.Accent.Color,
				Shape: ShapeCylinder,
			}
			base.Name = nameIndexed("column_base", idx)
			base.Detail = DetailMedium

			shaft := Panel{
				Pos:   mgl32.Vec3{cx, h / 2, cz},
				Size:  mgl32.Vec3{0.4, h, 0.4},
				Color: style.Accent.Color,
				Shape: ShapeCylinder,
			}
			shaft.Name = nameIndexed("column", idx)

			capital := Panel{
				Pos:   mgl32.Vec3{cx, h - 0.2, cz},
				Size:  mgl32.Vec3{0.6, 0.4, 0.6},
				Color: style.Accent.Color,
				Shape: ShapeCylinder,
			}
			capital.Name = nameIndexed("column_capital", idx)
			capital.Detail = DetailHigh

			s.Panels = append(s.Panels, base, shaft, capital)
		}
	}

	tl.finishRoom(s)
	return s
}

// Alcovas do template hall: nichos rasos a cada 5 unidades nas duas paredes
// laterais, cada um com sua própria âncora além do ladrilhamento padrão.
const (
	alcoveSpacing = 5.0
	alcoveWidth   = 1.6
	alcoveHeight  = 2.4
)

func (tl *TemplateLibrary) hallRoom(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{8, 5, 20})
	s := tl.newRoom(RoomHall, style, size)
	rectShell(s, style, true)
	tl.finishRoom(s)

	w, d := size.X(), size.Z()
	hw, hd := w/2, d/2
	perSide := int(d/alcoveSpacing) - 1

	sides := []struct {
		name   string
		x      float32
		facing float32
	}{
		{"leftAlcove", -hw, 90},
		{"rightAlcove", hw, -90},
	}

	for _, side := range sides {
		inward := yawVector(side.facing)
		for i := 1; i <= perSide; i++ {
			z := -hd + float32(i)*alcoveSpacing
			name := nameIndexed(side.name, i)

			// moldura saliente do nicho: duas ombreiras e uma verga
			cheekX := side.x + inward.X()*0.25
			for j, cz := range []float32{z - alcoveWidth/2 - 0.05, z + alcoveWidth/2 + 0.05} {
				s.Panels = append(s.Panels, Panel{
					Name:   nameIndexed(name+"_cheek", j+1),
					Pos:    mgl32.Vec3{cheekX, alcoveHeight / 2, cz},
					Size:   mgl32.Vec3{0.1, alcoveHeight, 0.5},
					Color:  style.Accent.Color,
					Detail: DetailMedium,
				})
			}
			s.Panels = append(s.Panels, Panel{
				Name:   name + "_lintel",
				Pos:    mgl32.Vec3{cheekX, alcoveHeight + 0.1, z},
				Size:   mgl32.Vec3{0.2, 0.2, alcoveWidth + 0.2},
				Color:  style.Accent.Color,
				Detail: DetailMedium,
			})

			anchor := AnchorPoint{
				Pos:    mgl32.Vec3{side.x + inward.X()*0.15, EyeHeight, z},
				YawDeg: side.facing,
				Width:  AnchorWidth,
				Height: AnchorHeight,
				Wall:   name,
			}
			s.Anchors = append(s.Anchors, anchor)
		}
	}

	return s
}

// cornerRoom: sala de canto aberto, um canto substituído por uma parede
// diagonal cujo comprimento é a hipotenusa das duas meias-dimensões. Fundo e
// direita inteiros, esquerda e frente parciais, sem vão de porta.
func (tl *TemplateLibrary) cornerRoom(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{10, 5, 10})
	s := tl.newRoom(RoomCorner, style, size)

	w, h, d := size.X(), size.Y(), size.Z()
	hw, hd := w/2, d/2

	s.Panels = append(s.Panels,
		Panel{Name: "floor", Pos: mgl32.Vec3{0, -0.1, 0}, Size: mgl32.Vec3{w, 0.2, d}, Color: style.Floor.Color},
		Panel{Name: "ceiling", Pos: mgl32.Vec3{0, h + 0.1, 0}, Size: mgl32.Vec3{w, 0.2, d}, Color: style.Ceiling.Color},
	)

	walls := []Wall{
		wallFromTo("back", mgl32.Vec3{hw, 0, -hd}, mgl32.Vec3{-hw, 0, -hd}, h, true),
		wallFromTo("right", mgl32.Vec3{hw, 0, hd}, mgl32.Vec3{hw, 0, -hd}, h, true),
		wallFromTo("left", mgl32.Vec3{-hw, 0, -hd}, mgl32.Vec3{-hw, 0, 0}, h, false),
		wallFromTo("front", mgl32.Vec3{0, 0, hd}, mgl32.Vec3{hw, 0, hd}, h, false),
		wallFromTo("diagonal", mgl32.Vec3{-hw, 0, 0}, mgl32.Vec3{0, 0, hd}, h, true),
	}

	for _, wall := range walls {
		s.Walls = append(s.Walls, wall)
		s.Panels = append(s.Panels, panelForWall(wall, h, style.Wall.Color))
	}

	tl.finishRoom(s)
	return s
}

func nameIndexed(base string, i int) string {
	return fmt.Sprintf("%s_%d", base, i)
}
