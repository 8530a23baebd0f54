package museum

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Passos da escadaria e segmentação do corredor curvo.
const (
	stepRise = 0.25
	stepRun  = 0.5

	curveSegments   = 10
	curveSegmentDeg = 9.0 // graus por segmento, 10×9° = 90°
)

func (tl *TemplateLibrary) newHall(template string, style StylePreset, size mgl32.Vec3) *Space {
	tl.hallSeq++
	return &Space{
		ID:        tl.hallSeq,
		Name:      displayName(style.Name, template),
		Kind:      KindHallway,
		Template:  template,
		Style:     style.Name,
		Size:      size,
		CreatedAt: time.Now(),
		Direction: mgl32.Vec3{0, 0, 1},
	}
}

// Hallway sintetiza um corredor pelo nome do template. O template de
// transição exige dois estilos e tem construtor próprio; pedi-lo por aqui
// degrada para o corredor reto.
func (tl *TemplateLibrary) Hallway(template string, style StylePreset, size mgl32.Vec3) *Space {
	switch template {
	case HallStraight:
		return tl.straightHallway(style, size)
	case HallCurved:
		return tl.curvedHallway(style, size)
	case HallStairs:
		return tl.stairsHallway(style, size)
	case HallTransition:
		log.Printf("[Templates] AVISO: corredor de transição requer dois estilos, usando %q", DefaultHallwayTemplate)
		return tl.straightHallway(style, size)
	default:
		log.Printf("[Templates] AVISO: template de corredor %q desconhecido, usando %q", template, DefaultHallwayTemplate)
		return tl.straightHallway(style, size)
	}
}

// straightHallway: tubo retangular aberto nas duas pontas, eixo de travessia
// +Z local.
func (tl *TemplateLibrary) straightHallway(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{4, 4, 10})
	s := tl.newHall(HallStraight, style, size)

	w, h, l := size.X(), size.Y(), size.Z()
	hw, hl := w/2, l/2

	s.Panels = append(s.Panels,
		Panel{Name: "floor", Pos: mgl32.Vec3{0, -0.1, 0}, Size: mgl32.Vec3{w, 0.2, l}, Color: style.Floor.Color},
		Panel{Name: "ceiling", Pos: mgl32.Vec3{0, h + 0.1, 0}, Size: mgl32.Vec3{w, 0.2, l}, Color: style.Ceiling.Color},
	)

	walls := []Wall{
		wallFromTo("left", mgl32.Vec3{-hw, 0, -hl}, mgl32.Vec3{-hw, 0, hl}, h, false),
		wallFromTo("right", mgl32.Vec3{hw, 0, hl}, mgl32.Vec3{hw, 0, -hl}, h, false),
	}
	for _, wall := range walls {
		s.Walls = append(s.Walls, wall)
		s.Panels = append(s.Panels, panelForWall(wall, h, style.Wall.Color))
	}

	return s
}

// curvedHallway: arco de 90° aproximado por dez segmentos de 9°. A entrada
// segue +Z local e a saída termina apontada para +X local; o raio do eixo
// central é o comprimento dividido por π/2, preservando a distância
// percorrida do corredor reto equivalente.
func (tl *TemplateLibrary) curvedHallway(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{4, 4, 10})
	s := tl.newHall(HallCurved, style, size)
	s.Curved = true
	s.Direction = mgl32.Vec3{1, 0, 0}

	w, h, l := size.X(), size.Y(), size.Z()
	hw := w / 2
	radius := l / (math.Pi / 2)
	segRad := mgl32.DegToRad(curveSegmentDeg)

	for i := 0; i < curveSegments; i++ {
		mid := (float32(i) + 0.5) * segRad
		sin := float32(math.Sin(float64(mid)))
		cos := float32(math.Cos(float64(mid)))
		yaw := mgl32.RadToDeg(mid)

		// piso e teto no raio central
		center := mgl32.Vec3{radius * (1 - cos), 0, radius * sin}
		segLen := radius*segRad + 0.25
		s.Panels = append(s.Panels,
			Panel{
				Name:   nameIndexed("floor", i),
				Pos:    mgl32.Vec3{center.X(), -0.1, center.Z()},
				Size:   mgl32.Vec3{w, 0.2, segLen},
				YawDeg: yaw,
				Color:  style.Floor.Color,
			},
			Panel{
				Name:   nameIndexed("ceiling", i),
				Pos:    mgl32.Vec3{center.X(), h + 0.1, center.Z()},
				Size:   mgl32.Vec3{w, 0.2, segLen},
				YawDeg: yaw,
				Color:  style.Ceiling.Color,
			},
		)

		// paredes nos raios interno e externo, comprimento do arco local
		for _, side := range []struct {
			name string
			r    float32
		}{
			{"wall_inner", radius - hw},
			{"wall_outer", radius + hw},
		} {
			s.Panels = append(s.Panels, Panel{
				Name:   nameIndexed(side.name, i),
				Pos:    mgl32.Vec3{radius - side.r*cos, h / 2, side.r * sin},
				Size:   mgl32.Vec3{side.r*segRad + 0.25, h, wallThickness},
				YawDeg: yaw - 90,
				Color:  style.Wall.Color,
			})
		}
	}

	return s
}

// stairsHallway: patamar de entrada, lance de degraus e patamar de saída
// elevado. Os degraus sobem 60% da altura do corredor; ElevationDelta expõe o
// desnível resultante para o posicionamento do espaço seguinte.
func (tl *TemplateLibrary) stairsHallway(style StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{4, 4, 10})
	s := tl.newHall(HallStairs, style, size)

	w, h, l := size.X(), size.Y(), size.Z()
	hw, hl := w/2, l/2

	numSteps := int(0.6 * h / stepRise)
	delta := float32(numSteps) * stepRise
	stepsDepth := float32(numSteps) * stepRun
	landingDepth := (l - stepsDepth) / 2
	s.ElevationDelta = delta

	s.Panels = append(s.Panels,
		Panel{
			Name:  "landing_low",
			Pos:   mgl32.Vec3{0, -0.1, -hl + landingDepth/2},
			Size:  mgl32.Vec3{w, 0.2, landingDepth},
			Color: style.Floor.Color,
		},
		Panel{
			Name:  "landing_high",
			Pos:   mgl32.Vec3{0, delta - 0.1, hl - landingDepth/2},
			Size:  mgl32.Vec3{w, 0.2, landingDepth},
			Color: style.Floor.Color,
		},
		Panel{
			Name:  "ceiling_low",
			Pos:   mgl32.Vec3{0, h + 0.1, -l / 4},
			Size:  mgl32.Vec3{w, 0.2, l / 2},
			Color: style.Ceiling.Color,
		},
		Panel{
			Name:  "ceiling_high",
			Pos:   mgl32.Vec3{0, h + delta + 0.1, l / 4},
			Size:  mgl32.Vec3{w, 0.2, l / 2},
			Color: style.Ceiling.Color,
		},
	)

	// blocos sólidos crescentes; o topo do último degrau encontra o patamar alto
	for i := 0; i < numSteps; i++ {
		height := float32(i+1) * stepRise
		s.Panels = append(s.Panels, Panel{
			Name:  nameIndexed("step", i),
			Pos:   mgl32.Vec3{0, height / 2, -hl + landingDepth + (float32(i)+0.5)*stepRun},
			Size:  mgl32.Vec3{w, height, stepRun},
			Color: style.Accent.Color,
		})
	}

	wallHeight := h + delta
	walls := []Wall{
		wallFromTo("left", mgl32.Vec3{-hw, 0, -hl}, mgl32.Vec3{-hw, 0, hl}, wallHeight, false),
		wallFromTo("right", mgl32.Vec3{hw, 0, hl}, mgl32.Vec3{hw, 0, -hl}, wallHeight, false),
	}
	for _, wall := range walls {
		s.Walls = append(s.Walls, wall)
		s.Panels = append(s.Panels, panelForWall(wall, wallHeight, style.Wall.Color))
	}

	return s
}

// Faixas do gradiente e acentos decorativos da transição.
const (
	transitionStrips  = 8
	transitionAccents = 5
)

// TransitionHallway: corredor reto cujas superfícies interpolam as cores do
// estilo de origem para o de destino ao longo do eixo de travessia, com
// acentos decorativos que trocam de caixa para cilindro passado o meio.
func (tl *TemplateLibrary) TransitionHallway(from, to StylePreset, size mgl32.Vec3) *Space {
	size = sizeOrDefault(size, mgl32.Vec3{4, 4, 10})
	s := tl.newHall(HallTransition, from, size)
	s.Name = fmt.Sprintf("Transição %s → %s", capitalize(from.Name), capitalize(to.Name))
	s.Style = BlendStyles(from, to, 0.5).Name
	s.TransitionFrom = from.Name
	s.TransitionTo = to.Name

	w, h, l := size.X(), size.Y(), size.Z()
	hw, hl := w/2, l/2
	stripLen := l / transitionStrips

	for i := 0; i < transitionStrips; i++ {
		t := (float32(i) + 0.5) / transitionStrips
		z := -hl + (float32(i)+0.5)*stripLen

		floorColor := from.Floor.Color.Lerp(to.Floor.Color, t)
		ceilColor := from.Ceiling.Color.Lerp(to.Ceiling.Color, t)
		wallColor := from.Wall.Color.Lerp(to.Wall.Color, t)

		s.Panels = append(s.Panels,
			Panel{
				Name:  nameIndexed("floor", i),
				Pos:   mgl32.Vec3{0, -0.1, z},
				Size:  mgl32.Vec3{w, 0.2, stripLen},
				Color: floorColor,
			},
			Panel{
				Name:  nameIndexed("ceiling", i),
				Pos:   mgl32.Vec3{0, h + 0.1, z},
				Size:  mgl32.Vec3{w, 0.2, stripLen},
				Color: ceilColor,
			},
			Panel{
				Name:  nameIndexed("wall_left", i),
				Pos:   mgl32.Vec3{-hw, h / 2, z},
				Size:  mgl32.Vec3{wallThickness, h, stripLen},
				Color: wallColor,
			},
			Panel{
				Name:  nameIndexed("wall_right", i),
				Pos:   mgl32.Vec3{hw, h / 2, z},
				Size:  mgl32.Vec3{wallThickness, h, stripLen},
				Color: wallColor,
			},
		)
	}

	for i := 0; i < transitionAccents; i++ {
		t := float32(i+1) / (transitionAccents + 1)
		x := hw - 0.5
		if i%2 == 1 {
			x = -x
		}

		accent := Panel{
			Name:   nameIndexed("accent", i),
			Pos:    mgl32.Vec3{x, 0.6, -hl + t*l},
			Size:   mgl32.Vec3{0.4, 1.2, 0.4},
			Color:  from.Accent.Color.Lerp(to.Accent.Color, t),
			Detail: DetailHigh,
		}
		if t > 0.5 {
			accent.Shape = ShapeCylinder
			accent.Size = mgl32.Vec3{0.2, 1.2, 0.2}
		}
		s.Panels = append(s.Panels, accent)
	}

	s.Walls = []Wall{
		wallFromTo("left", mgl32.Vec3{-hw, 0, -hl}, mgl32.Vec3{-hw, 0, hl}, h, false),
		wallFromTo("right", mgl32.Vec3{hw, 0, hl}, mgl32.Vec3{hw, 0, -hl}, h, false),
	}

	return s
}
