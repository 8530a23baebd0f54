// Package museum contém o gerador procedural do museu infinito: catálogo de
// estilos, templates de salas e corredores, grade de ocupação, mapa de
// regiões, motor de streaming e posicionamento de obras. O pacote não
// conhece a biblioteca de renderização; geometria sai como painéis
// paramétricos consumidos pela cena através de interfaces estreitas.
package museum

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Dimensões fixas das âncoras de obras.
const (
	AnchorWidth  = 2.0
	AnchorHeight = 1.5
	AnchorGap    = 0.5
	EyeHeight    = 1.7

	wallThickness = 0.2
)

// SpaceKind distingue salas de corredores.
type SpaceKind int

const (
	KindRoom SpaceKind = iota
	KindHallway
)

func (k SpaceKind) String() string {
	if k == KindHallway {
		return "hall"
	}
	return "room"
}

// PanelShape é a forma de um painel de geometria.
type PanelShape int

const (
	ShapeBox PanelShape = iota
	ShapeCylinder
)

// DetailLevel marca painéis para o LOD por distância: high some a 70% da
// distância máxima, medium a 90%, low nunca some.
type DetailLevel int

const (
	DetailLow DetailLevel = iota
	DetailMedium
	DetailHigh
)

// Panel é a unidade de geometria emitida pelos templates. Posição e rotação
// são locais ao espaço; a cena aplica a transformação do espaço por cima.
// Para ShapeCylinder, Size.X é o raio e Size.Y a altura.
type Panel struct {
	Name   string
	Pos    mgl32.Vec3
	Size   mgl32.Vec3
	YawDeg float32
	Color  Color
	Shape  PanelShape
	Detail DetailLevel
}

// Wall é uma referência nomeada de parede usada na distribuição de âncoras.
// Somente paredes inteiras (Full) recebem o ladrilhamento padrão de âncoras.
type Wall struct {
	Name   string
	Center mgl32.Vec3
	Length float32
	YawDeg float32 // rotação do comprimento (0 = ao longo de X)
	Facing float32 // yaw da normal interna, para onde as obras olham
	Full   bool
}

// AnchorPoint é uma posição de obra sobre uma parede ou alcova.
type AnchorPoint struct {
	Pos    mgl32.Vec3
	YawDeg float32
	Width  float32
	Height float32
	Wall   string
}

// Space é uma sala ou corredor gerado. A geometria estrutural é imutável
// após a construção; apenas visibilidade de LOD e o descarte final mutam o
// espaço.
type Space struct {
	ID        int
	Name      string
	Kind      SpaceKind
	Template  string
	Style     string
	Size      mgl32.Vec3
	CreatedAt time.Time

	// Posição e rotação no mundo, atribuídas pelo motor na colocação.
	Position mgl32.Vec3
	Yaw      float32

	Panels  []Panel
	Walls   []Wall
	Anchors []AnchorPoint

	// Campos exclusivos de corredores.
	Direction      mgl32.Vec3
	Curved         bool
	ElevationDelta float32
	TransitionFrom string
	TransitionTo   string
}

// Key identifica o espaço de forma estável ("room_3", "hall_7").
func (s *Space) Key() string {
	return fmt.Sprintf("%s_%d", s.Kind, s.ID)
}

// Direction é a direção cardinal de deslocamento derivada das teclas de
// movimento, antes da rotação pelo yaw do jogador.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
)

// Vector retorna a direção em coordenadas de mundo com yaw zero
// (0° = norte = +Z).
func (d Direction) Vector() mgl32.Vec3 {
	switch d {
	case DirBackward:
		return mgl32.Vec3{0, 0, -1}
	case DirLeft:
		return mgl32.Vec3{-1, 0, 0}
	case DirRight:
		return mgl32.Vec3{1, 0, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirBackward:
		return "trás"
	case DirLeft:
		return "esquerda"
	case DirRight:
		return "direita"
	default:
		return "frente"
	}
}

// yawVector converte yaw em graus no vetor horizontal apontado (0° = +Z).
func yawVector(deg float32) mgl32.Vec3 {
	r := float64(mgl32.DegToRad(deg))
	return mgl32.Vec3{float32(math.Sin(r)), 0, float32(math.Cos(r))}
}

// RotateYaw gira um vetor no plano horizontal pelo yaw em graus.
func RotateYaw(v mgl32.Vec3, deg float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(mgl32.DegToRad(deg)).Mul3x1(v)
}

// wallFromTo constrói uma parede entre dois pontos no plano do chão. A
// normal interna fica à esquerda do trajeto from→to olhando de cima; os
// templates ordenam os pontos para que ela aponte para dentro do espaço.
func wallFromTo(name string, from, to mgl32.Vec3, height float32, full bool) Wall {
	delta := to.Sub(from)
	length := delta.Len()
	dir := delta.Mul(1 / length)

	yaw := float32(math.Atan2(float64(-dir.Z()), float64(dir.X())))
	normal := mgl32.Vec3{dir.Z(), 0, -dir.X()}
	facing := float32(math.Atan2(float64(normal.X()), float64(normal.Z())))

	center := from.Add(to).Mul(0.5)
	center[1] = height / 2

	return Wall{
		Name:   name,
		Center: center,
		Length: length,
		YawDeg: mgl32.RadToDeg(yaw),
		Facing: mgl32.RadToDeg(facing),
		Full:   full,
	}
}

// panelForWall emite o painel estrutural de uma parede.
func panelForWall(w Wall, height float32, color Color) Panel {
	return Panel{
		Name:   w.Name,
		Pos:    w.Center,
		Size:   mgl32.Vec3{w.Length, height, wallThickness},
		YawDeg: w.YawDeg,
		Color:  color,
	}
}

// wallAnchors ladrilha âncoras de 2×1.5 com folga de 0.5 centradas ao longo
// do comprimento da parede, na altura dos olhos, todas olhando para a normal
// interna da parede.
func wallAnchors(w Wall) []AnchorPoint {
	n := int((w.Length + AnchorGap) / (AnchorWidth + AnchorGap))
	if n <= 0 {
		return nil
	}

	total := float32(n)*AnchorWidth + float32(n-1)*AnchorGap
	start := -total/2 + AnchorWidth/2
	along := RotateYaw(mgl32.Vec3{1, 0, 0}, w.YawDeg)
	inward := yawVector(w.Facing)

	anchors := make([]AnchorPoint, 0, n)
	for i := 0; i < n; i++ {
		offset := start + float32(i)*(AnchorWidth+AnchorGap)
		pos := w.Center.Add(along.Mul(offset)).Add(inward.Mul(wallThickness / 2))
		pos[1] = EyeHeight
		anchors = append(anchors, AnchorPoint{
			Pos:    pos,
			YawDeg: w.Facing,
			Width:  AnchorWidth,
			Height: AnchorHeight,
			Wall:   w.Name,
		})
	}
	return anchors
}

// sizeOrDefault preenche componentes zerados de um override com o tamanho
// padrão do template.
func sizeOrDefault(size, def mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if size[i] <= 0 {
			size[i] = def[i]
		}
	}
	return size
}

// capitalize põe a primeira letra em maiúscula para nomes de exibição.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

// displayName monta o nome de exibição "Estilo Template".
func displayName(style, template string) string {
	return capitalize(style) + " " + capitalize(template)
}
