package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"MuseumVision/cliente/internal/museum"
	"MuseumVision/shared/util"
)

// Controller é a câmera em primeira pessoa do passeio. Yaw e pitch vêm do
// mouse, o deslocamento das teclas WASD, sempre à altura dos olhos; não há
// colisão nem gravidade. A posição real persegue a posição alvo com um
// amortecimento curto, para o passo ter peso sem atrasar a mira.
type Controller struct {
	RLCamera rl.Camera3D

	MoveSpeed    float32
	Sensitivity  float32
	SmoothFactor float32

	// YawDeg 0 olha para o norte (+Z) e cresce no sentido horário; PitchDeg
	// positivo olha para cima.
	YawDeg   float32
	PitchDeg float32

	targetPos  mgl32.Vec3
	currentPos mgl32.Vec3
	baseFov    float32
	sprinting  bool
}

// Abertura extra de FOV durante a corrida, em graus.
const sprintFovBoost = 6

// New cria a câmera parada na posição inicial, olhando para o norte.
func New(start mgl32.Vec3, fov, moveSpeed, sensitivity float32) *Controller {
	c := &Controller{
		MoveSpeed:    moveSpeed,
		Sensitivity:  sensitivity,
		SmoothFactor: 0.35,
		targetPos:    start,
		currentPos:   start,
		baseFov:      fov,
	}
	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}
	c.refresh()
	return c
}

// Position é a posição atual (suavizada) do visitante.
func (c *Controller) Position() mgl32.Vec3 {
	return c.currentPos
}

// Teleport move a câmera imediatamente, sem suavização.
func (c *Controller) Teleport(pos mgl32.Vec3) {
	c.targetPos = pos
	c.currentPos = pos
	c.refresh()
}

// HandleInput lê mouse e teclado. Retorna a direção cardinal do movimento
// deste quadro e se houve deslocamento; o motor de geração consome ambas.
func (c *Controller) HandleInput(dt float32) (museum.Direction, bool) {
	delta := rl.GetMouseDelta()
	c.YawDeg = util.WrapDeg(c.YawDeg + delta.X*c.Sensitivity)
	c.PitchDeg = util.Clamp(c.PitchDeg-delta.Y*c.Sensitivity, -85, 85)

	forward := flatDir(c.YawDeg)
	right := flatDir(c.YawDeg + 90)

	dir := museum.DirForward
	pressed := false
	move := mgl32.Vec3{}

	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		move = move.Add(forward)
		dir, pressed = museum.DirForward, true
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		move = move.Sub(forward)
		dir, pressed = museum.DirBackward, true
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		move = move.Sub(right)
		dir, pressed = museum.DirLeft, true
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		move = move.Add(right)
		dir, pressed = museum.DirRight, true
	}

	c.sprinting = false
	if !pressed || move.Len() == 0 {
		return dir, false
	}

	speed := c.MoveSpeed
	if rl.IsKeyDown(rl.KeyLeftShift) {
		speed *= 2
		c.sprinting = true
	}
	c.targetPos = c.targetPos.Add(move.Normalize().Mul(speed * dt))
	return dir, true
}

// Update avança a interpolação da posição e do FOV. Chamar a cada quadro.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}
	c.currentPos = c.currentPos.Add(c.targetPos.Sub(c.currentPos).Mul(factor))

	targetFov := c.baseFov
	if c.sprinting {
		targetFov = c.baseFov + sprintFovBoost
	}
	c.RLCamera.Fovy = util.Lerp(c.RLCamera.Fovy, targetFov, factor)

	c.refresh()
}

// refresh recalcula posição e alvo do raylib a partir do estado atual.
func (c *Controller) refresh() {
	yaw := float64(mgl32.DegToRad(c.YawDeg))
	pitch := float64(mgl32.DegToRad(c.PitchDeg))

	look := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	target := c.currentPos.Add(look)

	c.RLCamera.Position = rl.Vector3{X: c.currentPos.X(), Y: c.currentPos.Y(), Z: c.currentPos.Z()}
	c.RLCamera.Target = rl.Vector3{X: target.X(), Y: target.Y(), Z: target.Z()}
}

// flatDir é o vetor horizontal unitário para um yaw em graus (0° = +Z).
func flatDir(deg float32) mgl32.Vec3 {
	r := float64(mgl32.DegToRad(deg))
	return mgl32.Vec3{float32(math.Sin(r)), 0, float32(math.Cos(r))}
}
