package render

import (
	"log"
	"math"
	"sync"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"MuseumVision/cliente/internal/museum"
	"MuseumVision/shared/catalog"
	"MuseumVision/shared/util"
)

const (
	// purgePerFrame limita quantos espaços têm seus modelos liberados por
	// quadro; liberar uma ala inteira de uma vez causa soluço visível.
	purgePerFrame = 2
	// uploadsPerFrame limita quantas texturas sobem à GPU por quadro.
	uploadsPerFrame = 4

	cylinderSlices = 14
	canvasDepth    = 0.04
	// canvasLift afasta a tela da moldura para não haver z-fighting.
	canvasLift = 0.07

	// pickMaxDistance é o alcance da leitura de obra pelo retículo.
	pickMaxDistance = 6.0
)

var (
	yAxis     = rl.NewVector3(0, 1, 0)
	unitScale = rl.NewVector3(1, 1, 1)
	// rawCanvas é o tom da tela ainda sem textura.
	rawCanvas = rl.NewColor(226, 222, 214, 255)
)

// panelModel é um painel estrutural residente na GPU. Posição e yaw são
// locais ao espaço; o desenho compõe a transformação do espaço por cima.
type panelModel struct {
	model    rl.Model
	localPos rl.Vector3
	yawDeg   float32
	tint     rl.Color
	detail   museum.DetailLevel
	hidden   bool
}

// artModel é uma obra pendurada: a tela com a textura da imagem e os dados
// para a moldura instanciada e para a leitura pelo retículo.
type artModel struct {
	canvas      rl.Model
	texture     rl.Texture2D
	hasTex      bool
	placeholder bool

	framePos  rl.Vector3
	canvasPos rl.Vector3
	frameSize rl.Vector3
	yawDeg    float32
	width     float32
	height    float32

	record catalog.Record
}

// spaceModel agrupa tudo que um espaço ocupa na GPU.
type spaceModel struct {
	key       string
	position  rl.Vector3
	yawDeg    float32
	panels    []panelModel
	artworks  []artModel
	artHidden bool
}

// Renderer implementa a cena do museu sobre raylib: converte os painéis
// paramétricos dos templates em modelos GPU, pendura as obras com texturas
// resolvidas fora do laço principal e descarta espaços evictados aos poucos
// para não travar o quadro.
type Renderer struct {
	mu     sync.RWMutex
	spaces map[string]*spaceModel

	textures *TextureLoader
	purge    *util.UniqueQueue[string, *spaceModel]
	frames   *frameBatch

	galleryShader rl.Shader
	frameShader   rl.Shader
	galleryCamLoc int32
	frameCamLoc   int32

	currentName  string
	currentStyle string
}

// NewRenderer prepara o renderizador e inicia o pool de texturas. Deve ser
// chamado depois de InitWindow; sem janela os shaders ficam de fora e todo
// AddSpace vira no-op.
func NewRenderer(textureWorkers int) *Renderer {
	r := &Renderer{
		spaces:   make(map[string]*spaceModel),
		textures: NewTextureLoader(textureWorkers),
		purge:    util.NewUniqueQueue[string, *spaceModel](),
	}
	r.initShaders()
	r.frames = newFrameBatch(r.frameShader)
	return r
}

// AddSpace sobe a geometria estrutural de um espaço para a GPU. Um espaço
// readicionado com a mesma chave substitui o anterior.
func (r *Renderer) AddSpace(s *museum.Space) {
	if !rl.IsWindowReady() {
		return
	}

	sm := &spaceModel{
		key:      s.Key(),
		position: vec3(s.Position),
		yawDeg:   s.Yaw,
		panels:   make([]panelModel, 0, len(s.Panels)),
	}

	for _, p := range s.Panels {
		pm := panelModel{
			yawDeg: p.YawDeg,
			tint:   tint(p.Color),
			detail: p.Detail,
		}
		if p.Shape == museum.ShapeCylinder {
			// GenMeshCylinder nasce com a base na origem; o painel guarda o
			// centro, então o modelo desce meia altura.
			pm.model = rl.LoadModelFromMesh(rl.GenMeshCylinder(p.Size.X(), p.Size.Y(), cylinderSlices))
			pm.localPos = rl.NewVector3(p.Pos.X(), p.Pos.Y()-p.Size.Y()/2, p.Pos.Z())
		} else {
			pm.model = rl.LoadModelFromMesh(rl.GenMeshCube(p.Size.X(), p.Size.Y(), p.Size.Z()))
			pm.localPos = vec3(p.Pos)
		}
		r.applyGalleryShader(&pm.model)
		sm.panels = append(sm.panels, pm)
	}

	r.mu.Lock()
	if old, ok := r.spaces[sm.key]; ok {
		r.unloadSpace(old)
	}
	r.spaces[sm.key] = sm
	r.mu.Unlock()

	log.Printf("[Renderer] espaço %s na GPU: %d painéis", sm.key, len(sm.panels))
}

// AddArtwork pendura uma obra num espaço já adicionado e enfileira a busca
// da textura. Até a textura chegar a tela aparece crua.
func (r *Renderer) AddArtwork(s *museum.Space, a museum.Artwork) {
	if !rl.IsWindowReady() {
		return
	}

	inward := yawVec(a.Anchor.YawDeg)
	am := artModel{
		canvas:    rl.LoadModelFromMesh(rl.GenMeshCube(a.Anchor.Width, a.Anchor.Height, canvasDepth)),
		framePos:  vec3(a.Anchor.Pos),
		canvasPos: vec3(a.Anchor.Pos.Add(inward.Mul(canvasLift))),
		frameSize: vec3(a.FrameSize),
		yawDeg:    a.Anchor.YawDeg,
		width:     a.Anchor.Width,
		height:    a.Anchor.Height,
		record:    a.Record,
	}
	r.applyGalleryShader(&am.canvas)

	key := s.Key()
	r.mu.Lock()
	sm, ok := r.spaces[key]
	if !ok {
		r.mu.Unlock()
		rl.UnloadModel(am.canvas)
		log.Printf("[Renderer] AVISO: obra %s para espaço desconhecido %s", a.Record.ID, key)
		return
	}
	slot := len(sm.artworks)
	sm.artworks = append(sm.artworks, am)
	r.mu.Unlock()

	r.textures.Enqueue(TextureRequest{SpaceKey: key, Slot: slot, URL: a.Record.URL})
}

// RemoveSpace tira o espaço da cena imediatamente e agenda a liberação dos
// recursos GPU para os próximos quadros. Buscas de textura pendentes do
// espaço são canceladas.
func (r *Renderer) RemoveSpace(s *museum.Space) {
	key := s.Key()
	r.textures.CancelSpace(key)

	r.mu.Lock()
	sm, ok := r.spaces[key]
	if ok {
		delete(r.spaces, key)
	}
	r.mu.Unlock()

	if ok {
		r.purge.Enqueue(key, sm)
	}
}

// SetCurrentRoom registra a sala corrente para a faixa de localização do HUD.
func (r *Renderer) SetCurrentRoom(s *museum.Space) {
	r.mu.Lock()
	r.currentName = s.Name
	r.currentStyle = s.Style
	r.mu.Unlock()
}

// ApplyLOD aplica a visibilidade por nível de detalhe a um espaço, dada a
// distância normalizada [0, 1] calculada pelo motor.
func (r *Renderer) ApplyLOD(s *museum.Space, normalized float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sm, ok := r.spaces[s.Key()]
	if !ok {
		return
	}
	for i := range sm.panels {
		sm.panels[i].hidden = museum.HiddenAtLOD(sm.panels[i].detail, normalized)
	}
	sm.artHidden = museum.HiddenAtLOD(museum.DetailMedium, normalized)
}

// Draw desenha todos os espaços visíveis. Deve rodar dentro de BeginMode3D.
func (r *Renderer) Draw(cam rl.Camera3D) {
	r.updateShaderCamera(cam)

	r.mu.RLock()
	defer r.mu.RUnlock()

	r.frames.begin()
	for _, sm := range r.spaces {
		for i := range sm.panels {
			pm := &sm.panels[i]
			if pm.hidden {
				continue
			}
			world := worldPoint(sm.position, sm.yawDeg, pm.localPos)
			rl.DrawModelEx(pm.model, world, yAxis, sm.yawDeg+pm.yawDeg, unitScale, pm.tint)
		}

		if sm.artHidden {
			continue
		}
		for i := range sm.artworks {
			am := &sm.artworks[i]
			r.frames.add(worldPoint(sm.position, sm.yawDeg, am.framePos), sm.yawDeg+am.yawDeg, am.frameSize)

			canvasTint := rawCanvas
			if am.hasTex {
				canvasTint = rl.White
			}
			world := worldPoint(sm.position, sm.yawDeg, am.canvasPos)
			rl.DrawModelEx(am.canvas, world, yAxis, sm.yawDeg+am.yawDeg, unitScale, canvasTint)
		}
	}
	r.frames.draw()
}

// ProcessPurge libera os recursos GPU de até purgePerFrame espaços
// descartados. Chamar uma vez por quadro.
func (r *Renderer) ProcessPurge() {
	if !rl.IsWindowReady() {
		return
	}
	for i := 0; i < purgePerFrame; i++ {
		_, sm, ok := r.purge.Dequeue()
		if !ok {
			return
		}
		r.unloadSpace(sm)
	}
}

// ProcessTextureResults sobe à GPU até uploadsPerFrame texturas prontas.
// Resultados de espaços já descartados são liberados sem subir.
func (r *Renderer) ProcessTextureResults() {
	if !rl.IsWindowReady() {
		return
	}
	for i := 0; i < uploadsPerFrame; i++ {
		select {
		case res := <-r.textures.Results():
			r.applyTexture(res)
		default:
			return
		}
	}
}

func (r *Renderer) applyTexture(res TextureResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sm, ok := r.spaces[res.SpaceKey]
	if !ok || res.Slot >= len(sm.artworks) {
		rl.UnloadImage(res.Image)
		return
	}

	tex := rl.LoadTextureFromImage(res.Image)
	rl.UnloadImage(res.Image)
	if tex.ID == 0 {
		log.Printf("[Renderer] FALHA ao subir textura de %s", res.URL)
		return
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapClamp)

	am := &sm.artworks[res.Slot]
	if am.hasTex {
		rl.UnloadTexture(am.texture)
	}
	am.texture = tex
	am.hasTex = true
	am.placeholder = res.Placeholder

	if am.canvas.MaterialCount > 0 {
		materials := unsafe.Slice(am.canvas.Materials, am.canvas.MaterialCount)
		rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
	}

	if res.Placeholder {
		log.Printf("[Renderer] AVISO: obra %s ficou com placeholder, URL %s preservada",
			am.record.ID, am.record.URL)
	}
}

// PickCenter lança um raio do centro da visão e devolve a obra mais próxima
// atingida dentro do alcance de leitura.
func (r *Renderer) PickCenter(cam rl.Camera3D) (catalog.Record, bool) {
	dir := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	ray := rl.NewRay(cam.Position, dir)

	r.mu.RLock()
	defer r.mu.RUnlock()

	best := float32(pickMaxDistance)
	var found catalog.Record
	ok := false

	for _, sm := range r.spaces {
		if sm.artHidden {
			continue
		}
		for i := range sm.artworks {
			am := &sm.artworks[i]
			center := worldPoint(sm.position, sm.yawDeg, am.framePos)
			// Caixa alinhada aos eixos cobrindo a obra em qualquer yaw.
			half := am.width/2 + 0.2
			box := rl.NewBoundingBox(
				rl.NewVector3(center.X-half, center.Y-am.height/2-0.1, center.Z-half),
				rl.NewVector3(center.X+half, center.Y+am.height/2+0.1, center.Z+half),
			)
			hit := rl.GetRayCollisionBox(ray, box)
			if hit.Hit && hit.Distance < best {
				best = hit.Distance
				found = am.record
				ok = true
			}
		}
	}
	return found, ok
}

// CurrentRoomInfo devolve nome e estilo da sala corrente para o HUD.
func (r *Renderer) CurrentRoomInfo() (name, style string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentName, r.currentStyle
}

// SpaceCount informa quantos espaços estão residentes na GPU.
func (r *Renderer) SpaceCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.spaces)
}

// PendingTextures informa quantas buscas de textura seguem em voo.
func (r *Renderer) PendingTextures() int {
	return r.textures.PendingCount()
}

// PurgeBacklog informa quantos espaços aguardam liberação de GPU.
func (r *Renderer) PurgeBacklog() int {
	return r.purge.Len()
}

// Unload derruba o pool de texturas e libera todos os recursos GPU. Chamar
// antes de CloseWindow.
func (r *Renderer) Unload() {
	r.textures.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		_, sm, ok := r.purge.Dequeue()
		if !ok {
			break
		}
		r.unloadSpace(sm)
	}
	for _, sm := range r.spaces {
		r.unloadSpace(sm)
	}
	r.spaces = make(map[string]*spaceModel)
	r.frames.unload()
	log.Printf("[Renderer] recursos liberados")
}

func (r *Renderer) unloadSpace(sm *spaceModel) {
	for i := range sm.panels {
		rl.UnloadModel(sm.panels[i].model)
	}
	for i := range sm.artworks {
		am := &sm.artworks[i]
		rl.UnloadModel(am.canvas)
		if am.hasTex {
			rl.UnloadTexture(am.texture)
		}
	}
	log.Printf("[Renderer] espaço %s descartado (%d painéis, %d obras)",
		sm.key, len(sm.panels), len(sm.artworks))
}

func (r *Renderer) applyGalleryShader(model *rl.Model) {
	if r.galleryShader.ID == 0 || model.MaterialCount == 0 {
		return
	}
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	materials[0].Shader = r.galleryShader
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func tint(c museum.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// yawVec converte yaw em graus no vetor horizontal apontado (0° = +Z).
func yawVec(deg float32) mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(deg))
	return mgl32.Vec3{float32(math.Sin(rad)), 0, float32(math.Cos(rad))}
}

// worldPoint aplica posição e yaw de um espaço a um ponto local.
func worldPoint(position rl.Vector3, yawDeg float32, local rl.Vector3) rl.Vector3 {
	sin64, cos64 := math.Sincos(float64(yawDeg) * math.Pi / 180)
	s, c := float32(sin64), float32(cos64)
	return rl.NewVector3(
		position.X+c*local.X+s*local.Z,
		position.Y+local.Y,
		position.Z-s*local.X+c*local.Z,
	)
}
