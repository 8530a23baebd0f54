package museum

import (
	"log"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene recebe os efeitos colaterais da geração: espaços e obras entrando,
// espaços saindo, troca de sala corrente e nível de detalhe. O renderizador
// implementa em produção; os testes usam um gravador em memória.
type Scene interface {
	AddSpace(s *Space)
	AddArtwork(s *Space, a Artwork)
	RemoveSpace(s *Space)
	SetCurrentRoom(s *Space)
	ApplyLOD(s *Space, normalized float32)
}

// EngineOptions controla as distâncias do gerador. Valores em unidades de
// mundo.
type EngineOptions struct {
	// RoomSpacing é a distância entre centros de salas vizinhas; o corredor
	// que as liga fica na metade do caminho.
	RoomSpacing float32
	// GenerationDistance limita o quão longe do jogador um candidato pode
	// nascer.
	GenerationDistance float32
	// MaxRenderDistance é o raio de evicção; além dele os espaços saem da
	// cena e da grade.
	MaxRenderDistance float32
	// ProximityThreshold é a distância ao centro de uma sala que a torna a
	// sala corrente.
	ProximityThreshold float32
}

// DefaultEngineOptions retorna as distâncias padrão do museu.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		RoomSpacing:        30,
		GenerationDistance: 60,
		MaxRenderDistance:  80,
		ProximityThreshold: 5,
	}
}

// LayoutEngine gera o museu sob demanda conforme o jogador anda. Todo o
// estado compartilhado fica atrás de um único mutex; o padrão
// verifica-depois-registra da grade de ocupação só vale dentro dele.
type LayoutEngine struct {
	mu sync.Mutex

	scene   Scene
	styles  *StyleCatalog
	lib     *TemplateLibrary
	regions *RegionMap
	placer  *ArtworkPlacer
	rng     *Rand
	opt     EngineOptions

	grid     *OccupancyGrid
	rooms    []*Space
	hallways []*Space
	current  *Space
}

// NewLayoutEngine monta o gerador. regions nulo usa as alas padrão; o rng é
// injetado para reprodutibilidade por semente.
func NewLayoutEngine(scene Scene, provider ImageProvider, regions *RegionMap, rng *Rand, opt EngineOptions) *LayoutEngine {
	if regions == nil {
		regions = NewRegionMap(nil)
	}
	e := &LayoutEngine{
		scene:   scene,
		styles:  NewStyleCatalog(),
		lib:     NewTemplateLibrary(),
		regions: regions,
		rng:     rng,
		opt:     opt,
		grid:    NewOccupancyGrid(),
	}
	e.placer = NewArtworkPlacer(provider, scene, rng)
	return e
}

// Styles expõe o catálogo de estilos para registro de presets customizados.
func (e *LayoutEngine) Styles() *StyleCatalog { return e.styles }

// Regions expõe o mapa de alas.
func (e *LayoutEngine) Regions() *RegionMap { return e.regions }

// GenerateInitialLayout constrói o miolo do museu: o salão de entrada na
// origem e um par corredor+sala em cada direção cardeal. Só a entrada recebe
// obras; as vizinhas iniciais ficam nuas até serem evictadas e regeneradas
// pela expansão, que entrega salas já mobiliadas.
func (e *LayoutEngine) GenerateInitialLayout() {
	e.mu.Lock()
	defer e.mu.Unlock()

	region := e.regions.First()
	style := e.styles.Get(region.Style)

	entrance := e.lib.Room(RoomLarge, style, mgl32.Vec3{})
	entrance.Name = "Salão de Entrada"
	e.registerSpace(entrance, mgl32.Vec3{}, 0)
	e.current = entrance
	e.scene.SetCurrentRoom(entrance)
	e.placer.PlaceArtworks(entrance, region.Themes)

	for _, travel := range []mgl32.Vec3{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}} {
		e.generatePair(mgl32.Vec3{}, travel)
	}

	log.Printf("[Layout] layout inicial pronto: %d salas, %d corredores, %d células ocupadas",
		len(e.rooms), len(e.hallways), e.grid.Len())
}

// CheckAndGenerateNewRooms é chamado a cada passo de movimento. Atualiza a
// sala corrente por proximidade e, se a célula à frente do movimento estiver
// livre e ao alcance, gera ali um novo par corredor+sala já mobiliado.
func (e *LayoutEngine) CheckAndGenerateNewRooms(playerPos mgl32.Vec3, yawDeg float32, dir Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	nearest := e.nearestRoom(playerPos)
	if nearest == nil {
		return
	}
	if nearest != e.current && playerPos.Sub(nearest.Position).Len() <= e.opt.ProximityThreshold {
		e.current = nearest
		e.scene.SetCurrentRoom(nearest)
		log.Printf("[Layout] sala corrente: %s (%s)", nearest.Name, nearest.Key())
	}

	travel := RotateYaw(dir.Vector(), yawDeg)
	candidate := e.current.Position.Add(travel.Mul(e.opt.RoomSpacing))

	if e.grid.Get(candidate) != nil {
		return
	}
	if playerPos.Sub(candidate).Len() > e.opt.GenerationDistance {
		return
	}

	_, room := e.generatePair(e.current.Position, travel)
	if room == nil {
		return
	}
	dst := e.regions.RegionFor(room.Position)
	placed := e.placer.PlaceArtworks(room, dst.Themes)
	log.Printf("[Layout] nova sala %s (%s) na ala %q com %d obras",
		room.Name, room.Key(), dst.Name, placed)
}

// Update roda uma vez por quadro: evicta espaços além do raio de renderização
// e reaplica o nível de detalhe das salas restantes. A sala corrente nunca é
// evictada, mesmo fora do raio.
func (e *LayoutEngine) Update(playerPos mgl32.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rooms = e.evictFar(e.rooms, playerPos)
	e.hallways = e.evictFar(e.hallways, playerPos)

	for _, room := range e.rooms {
		norm := playerPos.Sub(room.Position).Len() / e.opt.MaxRenderDistance
		if norm > 1 {
			norm = 1
		}
		e.scene.ApplyLOD(room, norm)
	}
}

// CurrentRoom retorna a sala corrente.
func (e *LayoutEngine) CurrentRoom() *Space {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Counts retorna quantas salas e corredores estão vivos.
func (e *LayoutEngine) Counts() (rooms, hallways int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rooms), len(e.hallways)
}

// registerSpace posiciona o espaço no mundo, ocupa sua célula e o entrega à
// cena. Chamar com a célula já verificada livre; o mutex do engine garante a
// atomicidade do par verificação+registro.
func (e *LayoutEngine) registerSpace(s *Space, pos mgl32.Vec3, yawDeg float32) {
	s.Position = pos
	s.Yaw = yawDeg
	e.grid.Set(pos, s)
	if s.Kind == KindHallway {
		e.hallways = append(e.hallways, s)
	} else {
		e.rooms = append(e.rooms, s)
	}
	e.scene.AddSpace(s)
}

// generatePair cria o corredor na meia distância e a sala na distância cheia
// ao longo de travel. Célula da sala ocupada anula o par inteiro; célula só
// do corredor ocupada pula o corredor e ainda cria a sala. Regiões de origem
// e destino diferentes trocam o corredor comum pelo de transição.
func (e *LayoutEngine) generatePair(fromPos, travel mgl32.Vec3) (hall, room *Space) {
	hallPos := fromPos.Add(travel.Mul(e.opt.RoomSpacing / 2))
	roomPos := fromPos.Add(travel.Mul(e.opt.RoomSpacing))

	if e.grid.Get(roomPos) != nil {
		return nil, nil
	}

	src := e.regions.RegionFor(fromPos)
	dst := e.regions.RegionFor(roomPos)
	dstStyle := e.styles.Get(dst.Style)

	if e.grid.Get(hallPos) == nil {
		if src.Name != dst.Name {
			hall = e.lib.TransitionHallway(e.styles.Get(src.Style), dstStyle, mgl32.Vec3{})
		} else {
			hall = e.lib.Hallway(HallStraight, dstStyle, mgl32.Vec3{})
		}
		hallYaw := float32(0)
		if mgl32.Abs(travel.X()) > mgl32.Abs(travel.Z()) {
			hallYaw = 90
		}
		e.registerSpace(hall, hallPos, hallYaw)
	}

	template := DefaultRoomTemplate
	if len(dst.Templates) > 0 {
		template = e.rng.Pick(dst.Templates)
	}
	room = e.lib.Room(template, dstStyle, mgl32.Vec3{})

	// a porta (+Z local) vira de volta para o corredor de chegada
	roomYaw := mgl32.RadToDeg(float32(math.Atan2(float64(-travel.X()), float64(-travel.Z()))))
	e.registerSpace(room, roomPos, roomYaw)
	return hall, room
}

func (e *LayoutEngine) nearestRoom(pos mgl32.Vec3) *Space {
	var best *Space
	bestSq := float32(math.MaxFloat32)
	for _, room := range e.rooms {
		if d := pos.Sub(room.Position).LenSqr(); d < bestSq {
			best, bestSq = room, d
		}
	}
	return best
}

// evictFar filtra a lista removendo da cena e da grade tudo além do raio. A
// célula é liberada no mesmo passo da remoção, então a vizinhança evictada
// pode ser regenerada quando o jogador voltar.
func (e *LayoutEngine) evictFar(list []*Space, playerPos mgl32.Vec3) []*Space {
	kept := list[:0]
	for _, s := range list {
		if s == e.current || playerPos.Sub(s.Position).Len() <= e.opt.MaxRenderDistance {
			kept = append(kept, s)
			continue
		}
		e.grid.Remove(s.Position)
		e.scene.RemoveSpace(s)
		log.Printf("[Layout] %s evictado fora do raio de renderização", s.Key())
	}
	return kept
}
