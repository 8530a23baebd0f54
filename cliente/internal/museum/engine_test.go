package museum

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"MuseumVision/shared/catalog"
)

// sceneRecorder grava os efeitos do motor sem nenhuma renderização.
type sceneRecorder struct {
	spaces   map[string]*Space
	removed  []string
	artworks map[string][]Artwork
	current  string
	lod      map[string]float32
}

func newSceneRecorder() *sceneRecorder {
	return &sceneRecorder{
		spaces:   make(map[string]*Space),
		artworks: make(map[string][]Artwork),
		lod:      make(map[string]float32),
	}
}

func (r *sceneRecorder) AddSpace(s *Space) { r.spaces[s.Key()] = s }

func (r *sceneRecorder) AddArtwork(s *Space, a Artwork) {
	r.artworks[s.Key()] = append(r.artworks[s.Key()], a)
}

func (r *sceneRecorder) RemoveSpace(s *Space) {
	delete(r.spaces, s.Key())
	r.removed = append(r.removed, s.Key())
}

func (r *sceneRecorder) SetCurrentRoom(s *Space) { r.current = s.Key() }

func (r *sceneRecorder) ApplyLOD(s *Space, normalized float32) { r.lod[s.Key()] = normalized }

// stubProvider entrega registros sintéticos em ordem fixa.
type stubProvider struct {
	records []catalog.Record
	calls   int
}

func (p *stubProvider) ImagesFor(themes []string, count int, rng catalog.Shuffler) []catalog.Record {
	p.calls++
	if count > len(p.records) {
		count = len(p.records)
	}
	if count < 0 {
		count = 0
	}
	return p.records[:count]
}

func stubRecords(n int) []catalog.Record {
	recs := make([]catalog.Record, n)
	for i := range recs {
		recs[i] = catalog.Record{
			ID:    fmt.Sprintf("rec_%d", i),
			Title: fmt.Sprintf("Obra %d", i),
			URL:   "procgen://stub",
		}
	}
	return recs
}

func newTestEngine(regions []Region, seed int64) (*LayoutEngine, *sceneRecorder) {
	rec := newSceneRecorder()
	provider := &stubProvider{records: stubRecords(64)}
	e := NewLayoutEngine(rec, provider, NewRegionMap(regions), NewRand(seed), DefaultEngineOptions())
	return e, rec
}

func TestGenerateInitialLayout(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	rooms, halls := e.Counts()
	if rooms != 5 || halls != 4 {
		t.Fatalf("Counts = %d salas e %d corredores, want 5 e 4", rooms, halls)
	}
	if e.grid.Len() != 9 {
		t.Errorf("grade com %d células, want 9 distintas", e.grid.Len())
	}

	cur := e.CurrentRoom()
	if cur == nil || cur.Name != "Salão de Entrada" {
		t.Fatalf("sala corrente = %+v, want o salão de entrada", cur)
	}
	if rec.current != cur.Key() {
		t.Errorf("cena com sala corrente %q, want %q", rec.current, cur.Key())
	}
	if cur.Template != RoomLarge {
		t.Errorf("entrada com template %q, want %q", cur.Template, RoomLarge)
	}

	// obras somente na entrada
	if len(rec.artworks) != 1 {
		t.Errorf("obras em %d espaços, want só a entrada", len(rec.artworks))
	}
	if got := len(rec.artworks[cur.Key()]); got != len(cur.Anchors) {
		t.Errorf("entrada com %d obras, want %d (uma por âncora)", got, len(cur.Anchors))
	}

	// salas nas quatro direções cardeais, corredores na meia distância
	for _, pos := range []mgl32.Vec3{{0, 0, 30}, {0, 0, -30}, {30, 0, 0}, {-30, 0, 0}} {
		s := e.grid.Get(pos)
		if s == nil || s.Kind != KindRoom {
			t.Errorf("sem sala em %v", pos)
		}
	}
	for _, pos := range []mgl32.Vec3{{0, 0, 15}, {0, 0, -15}, {15, 0, 0}, {-15, 0, 0}} {
		s := e.grid.Get(pos)
		if s == nil || s.Kind != KindHallway {
			t.Errorf("sem corredor em %v", pos)
		}
	}

	// primeira ala estiliza a entrada
	if cur.Style != "classical" {
		t.Errorf("entrada com estilo %q, want classical", cur.Style)
	}
}

func TestInitialNeighborsStayBareOnApproach(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	north := e.grid.Get(mgl32.Vec3{0, 0, 30})
	e.CheckAndGenerateNewRooms(mgl32.Vec3{0, 1.7, 28}, 0, DirForward)

	if cur := e.CurrentRoom(); cur != north {
		t.Fatalf("sala corrente = %v, want a sala norte", cur.Key())
	}
	// virar corrente não mobília; obras só entram em salas criadas pela
	// expansão
	if got := len(rec.artworks[north.Key()]); got != 0 {
		t.Errorf("sala norte ganhou %d obras ao virar corrente, want 0", got)
	}
}

func TestExpansionOccupiedCellIsNoOp(t *testing.T) {
	e, _ := newTestEngine(nil, 1)
	e.GenerateInitialLayout()
	roomsBefore, hallsBefore := e.Counts()

	// de pé na entrada, olhando para o norte: o candidato (0,0,30) já existe
	e.CheckAndGenerateNewRooms(mgl32.Vec3{0, 1.7, 0}, 0, DirForward)

	rooms, halls := e.Counts()
	if rooms != roomsBefore || halls != hallsBefore {
		t.Errorf("célula ocupada gerou algo: %d/%d → %d/%d", roomsBefore, hallsBefore, rooms, halls)
	}
}

func TestExpansionCreatesFurnishedRoom(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	// o jogador entra na sala norte; ela vira corrente por proximidade e o
	// candidato passa a ser (0,0,60)
	north := e.grid.Get(mgl32.Vec3{0, 0, 30})
	e.CheckAndGenerateNewRooms(mgl32.Vec3{0, 1.7, 28}, 0, DirForward)

	if cur := e.CurrentRoom(); cur != north {
		t.Fatalf("sala corrente = %v, want a sala norte", cur.Key())
	}
	rooms, halls := e.Counts()
	if rooms != 6 || halls != 5 {
		t.Fatalf("Counts = %d/%d, want 6 salas e 5 corredores", rooms, halls)
	}

	newRoom := e.grid.Get(mgl32.Vec3{0, 0, 60})
	if newRoom == nil || newRoom.Kind != KindRoom {
		t.Fatalf("sem sala nova em (0,0,60)")
	}
	newHall := e.grid.Get(mgl32.Vec3{0, 0, 45})
	if newHall == nil || newHall.Kind != KindHallway {
		t.Fatalf("sem corredor novo em (0,0,45)")
	}

	// a porta da sala nova olha de volta para o corredor de chegada
	if mgl32.Abs(mgl32.Abs(newRoom.Yaw)-180) > 0.01 {
		t.Errorf("Yaw da sala nova = %v, want ±180", newRoom.Yaw)
	}

	// diferente do layout inicial, expansão mobília a sala na hora
	if got := len(rec.artworks[newRoom.Key()]); got != len(newRoom.Anchors) {
		t.Errorf("sala nova com %d obras, want %d", got, len(newRoom.Anchors))
	}
}

func TestExpansionBeyondGenerationDistanceIsNoOp(t *testing.T) {
	e, _ := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	// limpa a vizinhança para liberar as células
	e.Update(mgl32.Vec3{0, 0, 500})

	// a entrada continua corrente; o candidato (0,0,30) está livre mas a 65
	// unidades do jogador, além do alcance de geração
	e.CheckAndGenerateNewRooms(mgl32.Vec3{0, 1.7, 95}, 0, DirForward)

	rooms, halls := e.Counts()
	if rooms != 1 || halls != 0 {
		t.Errorf("geração fora de alcance: %d salas e %d corredores, want 1 e 0", rooms, halls)
	}
}

func TestEvictionFreesCellsForRegeneration(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	e.Update(mgl32.Vec3{500, 0, 0})

	rooms, halls := e.Counts()
	if rooms != 1 || halls != 0 {
		t.Fatalf("após evicção: %d salas e %d corredores, want só a corrente", rooms, halls)
	}
	if e.grid.Len() != 1 {
		t.Fatalf("grade com %d células após evicção, want 1", e.grid.Len())
	}
	if len(rec.removed) != 8 {
		t.Errorf("%d espaços removidos da cena, want 8", len(rec.removed))
	}

	// a célula norte liberada volta a ser gerável
	e.CheckAndGenerateNewRooms(mgl32.Vec3{0, 1.7, 0}, 0, DirForward)
	rooms, halls = e.Counts()
	if rooms != 2 || halls != 1 {
		t.Errorf("regeneração pós-evicção: %d/%d, want 2 salas e 1 corredor", rooms, halls)
	}
}

func TestCurrentRoomNeverEvicted(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()
	cur := e.CurrentRoom()

	e.Update(mgl32.Vec3{1000, 0, 1000})

	if _, ok := rec.spaces[cur.Key()]; !ok {
		t.Fatalf("sala corrente %s saiu da cena", cur.Key())
	}
	if e.grid.Get(cur.Position) != cur {
		t.Errorf("sala corrente perdeu a célula da grade")
	}
	// e o LOD dela satura em 1 a essa distância
	if got := rec.lod[cur.Key()]; got != 1 {
		t.Errorf("LOD da corrente = %v, want 1 (saturado)", got)
	}
}

func TestUpdateAppliesNormalizedLOD(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	e.Update(mgl32.Vec3{0, 0, 0})

	entrance := e.CurrentRoom()
	if got := rec.lod[entrance.Key()]; got != 0 {
		t.Errorf("LOD da entrada com jogador em cima = %v, want 0", got)
	}
	north := e.grid.Get(mgl32.Vec3{0, 0, 30})
	want := float32(30) / DefaultEngineOptions().MaxRenderDistance
	if got := rec.lod[north.Key()]; mgl32.Abs(got-want) > 1e-4 {
		t.Errorf("LOD da sala norte = %v, want %v", got, want)
	}

	// corredores não participam do LOD
	hall := e.grid.Get(mgl32.Vec3{0, 0, 15})
	if _, ok := rec.lod[hall.Key()]; ok {
		t.Errorf("corredor %s recebeu LOD", hall.Key())
	}
}

func TestUpdateEvictsAndReappliesLODEveryCall(t *testing.T) {
	e, rec := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	west := e.grid.Get(mgl32.Vec3{-30, 0, 0})
	north := e.grid.Get(mgl32.Vec3{0, 0, 30})
	maxDist := DefaultEngineOptions().MaxRenderDistance

	// caminhada para leste, uma chamada por quadro. Em cada quadro a sala
	// oeste ainda está dentro do raio (dist = x+30 ≤ 80) e o LOD da sala
	// norte acompanha a posição daquele quadro, sem defasagem.
	for x := float32(5); x <= 50; x += 5 {
		pos := mgl32.Vec3{x, 0, 0}
		e.Update(pos)

		if _, ok := rec.spaces[west.Key()]; !ok {
			t.Fatalf("sala oeste evictada cedo demais em x=%v (dist %v)", x, x+30)
		}
		want := pos.Sub(north.Position).Len() / maxDist
		if want > 1 {
			want = 1
		}
		if got := rec.lod[north.Key()]; mgl32.Abs(got-want) > 1e-4 {
			t.Errorf("LOD da sala norte defasado em x=%v: %v, want %v", x, got, want)
		}
	}

	// o primeiro quadro além do raio já evicta; nenhum espaço sobrevive um
	// quadro extra
	e.Update(mgl32.Vec3{55, 0, 0})
	if _, ok := rec.spaces[west.Key()]; ok {
		t.Errorf("sala oeste (dist 85) sobreviveu ao quadro que cruzou o raio")
	}
	if e.grid.Get(west.Position) != nil {
		t.Errorf("célula da sala oeste continua ocupada após a evicção")
	}
}

func TestTransitionHallwayBetweenRegions(t *testing.T) {
	regions := []Region{
		{Name: "alfa", Style: "classical", Center: mgl32.Vec3{0, 0, 0}, Templates: []string{RoomBasic}, Themes: []string{"classical"}},
		{Name: "beta", Style: "modern", Center: mgl32.Vec3{0, 0, 40}, Templates: []string{RoomBasic}, Themes: []string{"modern"}},
	}
	e, _ := newTestEngine(regions, 1)
	e.GenerateInitialLayout()

	// a sala norte (0,0,30) cai na ala beta; o corredor até ela cruza a
	// fronteira e vira transição
	hall := e.grid.Get(mgl32.Vec3{0, 0, 15})
	if hall == nil || hall.Template != HallTransition {
		t.Fatalf("corredor norte = %+v, want transição", hall)
	}
	if hall.TransitionFrom != "classical" || hall.TransitionTo != "modern" {
		t.Errorf("transição %q → %q, want classical → modern", hall.TransitionFrom, hall.TransitionTo)
	}

	north := e.grid.Get(mgl32.Vec3{0, 0, 30})
	if north.Style != "modern" {
		t.Errorf("sala norte com estilo %q, want modern", north.Style)
	}

	// o corredor sul continua dentro da ala alfa
	south := e.grid.Get(mgl32.Vec3{0, 0, -15})
	if south == nil || south.Template != HallStraight {
		t.Errorf("corredor sul = %+v, want reto", south)
	}
}

func TestEastWestHallwaysRotated(t *testing.T) {
	e, _ := newTestEngine(nil, 1)
	e.GenerateInitialLayout()

	east := e.grid.Get(mgl32.Vec3{15, 0, 0})
	if east.Yaw != 90 {
		t.Errorf("corredor leste com yaw %v, want 90", east.Yaw)
	}
	north := e.grid.Get(mgl32.Vec3{0, 0, 15})
	if north.Yaw != 0 {
		t.Errorf("corredor norte com yaw %v, want 0", north.Yaw)
	}
}

func TestUnknownRegionStyleFallsBack(t *testing.T) {
	regions := []Region{
		{Name: "misteriosa", Style: "vaporwave", Center: mgl32.Vec3{0, 0, 0}, Templates: []string{RoomBasic}, Themes: []string{"general"}},
	}
	e, _ := newTestEngine(regions, 1)
	e.GenerateInitialLayout()

	// estilo desconhecido degrada para o padrão; a geração nunca falha
	if cur := e.CurrentRoom(); cur.Style != DefaultStyleName {
		t.Errorf("entrada com estilo %q, want %q", cur.Style, DefaultStyleName)
	}
	if rooms, _ := e.Counts(); rooms != 5 {
		t.Errorf("%d salas, want 5", rooms)
	}
}

func TestSeedReproducibility(t *testing.T) {
	walk := func(seed int64) []string {
		e, _ := newTestEngine(nil, seed)
		e.GenerateInitialLayout()
		for i := 0; i < 3; i++ {
			z := float32(30*(i+1)) - 2
			e.CheckAndGenerateNewRooms(mgl32.Vec3{0, 1.7, z}, 0, DirForward)
		}
		var templates []string
		for _, r := range e.rooms {
			templates = append(templates, r.Template)
		}
		return templates
	}

	a := walk(99)
	b := walk(99)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("mesma semente divergiu:\n%v\n%v", a, b)
	}
	if len(a) != 8 {
		t.Errorf("caminhada gerou %d salas, want 8", len(a))
	}
}
