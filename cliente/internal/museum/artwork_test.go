package museum

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlaceArtworksPairsInOrder(t *testing.T) {
	rec := newSceneRecorder()
	provider := &stubProvider{records: stubRecords(3)}
	placer := NewArtworkPlacer(provider, rec, NewRand(5))

	lib := NewTemplateLibrary()
	room := lib.Room(RoomBasic, testStyle(), mgl32.Vec3{})

	// basic tem 12 âncoras; com 3 registros, só as 3 primeiras recebem obra
	if got := placer.PlaceArtworks(room, []string{"classical"}); got != 3 {
		t.Fatalf("PlaceArtworks = %d, want 3", got)
	}

	arts := rec.artworks[room.Key()]
	if len(arts) != 3 {
		t.Fatalf("%d obras na cena, want 3", len(arts))
	}
	for i, a := range arts {
		if a.Anchor != room.Anchors[i] {
			t.Errorf("obra %d pendurada fora de ordem posicional", i)
		}
		if want := fmt.Sprintf("rec_%d", i); a.Record.ID != want {
			t.Errorf("obra %d = %q, want %q", i, a.Record.ID, want)
		}
	}

	want := mgl32.Vec3{AnchorWidth + 0.2, AnchorHeight + 0.2, 0.12}
	if arts[0].FrameSize != want {
		t.Errorf("FrameSize = %v, want %v", arts[0].FrameSize, want)
	}
}

func TestPlaceArtworksFillsEveryAnchor(t *testing.T) {
	rec := newSceneRecorder()
	provider := &stubProvider{records: stubRecords(64)}
	placer := NewArtworkPlacer(provider, rec, NewRand(5))

	lib := NewTemplateLibrary()
	room := lib.Room(RoomHall, testStyle(), mgl32.Vec3{})

	if got := placer.PlaceArtworks(room, []string{"classical"}); got != len(room.Anchors) {
		t.Errorf("PlaceArtworks = %d, want %d (uma por âncora)", got, len(room.Anchors))
	}
}

func TestPlaceArtworksSkipsAnchorlessSpaces(t *testing.T) {
	rec := newSceneRecorder()
	provider := &stubProvider{records: stubRecords(8)}
	placer := NewArtworkPlacer(provider, rec, NewRand(5))

	lib := NewTemplateLibrary()
	hall := lib.Hallway(HallStraight, testStyle(), mgl32.Vec3{})

	if got := placer.PlaceArtworks(hall, []string{"classical"}); got != 0 {
		t.Errorf("PlaceArtworks em corredor = %d, want 0", got)
	}
	if provider.calls != 0 {
		t.Errorf("acervo consultado %d vezes para espaço sem âncoras, want 0", provider.calls)
	}
}

func TestPlaceArtworksShortfallLeavesBareAnchors(t *testing.T) {
	rec := newSceneRecorder()
	provider := &stubProvider{records: stubRecords(5)}
	placer := NewArtworkPlacer(provider, rec, NewRand(5))

	lib := NewTemplateLibrary()
	room := lib.Room(RoomLarge, testStyle(), mgl32.Vec3{})
	if len(room.Anchors) != 24 {
		t.Fatalf("pré-condição: %d âncoras, want 24", len(room.Anchors))
	}

	if got := placer.PlaceArtworks(room, nil); got != 5 {
		t.Errorf("PlaceArtworks = %d, want 5", got)
	}
	if got := len(rec.artworks[room.Key()]); got != 5 {
		t.Errorf("%d obras na cena, want 5; o resto das âncoras fica vazio", got)
	}
}
