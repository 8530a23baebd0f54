package museum

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRegionForNearestCenter(t *testing.T) {
	m := NewRegionMap(nil)
	tests := []struct {
		pos  mgl32.Vec3
		want string
	}{
		{mgl32.Vec3{0, 0, 0}, "Ala Clássica"},
		{mgl32.Vec3{30, 0, -10}, "Ala Clássica"},
		{mgl32.Vec3{170, 0, 10}, "Pavilhão Moderno"},
		{mgl32.Vec3{-200, 0, 0}, "Galeria Barroca"},
		{mgl32.Vec3{5, 0, 160}, "Pavilhão Minimalista"},
		{mgl32.Vec3{0, 0, -500}, "Salão Industrial"},
	}

	for _, tt := range tests {
		if got := m.RegionFor(tt.pos); got.Name != tt.want {
			t.Errorf("RegionFor(%v) = %q, want %q", tt.pos, got.Name, tt.want)
		}
	}
}

func TestRegionForIsDeterministic(t *testing.T) {
	m := NewRegionMap(nil)
	pos := mgl32.Vec3{90, 0, 12}
	first := m.RegionFor(pos).Name
	for i := 0; i < 50; i++ {
		if got := m.RegionFor(pos).Name; got != first {
			t.Fatalf("RegionFor variou: %q != %q", got, first)
		}
	}
}

func TestRegionForTieBreak(t *testing.T) {
	m := NewRegionMap([]Region{
		{Name: "primeira", Style: "classical", Center: mgl32.Vec3{-10, 0, 0}},
		{Name: "segunda", Style: "modern", Center: mgl32.Vec3{10, 0, 0}},
	})

	// a origem é equidistante dos dois centros; vence a primeira registrada
	for i := 0; i < 10; i++ {
		if got := m.RegionFor(mgl32.Vec3{0, 0, 0}); got.Name != "primeira" {
			t.Fatalf("empate resolveu para %q, want primeira", got.Name)
		}
	}
}

func TestRegionForUsesFullEuclidean(t *testing.T) {
	m := NewRegionMap([]Region{
		{Name: "térreo", Style: "classical", Center: mgl32.Vec3{0, 0, 0}},
		{Name: "mezanino", Style: "modern", Center: mgl32.Vec3{0, 40, 0}},
	})

	if got := m.RegionFor(mgl32.Vec3{0, 35, 0}); got.Name != "mezanino" {
		t.Errorf("RegionFor ignorou o eixo Y: got %q, want mezanino", got.Name)
	}
	if got := m.RegionFor(mgl32.Vec3{0, 5, 0}); got.Name != "térreo" {
		t.Errorf("RegionFor(baixo) = %q, want térreo", got.Name)
	}
}

func TestDefaultRegionStylesResolve(t *testing.T) {
	c := NewStyleCatalog()
	for _, r := range DefaultRegions() {
		if !c.Has(r.Style) {
			t.Errorf("ala %q usa estilo %q fora do catálogo", r.Name, r.Style)
		}
		if len(r.Templates) == 0 {
			t.Errorf("ala %q sem templates de sala", r.Name)
		}
		if len(r.Themes) == 0 {
			t.Errorf("ala %q sem temas de obra", r.Name)
		}
	}
}

func TestRegionMapFirst(t *testing.T) {
	m := NewRegionMap(nil)
	if got := m.First().Name; got != "Ala Clássica" {
		t.Errorf("First = %q, want Ala Clássica", got)
	}
	if got := len(m.All()); got != 5 {
		t.Errorf("All = %d alas, want 5", got)
	}
}
