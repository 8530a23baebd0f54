package catalog

import (
	"testing"
)

// fixedShuffle satisfaz Shuffler sem alterar a ordem, para asserções
// determinísticas sobre o conteúdo do pool.
type fixedShuffle struct{}

func (fixedShuffle) Shuffle(n int, swap func(i, j int)) {}

// reverseShuffle inverte o pool, o suficiente para provar que o shuffler
// injetado é respeitado.
type reverseShuffle struct{}

func (reverseShuffle) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func seedStore() *Store {
	s := NewStore()
	s.AddAll([]Record{
		{ID: "a1", Title: "Alfa", Themes: []string{"classical"}},
		{ID: "a2", Title: "Beta", Themes: []string{"classical", "portrait"}},
		{ID: "a3", Title: "Gama", Themes: []string{"portrait"}},
		{ID: "g1", Title: "Neutra", Themes: []string{"general"}, Fallback: true},
	})
	return s
}

func TestImagesForMergesThemesWithoutDuplicates(t *testing.T) {
	s := seedStore()

	got := s.ImagesFor([]string{"classical", "portrait"}, 10, fixedShuffle{})
	if len(got) != 3 {
		t.Fatalf("len(ImagesFor) = %d, want 3 (a2 não pode aparecer duas vezes)", len(got))
	}
	seen := map[string]int{}
	for _, rec := range got {
		seen[rec.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("obra %s apareceu %d vezes no pool", id, n)
		}
	}
}

func TestImagesForSlicesToCount(t *testing.T) {
	s := seedStore()

	got := s.ImagesFor([]string{"classical", "portrait"}, 2, fixedShuffle{})
	if len(got) != 2 {
		t.Errorf("len(ImagesFor) = %d, want 2", len(got))
	}

	if got := s.ImagesFor([]string{"classical"}, 0, fixedShuffle{}); got != nil {
		t.Errorf("ImagesFor(count=0) = %v, want nil", got)
	}
}

func TestImagesForFallsBackToGeneral(t *testing.T) {
	s := seedStore()

	got := s.ImagesFor([]string{"tema_inexistente"}, 5, fixedShuffle{})
	if len(got) != 1 {
		t.Fatalf("len(ImagesFor) = %d, want 1 (pool general)", len(got))
	}
	if got[0].ID != "g1" || !got[0].Fallback {
		t.Errorf("fallback = %+v, want obra g1 com Fallback=true", got[0])
	}
}

func TestImagesForHonorsInjectedShuffler(t *testing.T) {
	s := seedStore()

	plain := s.ImagesFor([]string{"classical", "portrait"}, 3, fixedShuffle{})
	reversed := s.ImagesFor([]string{"classical", "portrait"}, 3, reverseShuffle{})

	if len(plain) != 3 || len(reversed) != 3 {
		t.Fatalf("tamanhos = (%d, %d), want (3, 3)", len(plain), len(reversed))
	}
	if plain[0].ID != reversed[2].ID || plain[2].ID != reversed[0].ID {
		t.Errorf("shuffler invertido não foi aplicado: plain=%v reversed=%v",
			[]string{plain[0].ID, plain[1].ID, plain[2].ID},
			[]string{reversed[0].ID, reversed[1].ID, reversed[2].ID})
	}
}

func TestAddIgnoresDuplicateIDs(t *testing.T) {
	s := NewStore()
	rec := Record{ID: "x1", Title: "Original", Themes: []string{"modern"}}

	if !s.Add(rec) {
		t.Fatalf("Add(x1) = false na primeira inserção, want true")
	}
	dup := rec
	dup.Title = "Duplicata"
	if s.Add(dup) {
		t.Errorf("Add(x1) = true na reinserção, want false")
	}
	if got := s.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if got := s.ThemeCount("modern"); got != 1 {
		t.Errorf("ThemeCount(modern) = %d, want 1", got)
	}
}

func TestDefaultCollectionCoversRegionThemes(t *testing.T) {
	s := NewStore()
	s.AddAll(DefaultCollection())

	themes := []string{"classical", "portrait", "landscape", "modern", "abstract",
		"sculpture", "baroque", "minimalist", "industrial", FallbackTheme}
	for _, theme := range themes {
		if got := s.ThemeCount(theme); got == 0 {
			t.Errorf("ThemeCount(%q) = 0, want > 0: coleção padrão deve cobrir todos os temas das alas", theme)
		}
	}
}

func TestModelRoundTrip(t *testing.T) {
	rec := Record{
		ID: "rt1", Title: "Ida e Volta", Artist: "Anônimo",
		Description: "conversão Record↔ArtworkModel",
		Year:        1999, Source: "teste", URL: "procgen://rt1",
		Themes: []string{"modern", "abstract"}, Fallback: false,
	}

	back := fromModel(toModel(rec))
	if back.ID != rec.ID || back.Title != rec.Title || back.Year != rec.Year {
		t.Errorf("fromModel(toModel()) = %+v, want %+v", back, rec)
	}
	if len(back.Themes) != 2 || back.Themes[0] != "modern" || back.Themes[1] != "abstract" {
		t.Errorf("Themes = %v, want [modern abstract]", back.Themes)
	}

	empty := fromModel(toModel(Record{ID: "rt2"}))
	if empty.Themes != nil {
		t.Errorf("Themes de registro sem temas = %v, want nil", empty.Themes)
	}
}
