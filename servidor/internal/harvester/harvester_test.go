package harvester

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestClassifyThemes(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{"retrato", []string{"Portrait", "oil on canvas"}, []string{"portrait"}},
		{"escultura antiga", []string{"Ancient Greek", "Statue"}, []string{"classical", "sculpture"}},
		{"paisagem", []string{"Landscape", "plein air"}, []string{"landscape"}},
		{"cubismo vira abstrato", []string{"Cubism"}, []string{"abstract"}},
		{"termo composto", []string{"Self-Portrait"}, []string{"portrait"}},
		{"sem correspondência", []string{"textile", "weaving"}, []string{"general"}},
		{"vazio", nil, []string{"general"}},
		{"duplicata não repete", []string{"Portrait", "self-portrait"}, []string{"portrait"}},
	}

	for _, tt := range tests {
		got := classifyThemes(tt.terms)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: classifyThemes(%v) = %v, want %v", tt.name, tt.terms, got, tt.want)
		}
	}
}

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			t.Errorf("page = %q, want 1", r.URL.Query().Get("page"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"pagination": {"total_pages": 3},
			"data": [
				{"id": 27992, "title": "A Sunday on La Grande Jatte", "artist_title": "Georges Seurat",
				 "date_start": 1884, "medium_display": "Oil on canvas", "image_id": "abc-123",
				 "term_titles": ["landscape", "pointillism"]},
				{"id": 11111, "title": "Sem imagem", "artist_title": "Anônimo",
				 "date_start": 1900, "medium_display": "", "image_id": "", "term_titles": []}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient()
	client.baseURL = srv.URL

	recs, totalPages, err := client.FetchPage(1)
	if err != nil {
		t.Fatalf("FetchPage(1) erro inesperado: %v", err)
	}
	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}
	// A obra sem image_id não é importada.
	if len(recs) != 1 {
		t.Fatalf("len(recs) = %d, want 1", len(recs))
	}

	rec := recs[0]
	if rec.ID != "artic-27992" {
		t.Errorf("ID = %q, want artic-27992", rec.ID)
	}
	if rec.Artist != "Georges Seurat" {
		t.Errorf("Artist = %q, want Georges Seurat", rec.Artist)
	}
	if rec.Year != 1884 {
		t.Errorf("Year = %d, want 1884", rec.Year)
	}
	if want := "https://www.artic.edu/iiif/2/abc-123/full/843,/0/default.jpg"; rec.URL != want {
		t.Errorf("URL = %q, want %q", rec.URL, want)
	}
	if !reflect.DeepEqual(rec.Themes, []string{"landscape"}) {
		t.Errorf("Themes = %v, want [landscape]", rec.Themes)
	}
}

func TestFetchPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient()
	client.baseURL = srv.URL

	if _, _, err := client.FetchPage(1); err == nil {
		t.Error("FetchPage com erro 500 deveria falhar")
	}
}
