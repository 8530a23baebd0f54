package museum

import "testing"

func TestStyleCatalogGetUnknown(t *testing.T) {
	c := NewStyleCatalog()
	got := c.Get("vaporwave")
	want := c.Get(DefaultStyleName)
	if got != want {
		t.Errorf("Get(vaporwave) = %+v, want o preset %q", got, DefaultStyleName)
	}
}

func TestStyleCatalogHas(t *testing.T) {
	c := NewStyleCatalog()
	for _, name := range []string{"classical", "modern", "baroque", "minimalist", "industrial"} {
		if !c.Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
	}
	if c.Has("vaporwave") {
		t.Error("Has(vaporwave) = true, want false")
	}
}

func TestAddCustomRegisters(t *testing.T) {
	c := NewStyleCatalog()
	p := c.Get("modern")
	p.Wall.Color = Color{10, 20, 30, 255}

	if !c.AddCustom("gallery_noir", p) {
		t.Fatal("AddCustom(gallery_noir) = false, want true")
	}
	got := c.Get("gallery_noir")
	if got.Name != "gallery_noir" {
		t.Errorf("Name = %q, want gallery_noir", got.Name)
	}
	if got.Wall.Color != (Color{10, 20, 30, 255}) {
		t.Errorf("Wall.Color = %+v, want a cor customizada", got.Wall.Color)
	}
}

func TestAddCustomRejectsIncomplete(t *testing.T) {
	c := NewStyleCatalog()

	var empty StylePreset
	if c.AddCustom("broken", empty) {
		t.Error("AddCustom(preset vazio) = true, want false")
	}
	if c.Has("broken") {
		t.Error("preset incompleto acabou registrado")
	}

	partial := c.Get("modern")
	partial.Ceiling.Color.A = 0
	if c.AddCustom("semiteto", partial) {
		t.Error("AddCustom(sem teto) = true, want false")
	}

	if c.AddCustom("", c.Get("modern")) {
		t.Error("AddCustom com nome vazio = true, want false")
	}
}

func TestAddCustomOverwrites(t *testing.T) {
	c := NewStyleCatalog()
	p := c.Get("baroque")
	p.Lighting = "neon"
	if !c.AddCustom("modern", p) {
		t.Fatal("sobrescrever nome existente deveria ser aceito")
	}
	if got := c.Get("modern"); got.Lighting != "neon" {
		t.Errorf("Lighting = %q, want neon", got.Lighting)
	}
}

func TestBlendStylesIdentity(t *testing.T) {
	a := styleBaroque
	want := a
	want.Name = "transition_baroque_baroque"

	for _, f := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := BlendStyles(a, a, f); got != want {
			t.Errorf("BlendStyles(a, a, %v) = %+v, want o próprio preset", f, got)
		}
	}
}

func TestBlendStylesDominantSide(t *testing.T) {
	a, b := styleClassical, styleModern

	low := BlendStyles(a, b, 0.25)
	if low.Lighting != a.Lighting || low.TextureTag != a.TextureTag || low.Decorative != a.Decorative {
		t.Errorf("factor 0.25: categóricos de %q, want os de %q", low.Lighting, a.Lighting)
	}
	if low.Name != "transition_classical_modern" {
		t.Errorf("Name = %q, want transition_classical_modern", low.Name)
	}

	mid := BlendStyles(a, b, 0.5)
	if mid.Lighting != b.Lighting || mid.TextureTag != b.TextureTag || mid.Decorative != b.Decorative {
		t.Errorf("factor 0.5: categóricos = %q, want os do destino %q", mid.Lighting, b.Lighting)
	}
}

func TestBlendStylesEndpoints(t *testing.T) {
	a, b := styleClassical, styleModern
	if got := BlendStyles(a, b, 0); got.Wall != a.Wall || got.Floor != a.Floor || got.Accent != a.Accent {
		t.Errorf("factor 0 não preserva a origem: %+v", got.Wall)
	}
	if got := BlendStyles(a, b, 1); got.Wall != b.Wall || got.Floor != b.Floor || got.Accent != b.Accent {
		t.Errorf("factor 1 não atinge o destino: %+v", got.Wall)
	}
}

func TestBlendStylesClampsFactor(t *testing.T) {
	a, b := styleClassical, styleModern
	if got, want := BlendStyles(a, b, -2), BlendStyles(a, b, 0); got != want {
		t.Error("factor -2 deveria equivaler a 0")
	}
	if got, want := BlendStyles(a, b, 3), BlendStyles(a, b, 1); got != want {
		t.Error("factor 3 deveria equivaler a 1")
	}
}
