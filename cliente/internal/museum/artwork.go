package museum

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"MuseumVision/shared/catalog"
)

// ImageProvider entrega registros do acervo para um conjunto de temas. A
// implementação de produção é o catalog.Store; os testes injetam provedores
// fixos.
type ImageProvider interface {
	ImagesFor(themes []string, count int, rng catalog.Shuffler) []catalog.Record
}

// Artwork é um registro do acervo pendurado numa âncora de parede. FrameSize
// é a moldura externa, levemente maior que a área útil da âncora.
type Artwork struct {
	Anchor    AnchorPoint
	Record    catalog.Record
	FrameSize mgl32.Vec3
}

// ArtworkPlacer pareia as âncoras de um espaço com registros do acervo e
// entrega o resultado à cena.
type ArtworkPlacer struct {
	provider ImageProvider
	scene    Scene
	rng      *Rand
}

// NewArtworkPlacer cria o posicionador sobre um provedor de imagens.
func NewArtworkPlacer(provider ImageProvider, scene Scene, rng *Rand) *ArtworkPlacer {
	return &ArtworkPlacer{provider: provider, scene: scene, rng: rng}
}

// PlaceArtworks pede um registro por âncora e os pareia em ordem posicional.
// Acervo insuficiente deixa as âncoras excedentes vazias; a sala continua
// válida. Retorna quantas obras foram penduradas.
func (p *ArtworkPlacer) PlaceArtworks(s *Space, themes []string) int {
	if len(s.Anchors) == 0 {
		return 0
	}

	records := p.provider.ImagesFor(themes, len(s.Anchors), p.rng)
	if len(records) > len(s.Anchors) {
		records = records[:len(s.Anchors)]
	}
	if len(records) < len(s.Anchors) {
		log.Printf("[Artwork] AVISO: %s pediu %d obras e o acervo forneceu %d, âncoras restantes ficam vazias",
			s.Key(), len(s.Anchors), len(records))
	}

	for i, rec := range records {
		anchor := s.Anchors[i]
		p.scene.AddArtwork(s, Artwork{
			Anchor:    anchor,
			Record:    rec,
			FrameSize: mgl32.Vec3{anchor.Width + 0.2, anchor.Height + 0.2, 0.12},
		})
	}
	return len(records)
}
