package museum

// Limiares do LOD por distância normalizada. A sala corrente é sempre
// tratada como distância zero, então nunca perde detalhe.
const (
	// LODHideHigh oculta painéis decorativos (capitéis, acentos).
	LODHideHigh = 0.7
	// LODHideMedium oculta o detalhe intermediário e as obras penduradas.
	LODHideMedium = 0.9
)

// HiddenAtLOD decide se um painel com o nível de detalhe dado fica oculto à
// distância normalizada [0, 1]. A política é monotônica: o que some a uma
// distância continua sumido em qualquer distância maior. Painéis estruturais
// (DetailLow) nunca somem; a sala só desaparece por completo na evicção.
func HiddenAtLOD(detail DetailLevel, normalized float32) bool {
	switch detail {
	case DetailHigh:
		return normalized >= LODHideHigh
	case DetailMedium:
		return normalized >= LODHideMedium
	default:
		return false
	}
}
