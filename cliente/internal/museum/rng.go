package museum

import "time"

// splitmix64 espalha a semente inicial para evitar estados fracos.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand é um gerador xorshift64* injetado em todas as escolhas aleatórias do
// gerador do museu. Com semente fixa, a sequência de templates e obras é
// reproduzível de ponta a ponta.
type Rand struct {
	state uint64
}

// NewRand cria um gerador. Semente 0 deriva do relógio.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := splitmix64(uint64(seed))
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &Rand{state: s}
}

// NextU64 avança o estado e retorna 64 bits pseudoaleatórios.
func (r *Rand) NextU64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// Intn retorna um inteiro uniforme em [0, n). n <= 0 retorna 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Float64 retorna um float uniforme em [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) / float64(1<<53)
}

// Pick escolhe um elemento uniformemente; lista vazia retorna "".
func (r *Rand) Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[r.Intn(len(list))]
}

// Shuffle embaralha n elementos via Fisher-Yates.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
