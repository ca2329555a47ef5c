package skiplist

import (
	"math/bits"
	randv2 "math/rand/v2"
	"time"
)

// Source supplies randomness for level sampling. math/rand/v2 sources
// satisfy it; tests inject stub sources to force specific tower shapes.
type Source interface {
	Uint64() uint64
}

const (
	defaultSeed = uint64(0xdeadbeefcafebabe)

	// float64Unit converts the top 53 bits of a Uint64 into [0, 1).
	float64Unit = 1.0 / (1 << 53)
)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// levelGen samples tower heights with a geometric distribution: level i holds
// roughly n*p^i nodes, which is what gives expected logarithmic search.
type levelGen struct {
	src      Source
	maxLevel int
	p        float64
}

func newLevelGen(cfg Config) *levelGen {
	src := cfg.source
	if src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = newRandomSeed()
		}
		src = randv2.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &levelGen{
		src:      src,
		maxLevel: cfg.MaxLevel,
		p:        cfg.Probability,
	}
}

// next returns a height in [1, maxLevel].
func (g *levelGen) next() int {
	if g.maxLevel <= 1 {
		return 1
	}

	if g.p == 0.5 {
		// Trailing zeros of a uniform word are geometric with p=1/2.
		height := bits.TrailingZeros64(g.src.Uint64()) + 1
		if height > g.maxLevel {
			height = g.maxLevel
		}
		return height
	}

	height := 1
	for height < g.maxLevel {
		randFloat := float64(g.src.Uint64()>>11) * float64Unit
		if randFloat >= g.p {
			break
		}
		height++
	}
	return height
}
