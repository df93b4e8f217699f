package gridloc

import (
	"math/rand"
	"time"
)

// defaultSeed seeds the default RandomSource from the wall clock, so a
// run that never calls WithRandom still gets varying Random output
// instead of a fixed sequence.
func defaultSeed() int64 {
	return time.Now().UnixNano()
}

// RandomSource supplies the byte drawn by the Random instruction. Random
// has no parser character of its own (see instruction.go), so this
// collaborator is reachable only through direct Instruction construction
// or a future character assignment; it still needs a deterministic,
// pluggable source per spec §5.
type RandomSource interface {
	Byte() byte
}

// mathRandomSource is the default RandomSource, backed by math/rand so a
// caller can reproduce a run exactly by fixing the seed.
type mathRandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed.
func NewRandomSource(seed int64) RandomSource {
	return &mathRandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mathRandomSource) Byte() byte {
	return byte(s.rng.Intn(256))
}
