package mines

// FallbackSeed replaces a zero seed; xorshift never leaves the zero state.
const FallbackSeed uint64 = 0x9E3779B97F4A7C15

// XorShift is a 64-bit xorshift generator (shifts 13, 7, 17). It implements
// [math/rand/v2.Source].
type XorShift struct {
	state uint64
}

func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = FallbackSeed
	}
	return &XorShift{state: seed}
}

func (r *XorShift) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// IntN returns a value in [0, n).
//
// panics [AssertionError] if n <= 0
func (r *XorShift) IntN(n int) int {
	if n <= 0 {
		panic(AssertionError{"IntN called with non-positive bound"})
	}
	return int((r.Uint64() >> 1) % uint64(n))
}
