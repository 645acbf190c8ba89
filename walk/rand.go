package walk

// generator is a small deterministic, seedable PRNG (xorshift64*),
// independent of the host OS, used only to draw the uniform double in
// pickLiteral. Given the same seed (host.Random XOR the host's walk
// count), the sequence it produces is reproducible across runs and
// platforms.
type generator struct {
	state uint64
}

func newGenerator(seed uint64) generator {
	if seed == 0 {
		// xorshift64* never recovers from a zero state; perturb it the
		// same way most xorshift implementations seed a zero input.
		seed = 0x9e3779b97f4a7c15
	}
	return generator{state: seed}
}

func (g *generator) next() uint64 {
	g.state ^= g.state >> 12
	g.state ^= g.state << 25
	g.state ^= g.state >> 27
	return g.state * 2685821657736338717
}

// pickDouble returns a uniform double in [0, 1) with 53 bits of entropy,
// using the standard "top mantissa bits of a 64-bit draw" technique.
func (g *generator) pickDouble() float64 {
	return float64(g.next()>>11) / float64(uint64(1)<<53)
}
