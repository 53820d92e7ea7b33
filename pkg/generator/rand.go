package generator

// randInt returns a uniform integer in [lo, hi], both ends inclusive.
func (g *Generator) randInt(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// choice picks one element uniformly.
func (g *Generator) choice(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// weighted picks one element with the given relative weights.
func (g *Generator) weighted(options []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return options[i]
		}
	}
	return options[len(options)-1]
}

// weightedInt is weighted for integer outcomes.
func (g *Generator) weightedInt(options []int, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return options[i]
		}
	}
	return options[len(options)-1]
}
