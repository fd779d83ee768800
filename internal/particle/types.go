// Package particle provides the random range primitives shared by every flake
// variant: closed numeric ranges, the sampler they draw from, and parsing of the
// textual range format used in configuration files.
package particle

// Range is a closed interval [Min, Max] that per-flake parameters are sampled from.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a degenerate range that always samples v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Span returns Max-Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	lo, hi := r.ordered()
	return v >= lo && v <= hi
}

// Sample draws one value uniformly from the range.
func (r Range) Sample(s Sampler) float64 {
	return RandomInRange(s, r.Min, r.Max)
}

func (r Range) ordered() (float64, float64) {
	if r.Min > r.Max {
		return r.Max, r.Min
	}
	return r.Min, r.Max
}

// Sampler is a source of uniformly distributed fractions in [0, 1].
//
// *rand.Rand satisfies it, so does FixedSampler.
type Sampler interface {
	Float64() float64
}
