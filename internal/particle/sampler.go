package particle

import (
	"math/rand"
	"sync"
	"time"
)

// RandomInRange returns a value uniformly sampled from the closed range [min, max].
// A reversed range is sampled as if its bounds were swapped; min == max returns min.
func RandomInRange(s Sampler, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	f := s.Float64()
	// 防止外部 Sampler 越界
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return min + f*(max-min)
}

// RandomIndex returns a uniformly chosen index in [0, n). n must be positive.
func RandomIndex(s Sampler, n int) int {
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// NewRandSampler returns a math/rand backed sampler with the given seed.
func NewRandSampler(seed int64) Sampler {
	return rand.New(rand.NewSource(seed))
}

var (
	defaultOnce    sync.Once
	defaultSampler Sampler
)

// DefaultSampler returns a process-wide time-seeded sampler.
//
// Every driver that does not bring its own sampler shares it, so it is locked
// once here. Locked(DefaultSampler()) returns the same instance.
func DefaultSampler() Sampler {
	defaultOnce.Do(func() {
		// 所有实例共用同一个随机源，只能有一把锁
		defaultSampler = Locked(NewRandSampler(time.Now().UnixNano()))
	})
	return defaultSampler
}

// FixedSampler replays a fixed sequence of fractions, wrapping around at the end.
// An empty sequence always returns 0.
type FixedSampler struct {
	Values []float64
	next   int
}

// NewFixedSampler creates a FixedSampler over values.
func NewFixedSampler(values ...float64) *FixedSampler {
	return &FixedSampler{Values: values}
}

// Float64 returns the next value in the sequence.
func (f *FixedSampler) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}

// Calls returns how many values have been drawn.
func (f *FixedSampler) Calls() int {
	return f.next
}

type lockedSampler struct {
	mu sync.Mutex
	s  Sampler
}

// Locked wraps s so it can be shared between the frame loop and a resize
// callback running on another goroutine.
func Locked(s Sampler) Sampler {
	// 已加锁的不再包装，否则不同实例会各持一把锁
	if _, ok := s.(*lockedSampler); ok {
		return s
	}
	return &lockedSampler{s: s}
}

func (l *lockedSampler) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Float64()
}
