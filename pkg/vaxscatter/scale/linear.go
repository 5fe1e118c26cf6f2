// Package scale maps data values onto pixel positions.
package scale

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Linear is an immutable linear mapping from a data domain to a pixel range.
// Rebuild it with New whenever the domain or range changes.
type Linear struct {
	Domain [2]float64 `json:"domain"`
	Range  [2]float64 `json:"range"`
}

// New returns a linear scale. A zero-width domain is widened to [d, d+1] so
// that every finite input maps to a finite position.
func New(domain, rng [2]float64) Linear {
	if domain[0] == domain[1] {
		domain[1] = domain[0] + 1
	}
	return Linear{Domain: domain, Range: rng}
}

// Apply maps v from the domain onto the range.
func (s Linear) Apply(v float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	return r0 + (v-d0)/(d1-d0)*(r1-r0)
}

// Ticks returns roughly count human-friendly values inside the domain.
// Steps are 1, 2 or 5 times a power of ten.
func (s Linear) Ticks(count int) []float64 {
	return ticks(s.Domain[0], s.Domain[1], float64(count))
}

// TickStep returns the spacing Ticks(count) uses.
func (s Linear) TickStep(count int) float64 {
	start, stop := s.Domain[0], s.Domain[1]
	if stop < start {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	if inc < 0 {
		return -1 / inc
	}
	return inc
}

var printer = message.NewPrinter(language.English)

// TickFormat returns a formatter for Ticks(count): thousands are grouped
// with commas and the precision follows the tick step.
func (s Linear) TickFormat(count int) func(float64) string {
	precision := 0
	if step := s.TickStep(count); step > 0 && !math.IsInf(step, 0) {
		precision = max(0, -int(math.Floor(math.Log10(step)+1e-9)))
	}
	verb := fmt.Sprintf("%%.%df", precision)
	return func(v float64) string {
		if v == 0 {
			v = 0 // drop negative zero
		}
		return printer.Sprintf(verb, v)
	}
}

func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func ticks(start, stop, count float64) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	i1, i2, inc := tickSpec(start, stop, count)
	if !(i2 >= i1) {
		return nil
	}

	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var v float64
		if inc < 0 {
			v = (i1 + float64(i)) / -inc
		} else {
			v = (i1 + float64(i)) * inc
		}
		if reverse {
			out[n-1-i] = v
		} else {
			out[i] = v
		}
	}
	return out
}
