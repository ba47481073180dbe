// Package interval implements the inclusive integer range with a step,
// used to describe one axis of a slicing operation.
package interval

// Interval is an inclusive range {Start, Stop, Step}. Omitted Stop
// defaults to Start and omitted Step defaults to 1 — callers get this by
// using the Point/Range/RangeStep constructors below rather than
// constructing an Interval{} literal with a zero Step.
type Interval struct {
	Start int
	Stop  int
	Step  int
}

// Point returns the single-element interval {i, i, 1}.
func Point(i int) Interval {
	return Interval{Start: i, Stop: i, Step: 1}
}

// Range returns the interval {start, stop, 1}.
func Range(start, stop int) Interval {
	return Interval{Start: start, Stop: stop, Step: 1}
}

// RangeStep returns the interval {start, stop, step}.
func RangeStep(start, stop, step int) Interval {
	return Interval{Start: start, Stop: stop, Step: step}
}

// Forward canonicalises the interval to a positive step. If Step is
// negative, the direction is reversed: {stop, start, -step}. A zero step
// is left as-is (the caller has made a degenerate interval on purpose or
// by mistake; canonicalisation has nothing sensible to do with it).
func (iv Interval) Forward() Interval {
	if iv.Step < 0 {
		return Interval{Start: iv.Stop, Stop: iv.Start, Step: -iv.Step}
	}
	return iv
}

// Reverse returns {Stop, Start, -Step}.
func (iv Interval) Reverse() Interval {
	return Interval{Start: iv.Stop, Stop: iv.Start, Step: -iv.Step}
}

// Modulo wraps Start and Stop into [0, n) via Euclidean modulo, leaving
// Step unchanged.
func (iv Interval) Modulo(n int) Interval {
	return Interval{Start: euclidMod(iv.Start, n), Stop: euclidMod(iv.Stop, n), Step: iv.Step}
}

// Canonicalize applies Modulo(n) then Forward, the sequence spec.md §3
// requires before an interval is used to derive a sliced layout.
func (iv Interval) Canonicalize(n int) Interval {
	return iv.Modulo(n).Forward()
}

// Degenerate reports whether, after canonicalisation, Start > Stop — the
// condition under which a slice built from this interval is empty.
func (iv Interval) Degenerate() bool {
	return iv.Start > iv.Stop
}

// Len returns the number of elements this (already canonicalised)
// interval selects: ceil((Stop-Start+1)/Step).
func (iv Interval) Len() int {
	if iv.Degenerate() || iv.Step <= 0 {
		return 0
	}
	return (iv.Stop-iv.Start+1+iv.Step-1) / iv.Step
}

// euclidMod returns a mod n with a non-negative result, for n > 0.
func euclidMod(a, n int) int {
	if n == 0 {
		return a
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Modulo is the free scalar form of Euclidean modulo spec.md §4.7 asks
// for, shared by Interval.Modulo and by Array subscript wrapping.
func Modulo(a, n int) int {
	return euclidMod(a, n)
}
