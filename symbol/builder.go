package symbol

import "sort"

// Factory hands out a fresh Builder per character class.
type Factory interface {
	NewClass() Builder
}

// Builder accumulates include and exclude operations for one character
// class. Operations are applied in call order when the class is finalized:
// an include adds its interval to the members collected so far and an
// exclude removes its interval from them. An exclude issued before any
// include therefore removes nothing.
type Builder interface {
	Include(iv Interval) Builder
	Exclude(iv Interval) Builder
	// Finalize folds the recorded operations into a Symbol. A Builder can
	// be finalized only once.
	Finalize() Symbol
}

// NewFactory returns a Factory producing Set symbols. It holds no state and
// may be shared between goroutines.
func NewFactory() Factory { return setFactory{} }

type setFactory struct{}

func (setFactory) NewClass() Builder { return &setBuilder{} }

type classOp struct {
	iv      Interval
	exclude bool
}

type setBuilder struct {
	ops       []classOp
	finalized bool
}

func (b *setBuilder) Include(iv Interval) Builder { return b.record(classOp{iv: iv}) }

func (b *setBuilder) Exclude(iv Interval) Builder { return b.record(classOp{iv: iv, exclude: true}) }

func (b *setBuilder) record(op classOp) Builder {
	if b.finalized {
		panic("symbol: builder used after Finalize")
	}
	b.ops = append(b.ops, op)
	return b
}

func (b *setBuilder) Finalize() Symbol {
	if b.finalized {
		panic("symbol: Finalize called twice")
	}
	b.finalized = true

	var s Set
	for _, op := range b.ops {
		if op.exclude {
			s = s.subtract(op.iv)
		} else {
			s = s.union(op.iv)
		}
	}
	b.ops = nil
	return s
}

// Partition splits the code points covered by syms into the coarsest
// intervals that no symbol cuts: for every returned interval and every
// symbol, either all of the interval's code points are members or none are.
// The result is sorted and covers exactly the union of syms.
func Partition(syms ...Symbol) []Interval {
	var cuts []rune
	for _, sym := range syms {
		for _, iv := range sym.Intervals() {
			cuts = append(cuts, iv.Lo, iv.Hi+1)
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i] < cuts[j] })

	var out []Interval
	for i := 0; i+1 < len(cuts); i++ {
		lo, next := cuts[i], cuts[i+1]
		if lo == next {
			continue
		}
		for _, sym := range syms {
			if sym.Contains(lo) {
				out = append(out, Interval{Lo: lo, Hi: next - 1})
				break
			}
		}
	}
	return out
}
