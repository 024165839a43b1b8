package regexlib

import (
	"fmt"
	"sort"

	"redeggs/symbol"
)

type dfaState struct {
	id     int
	accept bool
	trans  map[int]*dfaState // alphabet class index -> target
}

// DFA is a deterministic automaton over an alphabet of code point classes.
// Every code point of a class behaves the same in every state; code points
// outside all classes reject.
type DFA struct {
	Start  *dfaState
	States []*dfaState
	Alpha  []symbol.Interval
}

// Determinize runs the subset construction on a. The alphabet is the
// partition induced by the symbols on a's edges.
func Determinize(a *NFA) *DFA {
	var syms []symbol.Symbol
	for _, s := range a.states {
		for _, e := range s.edges {
			if e.sym != nil {
				syms = append(syms, e.sym)
			}
		}
	}
	alpha := symbol.Partition(syms...)

	key := func(set stateSet) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, s.id)
		}
		sort.Ints(ids)
		return fmt.Sprint(ids)
	}

	initSet := epsilonClosure(stateSet{a.Start: {}})
	dStart := &dfaState{id: 0, accept: hasAccept(initSet), trans: map[int]*dfaState{}}
	mp := map[string]*dfaState{key(initSet): dStart}
	queue := []stateSet{initSet}
	states := []*dfaState{dStart}
	for len(queue) > 0 {
		curSet := queue[0]
		queue = queue[1:]
		curD := mp[key(curSet)]
		for i, class := range alpha {
			moveSet := move(curSet, class.Lo)
			if len(moveSet) == 0 {
				continue
			}
			clo := epsilonClosure(moveSet)
			k := key(clo)
			d, exists := mp[k]
			if !exists {
				d = &dfaState{id: len(states), accept: hasAccept(clo), trans: map[int]*dfaState{}}
				mp[k] = d
				states = append(states, d)
				queue = append(queue, clo)
			}
			curD.trans[i] = d
		}
	}
	return &DFA{Start: dStart, States: states, Alpha: alpha}
}

// classOf returns the index of the alphabet class holding r, or -1.
func (d *DFA) classOf(r rune) int {
	i := sort.Search(len(d.Alpha), func(k int) bool { return d.Alpha[k].Hi >= r })
	if i < len(d.Alpha) && d.Alpha[i].Contains(r) {
		return i
	}
	return -1
}

// Match reports whether the automaton accepts all of s.
func (d *DFA) Match(s string) bool {
	cur := d.Start
	for _, r := range s {
		i := d.classOf(r)
		if i < 0 {
			return false
		}
		next, ok := cur.trans[i]
		if !ok {
			return false
		}
		cur = next
	}
	return cur.accept
}

// Len is the number of states.
func (d *DFA) Len() int { return len(d.States) }
