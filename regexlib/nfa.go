package regexlib

import (
	"container/list"
	"unicode/utf8"

	"redeggs/symbol"
)

type nfaState struct {
	id     int
	edges  []*nfaEdge
	accept bool
}

type nfaEdge struct {
	sym symbol.Symbol // nil = ε
	to  *nfaState
}

// NFA is a Thompson automaton with a single accepting state.
type NFA struct {
	Start  *nfaState
	Accept *nfaState
	states []*nfaState
}

type nfaFrag struct {
	start *nfaState
	outs  []*nfaState // states whose ε edge to the next fragment is still missing
}

type nfaBuilder struct {
	states []*nfaState
}

func (b *nfaBuilder) newState() *nfaState {
	s := &nfaState{id: len(b.states)}
	b.states = append(b.states, s)
	return s
}

func patchOuts(outs []*nfaState, to *nfaState) {
	for _, s := range outs {
		s.edges = append(s.edges, &nfaEdge{to: to})
	}
}

// BuildNFA runs Thompson's construction over n.
func BuildNFA(n Node) *NFA {
	b := &nfaBuilder{}
	frag := b.build(n)
	accept := b.newState()
	accept.accept = true
	patchOuts(frag.outs, accept)
	return &NFA{Start: frag.start, Accept: accept, states: b.states}
}

func (b *nfaBuilder) build(n Node) nfaFrag {
	switch n := n.(type) {
	case *EmptyWord:
		s := b.newState()
		return nfaFrag{start: s, outs: []*nfaState{s}}
	case *EmptySet:
		// no way out: the accepting state stays unreachable
		return nfaFrag{start: b.newState()}
	case *Literal:
		s1 := b.newState()
		s2 := b.newState()
		s1.edges = append(s1.edges, &nfaEdge{sym: n.Symbol, to: s2})
		return nfaFrag{start: s1, outs: []*nfaState{s2}}
	case *Concatenation:
		f1 := b.build(n.Left)
		f2 := b.build(n.Right)
		patchOuts(f1.outs, f2.start)
		return nfaFrag{start: f1.start, outs: f2.outs}
	case *Alternation:
		s := b.newState()
		f1 := b.build(n.Left)
		f2 := b.build(n.Right)
		s.edges = append(s.edges, &nfaEdge{to: f1.start}, &nfaEdge{to: f2.start})
		outs := append(f1.outs, f2.outs...)
		return nfaFrag{start: s, outs: outs}
	case *Star:
		s := b.newState()
		f := b.build(n.Inner)
		patchOuts(f.outs, s)
		s.edges = append(s.edges, &nfaEdge{to: f.start})
		return nfaFrag{start: s, outs: []*nfaState{s}}
	default:
		panic("regexlib: unknown syntax tree node")
	}
}

// Len is the number of states.
func (a *NFA) Len() int { return len(a.states) }

type stateSet map[*nfaState]struct{}

func epsilonClosure(set stateSet) stateSet {
	stack := list.New()
	for s := range set {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		elem := stack.Remove(stack.Back()).(*nfaState)
		for _, e := range elem.edges {
			if e.sym == nil {
				if _, ok := set[e.to]; !ok {
					set[e.to] = struct{}{}
					stack.PushBack(e.to)
				}
			}
		}
	}
	return set
}

func move(set stateSet, r rune) stateSet {
	res := make(stateSet)
	for s := range set {
		for _, e := range s.edges {
			if e.sym != nil && e.sym.Contains(r) {
				res[e.to] = struct{}{}
			}
		}
	}
	return res
}

func hasAccept(set stateSet) bool {
	for s := range set {
		if s.accept {
			return true
		}
	}
	return false
}

// Match reports whether the automaton accepts all of s.
func (a *NFA) Match(s string) bool {
	curr := epsilonClosure(stateSet{a.Start: {}})
	for _, r := range s {
		curr = epsilonClosure(move(curr, r))
		if len(curr) == 0 {
			return false
		}
	}
	return hasAccept(curr)
}

// Match is a non-empty match; Start and End are byte offsets.
type Match struct {
	Start, End int
}

// FindAll returns the leftmost-longest non-overlapping non-empty matches in
// s.
func (a *NFA) FindAll(s string) []Match {
	var out []Match
	for i := 0; i < len(s); {
		if n := a.longestAt(s[i:]); n > 0 {
			out = append(out, Match{Start: i, End: i + n})
			i += n
			continue
		}
		_, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
	}
	return out
}

// longestAt returns the byte length of the longest prefix of s the automaton
// accepts, or 0.
func (a *NFA) longestAt(s string) int {
	curr := epsilonClosure(stateSet{a.Start: {}})
	longest := 0
	for pos := 0; pos < len(s); {
		r, sz := utf8.DecodeRuneInString(s[pos:])
		pos += sz
		curr = epsilonClosure(move(curr, r))
		if len(curr) == 0 {
			break
		}
		if hasAccept(curr) {
			longest = pos
		}
	}
	return longest
}
