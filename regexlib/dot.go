package regexlib

import (
	"fmt"
	"io"
	"sort"

	"redeggs/symbol"
)

// ExportDOT writes a Graphviz representation of an *NFA or a *DFA to w.
func ExportDOT(w io.Writer, g interface{}) error {
	ew := &errWriter{w: w}
	ew.printf("digraph G {\n")
	ew.printf("    rankdir=LR;\n")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *DFA:
		for _, s := range t.States {
			ew.printf("    q%d [shape=%s];\n", s.id, shape(s.accept))

			// one edge per target, labelled with the union of its classes
			byTarget := map[*dfaState][]symbol.Interval{}
			var targets []*dfaState
			for c, to := range s.trans {
				if _, seen := byTarget[to]; !seen {
					targets = append(targets, to)
				}
				byTarget[to] = append(byTarget[to], t.Alpha[c])
			}
			sort.Slice(targets, func(i, j int) bool { return targets[i].id < targets[j].id })
			for _, to := range targets {
				label := symbol.NewSet(byTarget[to]...).String()
				ew.printf("    q%d -> q%d [label=%q];\n", s.id, to.id, label)
			}
		}
		ew.printf("    _start [shape=point]; _start -> q%d;\n", t.Start.id)

	//------------------------------------------------------------------ NFA
	case *NFA:
		for _, s := range t.states {
			ew.printf("    n%d [shape=%s];\n", s.id, shape(s.accept))
			for _, e := range s.edges {
				label := "ε"
				if e.sym != nil {
					label = e.sym.String()
				}
				ew.printf("    n%d -> n%d [label=%q];\n", s.id, e.to.id, label)
			}
		}
		ew.printf("    _start [shape=point]; _start -> n%d;\n", t.Start.id)

	default:
		return fmt.Errorf("regexlib: cannot export %T as DOT", g)
	}

	ew.printf("}\n")
	return ew.err
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
