package regexlib

// Minimize returns the minimal DFA for the language of d using Hopcroft's
// partition refinement. Missing transitions lead to an implicit dead state
// which takes part in refinement and is dropped again afterwards. States of
// the result are numbered in breadth-first order from the start state.
func Minimize(d *DFA) *DFA {
	if d == nil || d.Start == nil {
		return d
	}

	n := len(d.States)
	dead := n
	target := func(s, c int) int {
		if s == dead {
			return dead
		}
		if t, ok := d.States[s].trans[c]; ok {
			return t.id
		}
		return dead
	}

	// --- 1. initial partition ----------------------------------------------
	acc := map[int]struct{}{}
	non := map[int]struct{}{dead: {}}
	for _, s := range d.States {
		if s.accept {
			acc[s.id] = struct{}{}
		} else {
			non[s.id] = struct{}{}
		}
	}
	partitions := []map[int]struct{}{non}
	if len(acc) != 0 {
		partitions = append(partitions, acc)
	}

	// blocks are tracked by index in the work list
	work := make([]int, 0, len(partitions))
	inWork := map[int]bool{}
	for i := range partitions {
		work = append(work, i)
		inWork[i] = true
	}

	// --- 2. refine ------------------------------------------------------------
	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		inWork[idx] = false
		A := partitions[idx]

		for c := range d.Alpha {
			// X = states reaching A on c
			X := map[int]struct{}{}
			for s := 0; s <= n; s++ {
				if _, ok := A[target(s, c)]; ok {
					X[s] = struct{}{}
				}
			}
			if len(X) == 0 {
				continue
			}

			for p := 0; p < len(partitions); p++ {
				Y := partitions[p]
				inter := map[int]struct{}{}
				diff := map[int]struct{}{}
				for s := range Y {
					if _, ok := X[s]; ok {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				partitions[p] = inter
				partitions = append(partitions, diff)
				nd := len(partitions) - 1

				switch {
				case inWork[p]:
					work = append(work, nd)
					inWork[nd] = true
				case len(inter) <= len(diff):
					work = append(work, p)
					inWork[p] = true
				default:
					work = append(work, nd)
					inWork[nd] = true
				}
			}
		}
	}

	// --- 3. build the reduced automaton ---------------------------------------
	blockOf := make([]int, n+1)
	rep := make([]int, len(partitions))
	for b, P := range partitions {
		rep[b] = -1
		for s := range P {
			blockOf[s] = b
			if rep[b] < 0 || s < rep[b] {
				rep[b] = s
			}
		}
	}
	deadBlock := blockOf[dead]
	startBlock := blockOf[d.Start.id]

	if startBlock == deadBlock {
		s := &dfaState{id: 0, trans: map[int]*dfaState{}}
		return &DFA{Start: s, States: []*dfaState{s}, Alpha: d.Alpha}
	}

	newOf := map[int]*dfaState{}
	var states []*dfaState
	add := func(b int) *dfaState {
		s := &dfaState{id: len(states), accept: d.States[rep[b]].accept, trans: map[int]*dfaState{}}
		newOf[b] = s
		states = append(states, s)
		return s
	}
	add(startBlock)
	queue := []int{startBlock}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		cur := newOf[b]
		for c := range d.Alpha {
			tb := blockOf[target(rep[b], c)]
			if tb == deadBlock {
				continue
			}
			ns, ok := newOf[tb]
			if !ok {
				ns = add(tb)
				queue = append(queue, tb)
			}
			cur.trans[c] = ns
		}
	}

	return &DFA{
		Start:  newOf[startBlock],
		States: states,
		Alpha:  d.Alpha,
	}
}
