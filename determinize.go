package regular

// Determinize Converts an NFA to an equivalent DFA using the powerset
// construction. Worst case complexity: exponential in number of states.
//
// Only subsets reachable from the initial singleton are enumerated. State ids
// are assigned in BFS discovery order, scanning symbols in the alphabet's
// canonical order, so the output is reproducible. The result is total over
// its alphabet: whenever the NFA has no move, the transition is routed
// through the empty subset, which acts as a single absorbing trap and is
// allocated lazily the first time a union comes up empty.
func Determinize(n *NFA) *DFA {
	d := NewDFA()
	for symbol := range n.Alphabet {
		d.AddSymbol(symbol)
	}
	symbols := d.Symbols()
	final := n.finalMask()

	// Subset 0 is the singleton holding the NFA initial state.
	seed := NewStateSet()
	seed.Insert(n.Initial)
	initial := seed.Freeze(d.CreateState())
	d.SetAccept(initial.State(), final.Test(uint(n.Initial)))

	subsets := NewHashMap[State](WithCapacity(16))
	subsets.Set(initial, initial.State())

	worklist := []*FrozenStateSet{initial}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, symbol := range symbols {
			next := NewStateSet()
			for _, state := range current.GetArray() {
				for dest := range n.Transitions[Label{State: state, Symbol: symbol}] {
					next.Insert(dest)
				}
			}

			id, ok := subsets.Get(next)
			if !ok {
				frozen := next.Freeze(d.CreateState())
				id = frozen.State()
				subsets.Set(frozen, id)

				accept := false
				for _, state := range frozen.GetArray() {
					if final.Test(uint(state)) {
						accept = true
						break
					}
				}
				d.SetAccept(id, accept)

				worklist = append(worklist, frozen)
			}
			d.AddTransition(current.State(), symbol, id)
		}
	}

	return d
}
