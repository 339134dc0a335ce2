package regular

// unionNFA builds an NFA accepting the union of the two operand languages.
//
// The result starts as a copy of a with the alphabet widened to both
// operands. Every state of b is imported shifted by a fixed offset equal to
// a's state count, keeping the two originals disjoint. A fresh start state,
// numbered after all imported states, mimics the start transitions of both
// originals and accepts iff either original start does, which preserves
// acceptance of the empty string.
func unionNFA(a, b *NFA) *NFA {
	result := NewNFA()

	for state := range a.States {
		result.States[state] = struct{}{}
	}
	for state := range a.Final {
		result.Final[state] = struct{}{}
	}
	for symbol := range a.Alphabet {
		result.AddSymbol(symbol)
	}
	for symbol := range b.Alphabet {
		result.AddSymbol(symbol)
	}
	for key, dests := range a.Transitions {
		for dest := range dests {
			result.AddTransition(key.State, key.Symbol, dest)
		}
	}

	offset := State(a.NumStates())
	for state := range b.States {
		result.States[state+offset] = struct{}{}
		if b.IsAccept(state) {
			result.SetAccept(state+offset, true)
		}
	}
	for key, dests := range b.Transitions {
		for dest := range dests {
			result.AddTransition(key.State+offset, key.Symbol, dest+offset)
		}
	}

	// Fresh start state, numbered after everything imported.
	start := State(result.NumStates())
	result.States[start] = struct{}{}
	result.Initial = start
	if a.IsAccept(a.Initial) || b.IsAccept(b.Initial) {
		result.SetAccept(start, true)
	}

	for symbol := range result.Alphabet {
		for dest := range a.Transitions[Label{State: a.Initial, Symbol: symbol}] {
			result.AddTransition(start, symbol, dest)
		}
		for dest := range b.Transitions[Label{State: b.Initial, Symbol: symbol}] {
			result.AddTransition(start, symbol, dest+offset)
		}
	}

	return result
}
