package regular

// Union Computes the canonical minimal DFA accepting L(a) ∪ L(b).
//
// The operands are joined with a fresh start state, determinized, and
// minimized. The result carries the union of the two alphabets, contains
// only reachable states, has no useless trap, and is labeled with
// consecutive state ids, so language-equal operands always yield
// structurally equal results. An empty union language comes back as the
// single-state non-accepting DFA.
func Union(a, b *NFA) *DFA {
	return Minimize(Determinize(unionNFA(a, b)))
}

// Intersect Computes the canonical minimal DFA accepting L(a) ∩ L(b).
//
// Both operands are determinized first, then run in lockstep through the
// product construction, and the product is minimized. The same canonical
// guarantees as Union apply.
func Intersect(a, b *NFA) *DFA {
	return Minimize(product(Determinize(a), Determinize(b)))
}
