package regular

import "github.com/bits-and-blooms/bitset"

// Run Returns true if the DFA accepts the given string. Each byte of s is
// one input symbol. A missing transition rejects immediately.
func Run(d *DFA, s string) bool {
	state := d.Initial
	for i := 0; i < len(s); i++ {
		next, ok := d.Step(state, Symbol(s[i]))
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccept(state)
}

// RunNFA Returns true if the NFA accepts the given string, by direct subset
// simulation over a bitset frontier.
func RunNFA(n *NFA, s string) bool {
	current := bitset.New(uint(len(n.States)))
	current.Set(uint(n.Initial))

	for i := 0; i < len(s); i++ {
		symbol := Symbol(s[i])
		next := bitset.New(uint(len(n.States)))
		for state, ok := current.NextSet(0); ok; state, ok = current.NextSet(state + 1) {
			for dest := range n.Transitions[Label{State: State(state), Symbol: symbol}] {
				next.Set(uint(dest))
			}
		}
		if next.None() {
			return false
		}
		current = next
	}

	return current.Intersection(n.finalMask()).Any()
}
