package regular

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// State identifies a single automaton state. Identifiers are nonnegative and
// unique within one automaton; they carry no meaning across automata.
type State int

// Symbol is one input atom. Only ordering and equality are relied on.
type Symbol byte

// Label keys a transition table entry: the source state plus the input symbol.
type Label struct {
	State  State
	Symbol Symbol
}

// NFA Represents a nondeterministic finite automaton. Transitions map a label
// to the nonempty set of possible successor states; a missing label means the
// automaton has no move for that state and symbol. Every state referenced by
// Transitions, Initial or Final must be a member of States, and every symbol
// must be a member of Alphabet (see Validate).
type NFA struct {
	States      map[State]struct{}
	Alphabet    map[Symbol]struct{}
	Transitions map[Label]map[State]struct{}
	Initial     State
	Final       map[State]struct{}
}

func NewNFA() *NFA {
	return &NFA{
		States:      make(map[State]struct{}),
		Alphabet:    make(map[Symbol]struct{}),
		Transitions: make(map[Label]map[State]struct{}),
		Final:       make(map[State]struct{}),
	}
}

// CreateState Create a new state. States are numbered sequentially from 0.
func (n *NFA) CreateState() State {
	state := State(len(n.States))
	n.States[state] = struct{}{}
	return state
}

// SetAccept Set or clear this state as an accept state.
func (n *NFA) SetAccept(state State, accept bool) {
	if accept {
		n.Final[state] = struct{}{}
	} else {
		delete(n.Final, state)
	}
}

// IsAccept Returns true if this state is an accept state.
func (n *NFA) IsAccept(state State) bool {
	_, ok := n.Final[state]
	return ok
}

func (n *NFA) AddSymbol(symbol Symbol) {
	n.Alphabet[symbol] = struct{}{}
}

// AddTransition Add dest states for the given source state and symbol,
// merging with any states already recorded under the same label.
func (n *NFA) AddTransition(source State, symbol Symbol, dest ...State) {
	if len(dest) == 0 {
		return
	}
	key := Label{State: source, Symbol: symbol}
	set, ok := n.Transitions[key]
	if !ok {
		set = make(map[State]struct{}, len(dest))
		n.Transitions[key] = set
	}
	for _, d := range dest {
		set[d] = struct{}{}
	}
}

// NumStates Returns the number of states.
func (n *NFA) NumStates() int {
	return len(n.States)
}

// Symbols Returns the alphabet in its canonical (sorted) order.
func (n *NFA) Symbols() []Symbol {
	return slices.Sorted(maps.Keys(n.Alphabet))
}

// Returns the accept states as a mask indexed by state id.
func (n *NFA) finalMask() *bitset.BitSet {
	mask := bitset.New(uint(len(n.States)))
	for state := range n.Final {
		mask.Set(uint(state))
	}
	return mask
}

// Validate Checks membership closure: every transition uses a symbol from the
// alphabet and only states from the state set, the initial state is a state,
// and every accept state is a state. A well-formed automaton returns nil.
func (n *NFA) Validate() error {
	if _, ok := n.States[n.Initial]; !ok {
		return fmt.Errorf("initial state %d is not a state", n.Initial)
	}
	for state := range n.Final {
		if _, ok := n.States[state]; !ok {
			return fmt.Errorf("accept state %d is not a state", state)
		}
	}
	for key, dests := range n.Transitions {
		if _, ok := n.States[key.State]; !ok {
			return fmt.Errorf("transition source %d is not a state", key.State)
		}
		if _, ok := n.Alphabet[key.Symbol]; !ok {
			return fmt.Errorf("transition symbol %q is not in the alphabet", key.Symbol)
		}
		if len(dests) == 0 {
			return fmt.Errorf("transition from %d on %q has an empty dest set", key.State, key.Symbol)
		}
		for dest := range dests {
			if _, ok := n.States[dest]; !ok {
				return fmt.Errorf("transition dest %d is not a state", dest)
			}
		}
	}
	return nil
}

// DFA Represents a deterministic finite automaton. Transitions map a label to
// the single successor state. Determinization produces a table that is total
// over States × Alphabet; minimization may leave it partial again, because
// transitions into the pruned useless trap are deleted rather than kept.
type DFA struct {
	States      map[State]struct{}
	Alphabet    map[Symbol]struct{}
	Transitions map[Label]State
	Initial     State
	Final       map[State]struct{}
}

func NewDFA() *DFA {
	return &DFA{
		States:      make(map[State]struct{}),
		Alphabet:    make(map[Symbol]struct{}),
		Transitions: make(map[Label]State),
		Final:       make(map[State]struct{}),
	}
}

// CreateState Create a new state. States are numbered sequentially from 0.
func (d *DFA) CreateState() State {
	state := State(len(d.States))
	d.States[state] = struct{}{}
	return state
}

// SetAccept Set or clear this state as an accept state.
func (d *DFA) SetAccept(state State, accept bool) {
	if accept {
		d.Final[state] = struct{}{}
	} else {
		delete(d.Final, state)
	}
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state State) bool {
	_, ok := d.Final[state]
	return ok
}

func (d *DFA) AddSymbol(symbol Symbol) {
	d.Alphabet[symbol] = struct{}{}
}

// AddTransition Record the successor for the given source state and symbol,
// replacing any transition already present under the same label.
func (d *DFA) AddTransition(source State, symbol Symbol, dest State) {
	d.Transitions[Label{State: source, Symbol: symbol}] = dest
}

// Step Performs one transition. The second return is false when the table
// has no move for this state and symbol.
func (d *DFA) Step(state State, symbol Symbol) (State, bool) {
	dest, ok := d.Transitions[Label{State: state, Symbol: symbol}]
	return dest, ok
}

// NumStates Returns the number of states.
func (d *DFA) NumStates() int {
	return len(d.States)
}

// Symbols Returns the alphabet in its canonical (sorted) order.
func (d *DFA) Symbols() []Symbol {
	return slices.Sorted(maps.Keys(d.Alphabet))
}

// Returns the accept states as a mask indexed by state id.
func (d *DFA) finalMask() *bitset.BitSet {
	mask := bitset.New(uint(len(d.States)))
	for state := range d.Final {
		mask.Set(uint(state))
	}
	return mask
}

// Equals Structural equality: pointwise equal states, alphabet, transition
// table, initial state and accept set. Minimization labels states in a
// deterministic order, so two language-equal pipeline results compare equal.
func (d *DFA) Equals(other *DFA) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Initial == other.Initial &&
		maps.Equal(d.States, other.States) &&
		maps.Equal(d.Alphabet, other.Alphabet) &&
		maps.Equal(d.Transitions, other.Transitions) &&
		maps.Equal(d.Final, other.Final)
}

// Validate Checks membership closure, the deterministic counterpart of
// NFA.Validate.
func (d *DFA) Validate() error {
	if _, ok := d.States[d.Initial]; !ok {
		return fmt.Errorf("initial state %d is not a state", d.Initial)
	}
	for state := range d.Final {
		if _, ok := d.States[state]; !ok {
			return fmt.Errorf("accept state %d is not a state", state)
		}
	}
	for key, dest := range d.Transitions {
		if _, ok := d.States[key.State]; !ok {
			return fmt.Errorf("transition source %d is not a state", key.State)
		}
		if _, ok := d.Alphabet[key.Symbol]; !ok {
			return fmt.Errorf("transition symbol %q is not in the alphabet", key.Symbol)
		}
		if _, ok := d.States[dest]; !ok {
			return fmt.Errorf("transition dest %d is not a state", dest)
		}
	}
	return nil
}

// Automata Factory for canned machines.
type Automata struct{}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language over the
// given alphabet: a single non-accepting state and no transitions. This is
// the canonical form Minimize produces for an empty language.
func (*Automata) MakeEmpty(alphabet ...Symbol) *DFA {
	d := NewDFA()
	d.CreateState()
	for _, symbol := range alphabet {
		d.AddSymbol(symbol)
	}
	return d
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...Symbol) *DFA {
	d := NewDFA()
	s := d.CreateState()
	d.SetAccept(s, true)
	for _, symbol := range alphabet {
		d.AddSymbol(symbol)
	}
	return d
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over the
// given alphabet.
func (*Automata) MakeAnyString(alphabet ...Symbol) *DFA {
	d := NewDFA()
	s := d.CreateState()
	d.SetAccept(s, true)
	for _, symbol := range alphabet {
		d.AddSymbol(symbol)
		d.AddTransition(s, symbol, s)
	}
	return d
}
