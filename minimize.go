package regular

import (
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimize Produces the canonical minimal DFA for the input's language via
// partition refinement. Worst case complexity: O(|Q|² · |Σ|).
//
// The input may be partial; missing transitions are treated as moves into a
// virtual absorbing non-accepting trap. After refinement the unique useless
// trap class, if any, is pruned: its incoming transitions are deleted and it
// is never given a state id, so the output may be partial again. Classes are
// renamed to consecutive ids starting at 0 in BFS discovery order from the
// initial state's class, scanning symbols in canonical order; classes not
// reachable that way are dropped. The initial state is never pruned: when
// its own class is the useless trap the language is empty and the result is
// the one-state DFA with no transitions and no accept states.
func Minimize(d *DFA) *DFA {
	symbols := d.Symbols()

	in := d
	if !isTotal(d, symbols) {
		in = totalize(d, symbols)
	}
	states := slices.Sorted(maps.Keys(in.States))
	final := in.finalMask()

	// Seed partition: non-accepting states, then accepting states, dropping
	// whichever side is empty.
	var accepting, rejecting []State
	for _, state := range states {
		if final.Test(uint(state)) {
			accepting = append(accepting, state)
		} else {
			rejecting = append(rejecting, state)
		}
	}
	var blocks [][]State
	if len(rejecting) > 0 {
		blocks = append(blocks, rejecting)
	}
	if len(accepting) > 0 {
		blocks = append(blocks, accepting)
	}
	blockOf := make(map[State]int, len(states))
	for i, block := range blocks {
		for _, state := range block {
			blockOf[state] = i
		}
	}

	// Refine until a full pass produces no splits. Each pass peels the states
	// disagreeing with their block's representative off into one new block;
	// mixed signatures among the peeled states separate on later passes.
	for {
		split := false
		for i := 0; i < len(blocks); i++ {
			block := blocks[i]
			if len(block) == 1 {
				continue
			}
			rep := block[0]
			stay := block[:1]
			var moved []State
			for _, state := range block[1:] {
				if sameSignature(in, symbols, blockOf, state, rep) {
					stay = append(stay, state)
				} else {
					moved = append(moved, state)
				}
			}
			if len(moved) == 0 {
				continue
			}
			blocks[i] = stay
			for _, state := range moved {
				blockOf[state] = len(blocks)
			}
			blocks = append(blocks, moved)
			split = true
		}
		if !split {
			break
		}
	}

	// The useless trap class: non-accepting and closed under every symbol.
	// The stable partition is the coarsest one, so at most one class
	// qualifies.
	dead := -1
	for i, block := range blocks {
		rep := block[0]
		if final.Test(uint(rep)) {
			continue
		}
		closed := true
		for _, symbol := range symbols {
			dest, ok := in.Step(rep, symbol)
			if !ok || blockOf[dest] != i {
				closed = false
				break
			}
		}
		if closed {
			dead = i
			break
		}
	}

	if dead != -1 && blockOf[in.Initial] == dead {
		// Nothing reaches an accept state: the language is empty.
		return defaultAutomata.MakeEmpty(symbols...)
	}

	// Canonical renumbering: BFS over classes from the initial class,
	// skipping moves into the dead class.
	result := NewDFA()
	for _, symbol := range symbols {
		result.AddSymbol(symbol)
	}

	ids := make([]State, len(blocks))
	seen := bitset.New(uint(len(blocks)))
	startBlock := blockOf[in.Initial]
	seen.Set(uint(startBlock))
	queue := []int{startBlock}
	var order []int
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		ids[b] = result.CreateState()
		order = append(order, b)

		rep := blocks[b][0]
		for _, symbol := range symbols {
			dest, ok := in.Step(rep, symbol)
			if !ok {
				continue
			}
			db := blockOf[dest]
			if db == dead || seen.Test(uint(db)) {
				continue
			}
			seen.Set(uint(db))
			queue = append(queue, db)
		}
	}
	result.Initial = ids[startBlock]

	// Acceptance and transitions come from the stable partition only, read
	// off one representative per class.
	for _, b := range order {
		rep := blocks[b][0]
		result.SetAccept(ids[b], final.Test(uint(rep)))
		for _, symbol := range symbols {
			dest, ok := in.Step(rep, symbol)
			if !ok || blockOf[dest] == dead {
				continue
			}
			result.AddTransition(ids[b], symbol, ids[blockOf[dest]])
		}
	}

	return result
}

// Two states match when every symbol sends them into the same block.
func sameSignature(d *DFA, symbols []Symbol, blockOf map[State]int, state, rep State) bool {
	for _, symbol := range symbols {
		destA, _ := d.Step(state, symbol)
		destB, _ := d.Step(rep, symbol)
		if blockOf[destA] != blockOf[destB] {
			return false
		}
	}
	return true
}

func isTotal(d *DFA, symbols []Symbol) bool {
	for state := range d.States {
		for _, symbol := range symbols {
			if _, ok := d.Step(state, symbol); !ok {
				return false
			}
		}
	}
	return true
}

// totalize copies d and routes every missing transition into a synthetic
// absorbing non-accepting trap numbered after the existing states.
func totalize(d *DFA, symbols []Symbol) *DFA {
	result := NewDFA()
	maps.Copy(result.States, d.States)
	maps.Copy(result.Alphabet, d.Alphabet)
	maps.Copy(result.Transitions, d.Transitions)
	maps.Copy(result.Final, d.Final)
	result.Initial = d.Initial

	trap := State(0)
	for state := range d.States {
		if state >= trap {
			trap = state + 1
		}
	}
	result.States[trap] = struct{}{}

	for state := range d.States {
		for _, symbol := range symbols {
			if _, ok := d.Step(state, symbol); !ok {
				result.AddTransition(state, symbol, trap)
			}
		}
	}
	for _, symbol := range symbols {
		result.AddTransition(trap, symbol, trap)
	}

	return result
}
