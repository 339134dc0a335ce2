package regular

import "slices"

// Hashable is a key type usable with HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// IntSet is a set of states exposed as a sorted array.
type IntSet interface {
	Hashable

	GetArray() []State

	Size() int
}

var _ IntSet = &StateSet{}

// StateSet is a mutable accumulator for a set of states. The hash is
// computed on demand and cached until the next insertion; it is
// order-independent, so two sets with the same members always hash alike.
type StateSet struct {
	inner       map[State]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[State]struct{}),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for state := range s.inner {
		s.hashCode += uint64(mix(state))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if s.Hash() != is.Hash() {
		return false
	}
	return slices.Equal(s.GetArray(), is.GetArray())
}

func (s *StateSet) GetArray() []State {
	keys := make([]State, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) Contains(state State) bool {
	_, ok := s.inner[state]
	return ok
}

func (s *StateSet) Insert(state State) {
	if _, ok := s.inner[state]; ok {
		return
	}
	s.inner[state] = struct{}{}
	s.keyChanged()
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Freeze Returns an immutable snapshot of the current members, remembering
// the automaton state the snapshot was mapped to.
func (s *StateSet) Freeze(state State) *FrozenStateSet {
	return NewFrozenStateSet(s.GetArray(), s.Hash(), state)
}

var _ IntSet = &FrozenStateSet{}

// FrozenStateSet is an immutable set of states with a precomputed hash,
// usable as a HashMap key. The values slice is sorted and must not be
// mutated after construction.
type FrozenStateSet struct {
	values   []State
	state    State
	hashCode uint64
}

func NewFrozenStateSet(values []State, hashCode uint64, state State) *FrozenStateSet {
	return &FrozenStateSet{values: values, hashCode: hashCode, state: state}
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hashCode
}

// Equals Compares members, not just hashes, so a hash collision can never
// alias two distinct sets.
func (f *FrozenStateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if f.Hash() != is.Hash() {
		return false
	}
	return slices.Equal(f.values, is.GetArray())
}

func (f *FrozenStateSet) GetArray() []State {
	return f.values
}

func (f *FrozenStateSet) Size() int {
	return len(f.values)
}

// State Returns the automaton state this set was mapped to when frozen.
func (f *FrozenStateSet) State() State {
	return f.state
}
