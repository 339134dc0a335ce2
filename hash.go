package regular

const (
	// Golden ratio bit mixers.
	PHI_C32 = uint32(0x9e3779b9)
	PHI_C64 = uint64(0x9e3779b97f4a7c15)
)

func mix(state State) int {
	return mix32(int(state))
}

// 32-bit final mix step of MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// mixPair hashes an ordered pair of states into a single key. The pair is
// ordered, so the two halves are mixed separately before combining.
func mixPair(first, second State) uint64 {
	h := uint64(uint32(mix(first)))<<32 | uint64(uint32(mix(second)))
	return h * PHI_C64
}
