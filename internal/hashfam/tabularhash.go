package hashfam

import "github.com/katalvlaran/dynconn/internal/rngutil"

// TabularHash hashes an unordered edge {v,w} into [0, 2^length) where length
// is the smallest k with 2^k >= n^2 for the n the hash was constructed with.
// Built from blockNum lookup tables of 2^blockSize random values each; per
// endpoint, blockNum/2 tables are XORed together, one per fixed-width bit
// block of the endpoint's index.
//
// The resulting family is 3-wise independent on the pair (v,w), which is
// exactly the guarantee CutSet's cut-edge sampling relies on.
type TabularHash struct {
	blockSize int
	blockNum  int
	length    int
	nUp2      uint64
	oneBlock  uint64
	blocks    [][]uint64
}

// New constructs a TabularHash over n vertices, seeded deterministically,
// with the given block size in bits (spec default is 2). O(blockNum * 2^blockSize).
func New(n uint64, seed int64, blockSize int) *TabularHash {
	if blockSize <= 0 {
		blockSize = 2
	}

	h := &TabularHash{blockSize: blockSize}

	n2 := n * n
	h.nUp2 = 1
	h.length = 0
	for n2 > h.nUp2 {
		h.nUp2 *= 2
		h.length++
	}
	if h.length == 0 {
		// Degenerate n<=1: still need at least one representable value.
		h.nUp2 = 1
		h.length = 1
	}

	h.blockNum = 2 * ceilDiv(h.length, blockSize)
	if h.blockNum == 0 {
		h.blockNum = 2
	}

	for i := 0; i < blockSize; i++ {
		h.oneBlock = h.oneBlock*2 + 1
	}

	blockInternalSize := 1 << uint(blockSize)
	rng := rngutil.New(seed)
	h.blocks = make([][]uint64, h.blockNum)
	for i := 0; i < h.blockNum; i++ {
		row := make([]uint64, blockInternalSize)
		for j := 0; j < blockInternalSize; j++ {
			row[j] = randUint64(rng) % h.nUp2
		}
		h.blocks[i] = row
	}
	return h
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func randUint64(rng interface{ Int63() int64 }) uint64 {
	hi := uint64(rng.Int63()) << 1
	lo := uint64(rng.Int63()) & 1
	return hi | lo
}

// Hash returns the hash of the unordered edge {v,w}. O(length/blockSize).
func (h *TabularHash) Hash(v, w uint64) uint64 {
	var res uint64
	half := h.blockNum / 2
	for i := 0; i < half; i++ {
		idx := (v >> uint(h.blockSize*i)) & h.oneBlock
		res ^= h.blocks[i][idx]
	}
	for i := 0; i < half; i++ {
		idx := (w >> uint(h.blockSize*i)) & h.oneBlock
		res ^= h.blocks[half+i][idx]
	}
	return res
}

// OutputBits returns the number of bits in the hash's output range
// (⌈2·log2 n⌉ in spec notation).
func (h *TabularHash) OutputBits() int {
	return h.length
}
