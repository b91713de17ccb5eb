package canopy

import (
	"encoding/binary"
	"hash/fnv"
	"math/bits"
)

// Bloom is a small fixed-size membership filter over WidgetIDs.
//
// Contains never returns false for an id that was added; it may return true
// for ids that were not. It is a value type: copying a Bloom copies the set.
type Bloom struct {
	bits    uint64
	entries int
}

// Add inserts id.
func (b *Bloom) Add(id WidgetID) {
	m := bloomMask(id)
	b.bits |= m
	b.entries++
}

// Contains reports whether id may be in the set.
func (b Bloom) Contains(id WidgetID) bool {
	m := bloomMask(id)
	return b.bits&m == m
}

// Union returns a filter containing the members of both b and other.
func (b Bloom) Union(other Bloom) Bloom {
	return Bloom{bits: b.bits | other.bits, entries: b.entries + other.entries}
}

// EntryCount returns the number of Add calls folded into this filter,
// including those of filters unioned into it.
func (b Bloom) EntryCount() int { return b.entries }

// Len returns the number of set bits, a rough saturation measure.
func (b Bloom) Len() int { return bits.OnesCount64(b.bits) }

func bloomMask(id WidgetID) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	sum := h.Sum64()
	return 1<<(sum&63) | 1<<((sum>>32)&63)
}
