package ui

import "hash/fnv"

// ID keys retained state across frames. Equal source strings yield the
// same ID on every frame, which is what lets a grid find the sizes it
// measured last time around.
type ID uint64

func NewID(source string) ID {
	h := fnv.New64a()
	_, _ = h.Write([]byte(source))
	return ID(h.Sum64())
}

// With derives a child ID, for per-widget state nested under a parent.
func (id ID) With(child string) ID {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(id >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(child))
	return ID(h.Sum64())
}
