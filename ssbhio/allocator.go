package ssbhio

// Allocator is the data pointer of a single serialization pass: the next
// free byte position where pointed-to payload data may be placed. One
// Allocator is created per top-level encode, seeded just past the fixed
// root record, threaded through every nested write, and discarded when the
// encode returns.
//
// The engine maintains the invariant that the allocator never points before
// the writer's current position when an offset is computed, so emitted
// offsets are always non-negative.
type Allocator struct {
	pos int64
}

// NewAllocator returns an allocator seeded at pos.
func NewAllocator(pos int64) *Allocator {
	return &Allocator{pos: pos}
}

// Pos returns the next free byte position.
func (a *Allocator) Pos() int64 {
	return a.pos
}

// Align rounds the position up to the next multiple of n. Callers align
// before computing any relative offset for a field whose type has alignment
// n.
func (a *Allocator) Align(n int64) {
	if n > 1 {
		a.pos = (a.pos + n - 1) / n * n
	}
}

// Bump advances the position by size, reserving space that was just
// allocated for a payload.
func (a *Allocator) Bump(size int64) {
	a.pos += size
}

// Catch snaps the allocator forward to pos, rounded up to align, if the
// writer has advanced past it. Nested variable-length payloads can outgrow
// the space naively reserved for them; the allocator must never retreat
// behind written data.
func (a *Allocator) Catch(pos, align int64) {
	if pos > a.pos {
		a.pos = pos
	}
	a.Align(align)
}
