package asm

import "encoding/binary"

// CodeBuffer is an append-only byte vector written one 32-bit instruction
// word at a time, with random-access patching once a word has been emitted.
// It carries no bounds semantics beyond growing on demand; mapping the final
// bytes onto executable memory pages is the caller's concern, not this
// package's (spec.md §1 Out of scope).
type CodeBuffer struct {
	data []byte
}

// NewCodeBuffer returns an empty CodeBuffer with a starting capacity hint.
func NewCodeBuffer(capacityHint int) *CodeBuffer {
	if capacityHint <= 0 {
		capacityHint = 1024
	}
	return &CodeBuffer{data: make([]byte, 0, capacityHint)}
}

// Append4 appends a big-endian 32-bit instruction word and returns the byte
// offset it was written at.
func (b *CodeBuffer) Append4(word uint32) uint32 {
	off := uint32(len(b.data))
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], word)
	b.data = append(b.data, tmp[:]...)
	return off
}

// Length returns the number of bytes written so far.
func (b *CodeBuffer) Length() uint32 {
	return uint32(len(b.data))
}

// Data returns the raw backing bytes written so far. The slice is only
// valid until the next Append4 call.
func (b *CodeBuffer) Data() []byte {
	return b.data
}

// Word reads the big-endian 32-bit word at offset.
func (b *CodeBuffer) Word(offset uint32) uint32 {
	return binary.BigEndian.Uint32(b.data[offset : offset+4])
}

// PatchWord overwrites the big-endian 32-bit word at offset.
func (b *CodeBuffer) PatchWord(offset uint32, word uint32) {
	binary.BigEndian.PutUint32(b.data[offset:offset+4], word)
}

// Reset discards all emitted bytes, retaining the backing capacity.
func (b *CodeBuffer) Reset() {
	b.data = b.data[:0]
}

// ReadWord reads the big-endian 32-bit word at offset in dst. Used by tasks
// patching the final output buffer after blocks have been copied to their
// resolved positions, as opposed to the in-progress CodeBuffer.
func ReadWord(dst []byte, offset uint32) uint32 {
	return binary.BigEndian.Uint32(dst[offset : offset+4])
}

// WriteWord overwrites the big-endian 32-bit word at offset in dst.
func WriteWord(dst []byte, offset uint32, word uint32) {
	binary.BigEndian.PutUint32(dst[offset:offset+4], word)
}
