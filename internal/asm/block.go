package asm

// UnresolvedBlockStart is the sentinel Start value of a Block that has not
// yet been assigned a final output position.
const UnresolvedBlockStart = ^uint32(0)

// Block is a contiguous run of emitted code whose final output position is
// assigned after all emission is complete. Offset locates the block's first
// byte in the in-progress CodeBuffer; Size is fixed once the block is
// closed by EndBlock; Start is fixed once Resolve runs.
type Block struct {
	Offset uint32
	Size   uint32
	Start  uint32
	Next   *Block
}

// NewBlock constructs a Block starting at the given in-progress buffer
// offset, not yet resolved.
func NewBlock(offset uint32) *Block {
	return &Block{Offset: offset, Start: UnresolvedBlockStart}
}

// Resolved reports whether Resolve has assigned this block a final start.
func (b *Block) Resolved() bool {
	return b.Start != UnresolvedBlockStart
}

// Resolve assigns the block its final output start and successor, returning
// the first free offset after it (start + size), which the caller uses as
// the next block's start.
func (b *Block) Resolve(start uint32, next *Block) uint32 {
	b.Start = start
	b.Next = next
	return start + b.Size
}
