// native (off-circuit) MiMC compression helpers
package hasher

// PadLeaf left-pads a leaf to one compression block. The block is the
// big-endian encoding the circuit sees when the same leaf is allocated as a
// variable.
func PadLeaf(leaf []byte) ([]byte, error) {
	if len(leaf) > BlockSize {
		return nil, ErrLeafTooLarge
	}
	block := make([]byte, BlockSize)
	copy(block[BlockSize-len(leaf):], leaf)
	return block, nil
}

// HashLeaf returns the digest of a single padded leaf block.
func HashLeaf(leaf []byte) ([]byte, error) {
	block, err := PadLeaf(leaf)
	if err != nil {
		return nil, err
	}
	h := New()
	if _, err := h.Write(block); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Compress hashes two child digests into their parent digest, matching the
// circuit's Compress semantics.
func Compress(left, right []byte) ([]byte, error) {
	h := New()
	if _, err := h.Write(left); err != nil {
		return nil, err
	}
	if _, err := h.Write(right); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
