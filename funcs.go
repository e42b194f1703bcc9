package arbork

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/arbor-protocol/arbork/circuits/hasher"
)

// MulPublicInputs builds the public-input vector of the multiplication
// relation: (a, c), in that order.
func MulPublicInputs(a, c fr.Element) []fr.Element {
	return []fr.Element{a, c}
}

// MembershipPublicInputs builds the public-input vector of the membership
// relation: the leaf block's field encoding followed by the root's, in that
// order. The ordering is load-bearing; verification fails against any other.
func MembershipPublicInputs(leaf, root []byte) ([]fr.Element, error) {
	block, err := hasher.PadLeaf(leaf)
	if err != nil {
		return nil, err
	}
	var l, r fr.Element
	if err := l.SetBytesCanonical(block); err != nil {
		return nil, fmt.Errorf("%w: leaf: %v", ErrMalformedInput, err)
	}
	if err := r.SetBytesCanonical(root); err != nil {
		return nil, fmt.Errorf("%w: root: %v", ErrMalformedInput, err)
	}
	return []fr.Element{l, r}, nil
}
