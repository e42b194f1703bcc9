// Centralizes the MiMC compression parameters shared by native and circuit code.
package hasher

import (
	"errors"
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
)

// Size is the digest length in bytes: one scalar field element.
const Size = fr.Bytes

// BlockSize is the fixed input block length accepted by the compression
// function. Two child digests form exactly two blocks.
const BlockSize = mimc.BlockSize

var ErrLeafTooLarge = errors.New("hasher: leaf exceeds one compression block")

// New returns the native compression function. Round constants are canonical
// for the BLS12-377 scalar field, so every instance hashes identically.
func New() hash.Hash {
	return mimc.NewMiMC()
}
