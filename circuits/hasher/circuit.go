// Package hasher provides the MiMC compression function in both native and
// in-circuit form. Currently only supports BLS12-377.
//
// The two forms agree bit for bit: for every assignment equal to some native
// input, the gadget's constraints are satisfied exactly when the allocated
// output equals the native digest of that input. The membership relation
// depends on this agreement.
package hasher

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// Gadget is the in-circuit form of the compression function.
type Gadget struct {
	h mimc.MiMC
}

// NewGadget instantiates the gadget against the caller's constraint system.
func NewGadget(api frontend.API) (*Gadget, error) {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return nil, err
	}
	return &Gadget{h: h}, nil
}

// HashLeaf allocates the digest of a single leaf block.
func (me *Gadget) HashLeaf(leaf frontend.Variable) frontend.Variable {
	me.h.Reset()
	me.h.Write(leaf)
	return me.h.Sum()
}

// Compress allocates the parent digest of two child digests.
func (me *Gadget) Compress(left, right frontend.Variable) frontend.Variable {
	me.h.Reset()
	me.h.Write(left, right)
	return me.h.Sum()
}
