// Package membership implements the commitment-tree membership relation: for
// a public leaf and root, the prover knows a path of sibling digests and
// position bits under which hashing the leaf up the tree reaches the root.
package membership

import (
	"errors"

	"github.com/consensys/gnark/frontend"

	"github.com/arbor-protocol/arbork/circuits/hasher"
)

// Circuit declares the leaf block and root digest as public inputs, in that
// order, and the membership path as the witness. The slice lengths fix the
// tree height, so the compiled constraint shape depends only on it, never on
// assigned values.
type Circuit struct {
	Leaf frontend.Variable `gnark:",public"`
	Root frontend.Variable `gnark:",public"`

	Siblings  []frontend.Variable `gnark:",secret"`
	Positions []frontend.Variable `gnark:",secret"`
}

// New returns a shape-only instance for a tree of the given height, suitable
// for setup.
func New(height int) *Circuit {
	return &Circuit{
		Siblings:  make([]frontend.Variable, height),
		Positions: make([]frontend.Variable, height),
	}
}

// Define folds the leaf digest up the path. At each level the position bit
// orders the (node, sibling) pair fed to the compression gadget; after the
// last level the running digest must equal the root.
func (me *Circuit) Define(api frontend.API) error {
	if len(me.Siblings) != len(me.Positions) {
		return errors.New("membership: sibling and position counts differ")
	}
	g, err := hasher.NewGadget(api)
	if err != nil {
		return err
	}
	cur := g.HashLeaf(me.Leaf)
	for i := range me.Siblings {
		api.AssertIsBoolean(me.Positions[i])
		left := api.Select(me.Positions[i], me.Siblings[i], cur)
		right := api.Select(me.Positions[i], cur, me.Siblings[i])
		cur = g.Compress(left, right)
	}
	api.AssertIsEqual(cur, me.Root)
	return nil
}
