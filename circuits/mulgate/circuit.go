// Package mulgate implements the multiplicative gate relation: for public a
// and c, the prover knows b such that a*b = c.
package mulgate

import (
	"github.com/consensys/gnark/frontend"
)

// Circuit declares a and c as public inputs and b as the witness. Field
// order fixes the public-input vector as (a, c). The zero value is the
// shape-only instance used for setup.
type Circuit struct {
	A frontend.Variable `gnark:",public"`
	C frontend.Variable `gnark:",public"`
	B frontend.Variable
}

// Define emits the single constraint a*b = c.
func (me *Circuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(me.A, me.B), me.C)
	return nil
}
