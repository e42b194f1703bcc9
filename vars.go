// Package arbork drives the setup/prove/verify lifecycle of groth16 proofs
// over BLS12-377 for any relation expressed as a frontend.Circuit. It is
// oblivious to which relation it runs; the relations themselves live under
// circuits/.
package arbork

import (
	"github.com/consensys/gnark-crypto/ecc"
)

// CURVE is the pairing curve every relation is compiled and proven over.
const CURVE = ecc.BLS12_377

// FIELD is the scalar field relations are synthesized over.
var FIELD = CURVE.ScalarField()
