package arbork

import (
	"io"

	"github.com/consensys/gnark/backend/groth16"
)

// Proof wraps one groth16 proof. Its byte encoding is owned by the backend;
// callers treat it as an opaque blob.
type Proof struct {
	proof groth16.Proof
}

func (me *Proof) WriteTo(w io.Writer) (int64, error) {
	return me.proof.WriteTo(w)
}

func (me *Proof) ReadFrom(r io.Reader) (int64, error) {
	proof := groth16.NewProof(CURVE)
	n, err := proof.ReadFrom(r)
	if err != nil {
		return n, err
	}
	me.proof = proof
	return n, nil
}
