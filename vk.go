package arbork

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
)

// Vk is the verifier's view of the parameters: the groth16 verifying key and
// the relation's declared public-input count.
type Vk struct {
	vk       groth16.VerifyingKey
	nbPublic int
}

// NbPublic returns the number of field elements Verify expects.
func (me *Vk) NbPublic() int {
	return me.nbPublic
}

// Verify checks proof against the ordered public-input vector. It has no
// side effects and never mutates proof or parameters. A cryptographically
// invalid proof yields (false, nil); the only error is ErrMalformedInput,
// returned when the vector length disagrees with the relation's declared
// public-input count.
func (me *Vk) Verify(proof *Proof, publics []fr.Element) (bool, error) {
	if len(publics) != me.nbPublic {
		return false, fmt.Errorf("%w: got %d public inputs, want %d", ErrMalformedInput, len(publics), me.nbPublic)
	}
	if proof == nil || proof.proof == nil {
		return false, nil
	}
	w, err := publicWitness(publics)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if err := groth16.Verify(proof.proof, me.vk, w); err != nil {
		return false, nil
	}
	return true, nil
}

// publicWitness packs the ordered field elements into the backend's public
// witness representation.
func publicWitness(publics []fr.Element) (witness.Witness, error) {
	w, err := witness.New(FIELD)
	if err != nil {
		return nil, err
	}
	values := make(chan any, len(publics))
	for i := range publics {
		values <- publics[i]
	}
	close(values)
	if err := w.Fill(len(publics), 0, values); err != nil {
		return nil, err
	}
	return w, nil
}

func (me *Vk) WriteTo(w io.Writer) (int64, error) {
	return me.vk.WriteTo(w)
}

func (me *Vk) ReadFrom(r io.Reader) (int64, error) {
	vk := groth16.NewVerifyingKey(CURVE)
	n, err := vk.ReadFrom(r)
	if err != nil {
		return n, err
	}
	me.vk = vk
	me.nbPublic = vk.NbPublicWitness()
	return n, nil
}
