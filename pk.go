package arbork

import (
	"fmt"
	"io"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Pk holds the reusable outcome of one trusted setup: the relation's compiled
// constraint shape and the groth16 proving key. One Pk serves any number of
// proofs of that shape; it is never mutated after Setup.
type Pk struct {
	vk  Vk
	ccs constraint.ConstraintSystem
	pk  groth16.ProvingKey
}

// Setup runs a shape-only synthesis pass over the relation and derives
// backend parameters from the resulting constraint system. The relation
// instance carries structure only (slice lengths, variable visibility);
// assigned values are neither required nor read.
func (me *Pk) Setup(relation frontend.Circuit) error {
	ccs, err := frontend.Compile(FIELD, r1cs.NewBuilder, relation)
	if err != nil {
		return err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	me.ccs = ccs
	me.pk = pk
	me.vk = Vk{vk: vk, nbPublic: vk.NbPublicWitness()}
	return nil
}

// Vk returns the verifier's share of the parameters.
func (me *Pk) Vk() Vk {
	return me.vk
}

// Prove runs a full-value synthesis pass over the assignment and produces a
// proof under these parameters. The assignment must carry every public and
// witness value; its shape must match the relation given to Setup.
func (me *Pk) Prove(assignment frontend.Circuit) (*Proof, error) {
	witness, err := frontend.NewWitness(assignment, FIELD)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssignmentMissing, err)
	}
	gp, err := groth16.Prove(me.ccs, me.pk, witness)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	return &Proof{proof: gp}, nil
}

func (me *Pk) WriteTo(w io.Writer) (int64, error) {
	n, err := me.vk.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := me.ccs.WriteTo(w)
	n += m
	if err != nil {
		return n, err
	}
	m, err = me.pk.WriteTo(w)
	return n + m, err
}

func (me *Pk) ReadFrom(r io.Reader) (int64, error) {
	n, err := me.vk.ReadFrom(r)
	if err != nil {
		return n, err
	}
	ccs := groth16.NewCS(CURVE)
	m, err := ccs.ReadFrom(r)
	n += m
	if err != nil {
		return n, err
	}
	pk := groth16.NewProvingKey(CURVE)
	m, err = pk.ReadFrom(r)
	n += m
	if err != nil {
		return n, err
	}
	me.ccs = ccs
	me.pk = pk
	return n, nil
}
