package arbork

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/stretchr/testify/require"

	"github.com/arbor-protocol/arbork/circuits/hasher"
	"github.com/arbor-protocol/arbork/circuits/membership"
	"github.com/arbor-protocol/arbork/circuits/mulgate"
	"github.com/arbor-protocol/arbork/tree"
)

func TestMulLifecycle(t *testing.T) {
	var pk Pk
	require.NoError(t, pk.Setup(&mulgate.Circuit{}))
	vk := pk.Vk()
	require.Equal(t, 2, vk.NbPublic())

	var a, b, c fr.Element
	a.SetRandom()
	b.SetRandom()
	c.Mul(&a, &b)

	proof, err := pk.Prove(&mulgate.Circuit{A: a, B: b, C: c})
	require.NoError(t, err)

	ok, err := vk.Verify(proof, MulPublicInputs(a, c))
	require.NoError(t, err)
	require.True(t, ok)

	// Same proof against a different public pair is rejected, not an error.
	var d fr.Element
	d.Add(&c, &b)
	ok, err = vk.Verify(proof, MulPublicInputs(a, d))
	require.NoError(t, err)
	require.False(t, ok)

	// Swapped order is a different statement and must fail too.
	ok, err = vk.Verify(proof, MulPublicInputs(c, a))
	require.NoError(t, err)
	require.False(t, ok)

	// Shape mismatch is a caller bug, reported as an error.
	_, err = vk.Verify(proof, []fr.Element{a})
	require.ErrorIs(t, err, ErrMalformedInput)
	_, err = vk.Verify(proof, []fr.Element{a, c, c})
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestMulProveRejectsBadWitness(t *testing.T) {
	var pk Pk
	require.NoError(t, pk.Setup(&mulgate.Circuit{}))

	var a, b, c fr.Element
	a.SetRandom()
	b.SetRandom()
	c.Mul(&a, &b)
	c.Add(&c, &a) // c != a*b

	_, err := pk.Prove(&mulgate.Circuit{A: a, B: b, C: c})
	require.Error(t, err)
}

func TestProveMissingAssignment(t *testing.T) {
	var pk Pk
	require.NoError(t, pk.Setup(&mulgate.Circuit{}))

	var a, c fr.Element
	a.SetRandom()
	c.SetRandom()

	// Witness b absent.
	_, err := pk.Prove(&mulgate.Circuit{A: a, C: c})
	require.ErrorIs(t, err, ErrAssignmentMissing)

	// Public input absent.
	_, err = pk.Prove(&mulgate.Circuit{A: a, B: a})
	require.ErrorIs(t, err, ErrAssignmentMissing)
}

// TestMembershipLifecycle runs the reference scenario: five 30-byte leaves
// of repeated bytes 0..4 in a height-5 tree (capacity 32, 27 slots empty),
// proving membership of the leaf at index 4.
func TestMembershipLifecycle(t *testing.T) {
	const height = 5

	leaves := make([][]byte, 5)
	for i := range leaves {
		leaves[i] = bytes.Repeat([]byte{byte(i)}, 30)
	}
	tr, err := tree.Build(height, leaves)
	require.NoError(t, err)

	path, err := tr.Path(4)
	require.NoError(t, err)

	ok, err := tree.Verify(tr.Root(), leaves[4], path)
	require.NoError(t, err)
	require.True(t, ok)

	var pk Pk
	require.NoError(t, pk.Setup(membership.New(height)))
	vk := pk.Vk()
	require.Equal(t, 2, vk.NbPublic())

	assignment, err := membership.Assign(leaves[4], tr.Root(), path)
	require.NoError(t, err)
	proof, err := pk.Prove(assignment)
	require.NoError(t, err)

	publics, err := MembershipPublicInputs(leaves[4], tr.Root())
	require.NoError(t, err)
	ok, err = vk.Verify(proof, publics)
	require.NoError(t, err)
	require.True(t, ok)

	// Same proof against a wrong root must be rejected.
	wrong, err := MembershipPublicInputs(leaves[4], make([]byte, hasher.Size))
	require.NoError(t, err)
	ok, err = vk.Verify(proof, wrong)
	require.NoError(t, err)
	require.False(t, ok)

	// And against a wrong leaf.
	wrong, err = MembershipPublicInputs(leaves[3], tr.Root())
	require.NoError(t, err)
	ok, err = vk.Verify(proof, wrong)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMembershipTamperedPathFailsToProve(t *testing.T) {
	const height = 4

	leaves := [][]byte{{1}, {2}, {3}}
	tr, err := tree.Build(height, leaves)
	require.NoError(t, err)

	var pk Pk
	require.NoError(t, pk.Setup(membership.New(height)))
	vk := pk.Vk()

	publics, err := MembershipPublicInputs(leaves[1], tr.Root())
	require.NoError(t, err)

	for lvl := 0; lvl < height; lvl++ {
		// Flip one sibling digest byte at this level.
		path, err := tr.Path(1)
		require.NoError(t, err)
		path.Siblings[lvl][0] ^= 1
		assignment, err := membership.Assign(leaves[1], tr.Root(), path)
		require.NoError(t, err)
		if proof, err := pk.Prove(assignment); err == nil {
			ok, err := vk.Verify(proof, publics)
			require.NoError(t, err)
			require.False(t, ok)
		}

		// Flip the position bit at this level.
		path, err = tr.Path(1)
		require.NoError(t, err)
		path.Positions[lvl] ^= 1
		assignment, err = membership.Assign(leaves[1], tr.Root(), path)
		require.NoError(t, err)
		if proof, err := pk.Prove(assignment); err == nil {
			ok, err := vk.Verify(proof, publics)
			require.NoError(t, err)
			require.False(t, ok)
		}
	}
}

// TestSetupShapeDeterminism checks that two synthesis passes over the same
// relation shape yield identical constraint shapes, so parameters derived
// from either serve the same proofs.
func TestSetupShapeDeterminism(t *testing.T) {
	for name, relation := range map[string]func() frontend.Circuit{
		"mulgate":    func() frontend.Circuit { return &mulgate.Circuit{} },
		"membership": func() frontend.Circuit { return membership.New(5) },
	} {
		first, err := frontend.Compile(FIELD, r1cs.NewBuilder, relation())
		require.NoError(t, err, name)
		second, err := frontend.Compile(FIELD, r1cs.NewBuilder, relation())
		require.NoError(t, err, name)

		require.Equal(t, first.GetNbConstraints(), second.GetNbConstraints(), name)
		require.Equal(t, first.GetNbPublicVariables(), second.GetNbPublicVariables(), name)
		require.Equal(t, first.GetNbSecretVariables(), second.GetNbSecretVariables(), name)
		require.Equal(t, first.GetNbInternalVariables(), second.GetNbInternalVariables(), name)
	}
}

func TestMulGateShape(t *testing.T) {
	ccs, err := frontend.Compile(FIELD, r1cs.NewBuilder, &mulgate.Circuit{})
	require.NoError(t, err)
	// A single multiplicative gate: two public inputs plus the constant
	// wire, one witness, and at most the gate row plus its output binding.
	require.Equal(t, 3, ccs.GetNbPublicVariables())
	require.Equal(t, 1, ccs.GetNbSecretVariables())
	require.LessOrEqual(t, ccs.GetNbConstraints(), 2)
}

func TestProofSerializationRoundTrip(t *testing.T) {
	var pk Pk
	require.NoError(t, pk.Setup(&mulgate.Circuit{}))
	vk := pk.Vk()

	var a, b, c fr.Element
	a.SetRandom()
	b.SetRandom()
	c.Mul(&a, &b)

	proof, err := pk.Prove(&mulgate.Circuit{A: a, B: b, C: c})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = proof.WriteTo(&buf)
	require.NoError(t, err)

	var decoded Proof
	_, err = decoded.ReadFrom(&buf)
	require.NoError(t, err)

	ok, err := vk.Verify(&decoded, MulPublicInputs(a, c))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVkSerializationRoundTrip(t *testing.T) {
	var pk Pk
	require.NoError(t, pk.Setup(&mulgate.Circuit{}))
	vk := pk.Vk()

	var buf bytes.Buffer
	_, err := vk.WriteTo(&buf)
	require.NoError(t, err)

	var decoded Vk
	_, err = decoded.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, vk.NbPublic(), decoded.NbPublic())

	var a, b, c fr.Element
	a.SetRandom()
	b.SetRandom()
	c.Mul(&a, &b)
	proof, err := pk.Prove(&mulgate.Circuit{A: a, B: b, C: c})
	require.NoError(t, err)

	ok, err := decoded.Verify(proof, MulPublicInputs(a, c))
	require.NoError(t, err)
	require.True(t, ok)
}
