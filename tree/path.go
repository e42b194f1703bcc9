package tree

import (
	"bytes"
	"errors"

	"github.com/arbor-protocol/arbork/circuits/hasher"
)

// Path is a membership path: the sibling digests and positions from leaf to
// root. Positions[i] == 0 means the authenticated node is the left child at
// level i. A Path is a pure value, independent of the tree it came from.
type Path struct {
	Siblings  [][]byte
	Positions []int
}

// Path returns the membership path for the leaf slot at index.
func (me *Tree) Path(index uint64) (Path, error) {
	if index >= uint64(me.Capacity()) {
		return Path{}, ErrIndexOutOfRange
	}
	p := Path{
		Siblings:  make([][]byte, me.height),
		Positions: make([]int, me.height),
	}
	for lvl := 0; lvl < me.height; lvl++ {
		p.Positions[lvl] = int(index & 1)
		p.Siblings[lvl] = append([]byte(nil), me.levels[lvl][index^1]...)
		index >>= 1
	}
	return p, nil
}

// Verify recomputes the root from leaf and path natively, mirroring the
// membership circuit's constraints. It serves as the sanity check before
// proving. A mismatched root is a false return, not an error.
func Verify(root, leaf []byte, path Path) (bool, error) {
	if len(path.Siblings) != len(path.Positions) {
		return false, errors.New("tree: sibling and position counts differ")
	}
	cur, err := hasher.HashLeaf(leaf)
	if err != nil {
		return false, err
	}
	for lvl := range path.Siblings {
		if path.Positions[lvl] == 0 {
			cur, err = hasher.Compress(cur, path.Siblings[lvl])
		} else {
			cur, err = hasher.Compress(path.Siblings[lvl], cur)
		}
		if err != nil {
			return false, err
		}
	}
	return bytes.Equal(cur, root), nil
}
