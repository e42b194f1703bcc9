// Assignment helpers bridging native tree values into circuit instances.
package membership

import (
	"github.com/arbor-protocol/arbork/circuits/hasher"
	"github.com/arbor-protocol/arbork/tree"
)

// Assign returns a fully valued proving instance binding leaf under root
// through path. Its shape matches New(len(path.Siblings)).
func Assign(leaf, root []byte, path tree.Path) (*Circuit, error) {
	block, err := hasher.PadLeaf(leaf)
	if err != nil {
		return nil, err
	}
	c := New(len(path.Siblings))
	c.Leaf = block
	c.Root = root
	for i := range path.Siblings {
		c.Siblings[i] = path.Siblings[i]
		c.Positions[i] = path.Positions[i]
	}
	return c, nil
}
