// Package tree implements a fixed-height binary commitment tree over the
// hasher compression function. A tree is built once from a leaf batch and is
// read-only afterwards; membership paths derived from it stay valid on their
// own.
package tree

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arbor-protocol/arbork/circuits/hasher"
)

var (
	ErrTreeTooLarge    = errors.New("tree: leaf batch exceeds capacity")
	ErrIndexOutOfRange = errors.New("tree: leaf index out of range")
)

// Tree is a complete binary hash tree of fixed height H with 2^H leaf slots.
// levels[0] holds the leaf digests, levels[H] the root.
type Tree struct {
	height int
	levels [][][]byte
}

// emptyDigest is the sentinel digest filling leaf slots with no leaf, so
// root computation never branches on leaf presence.
func emptyDigest() []byte {
	return make([]byte, hasher.Size)
}

// Build hashes the leaf batch into a tree of the given height. Slots beyond
// len(leaves) take the empty sentinel digest. Node computation within a
// level is parallel; the result is identical to sequential computation.
func Build(height int, leaves [][]byte) (*Tree, error) {
	if height < 1 {
		return nil, fmt.Errorf("tree: height must be at least 1, got %d", height)
	}
	capacity := 1 << height
	if len(leaves) > capacity {
		return nil, fmt.Errorf("%w: %d leaves, capacity %d", ErrTreeTooLarge, len(leaves), capacity)
	}

	t := &Tree{
		height: height,
		levels: make([][][]byte, height+1),
	}

	base := make([][]byte, capacity)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range leaves {
		g.Go(func() error {
			d, err := hasher.HashLeaf(leaves[i])
			if err != nil {
				return err
			}
			base[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i := len(leaves); i < capacity; i++ {
		base[i] = emptyDigest()
	}
	t.levels[0] = base

	for lvl := 1; lvl <= height; lvl++ {
		prev := t.levels[lvl-1]
		cur := make([][]byte, len(prev)/2)
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for i := range cur {
			g.Go(func() error {
				d, err := hasher.Compress(prev[2*i], prev[2*i+1])
				if err != nil {
					return err
				}
				cur[i] = d
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		t.levels[lvl] = cur
	}
	return t, nil
}

// Height returns the fixed tree height shared by every path and root derived
// from this tree.
func (me *Tree) Height() int {
	return me.height
}

// Capacity returns the number of leaf slots, 2^H.
func (me *Tree) Capacity() int {
	return len(me.levels[0])
}

// Root returns a copy of the root digest binding the leaf batch.
func (me *Tree) Root() []byte {
	return append([]byte(nil), me.levels[me.height][0]...)
}
