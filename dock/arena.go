package dock

import "fmt"

// NodeID addresses a node in its Space's arena
// The zero NodeID is invalid; IDs of released nodes never resolve again
type NodeID struct {
	index int32
	gen   uint32
}

// Valid reports whether the ID was ever issued
func (id NodeID) Valid() bool {
	return id.gen != 0
}

func (id NodeID) String() string {
	if !id.Valid() {
		return "n-"
	}
	return fmt.Sprintf("n%d.%d", id.index, id.gen)
}

// arena stores nodes by stable index with generation-checked handles
type arena struct {
	nodes []*Node
	gens  []uint32
	free  []int32
	live  int
}

func (a *arena) alloc(n *Node) NodeID {
	var idx int32
	if k := len(a.free); k > 0 {
		idx = a.free[k-1]
		a.free = a.free[:k-1]
	} else {
		idx = int32(len(a.nodes))
		a.nodes = append(a.nodes, nil)
		a.gens = append(a.gens, 0)
	}
	a.gens[idx]++
	a.nodes[idx] = n
	a.live++
	return NodeID{index: idx, gen: a.gens[idx]}
}

func (a *arena) get(id NodeID) *Node {
	if !id.Valid() || int(id.index) >= len(a.nodes) {
		return nil
	}
	if a.gens[id.index] != id.gen {
		return nil
	}
	return a.nodes[id.index]
}

// release tombstones the slot; the next alloc of the same index bumps the generation again
func (a *arena) release(id NodeID) {
	n := a.get(id)
	if n == nil {
		return
	}
	n.released = true
	a.nodes[id.index] = nil
	a.gens[id.index]++
	a.free = append(a.free, id.index)
	a.live--
}
