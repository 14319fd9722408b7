package flock

import (
	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/duckpond/internal/core/duck"
)

// Group is a set of ducks that share one composition.
type Group struct {
	Key   uint64
	Quack string
	Fly   string
	Ducks []string
}

// CompositionKey hashes a (quack, fly) pair of registry names. The NUL
// separator keeps ("a|b", "c") and ("a", "b|c") apart.
func CompositionKey(quack, fly string) uint64 {
	return xxhash.Sum64String(quack + "\x00" + fly)
}

// Census groups ducks by their current composition, in order of first appearance.
func Census(ducks []*duck.Duck) []Group {
	index := make(map[uint64][]int, len(ducks))
	groups := make([]Group, 0, len(ducks))
	for _, d := range ducks {
		q, f := d.Composition()
		key := CompositionKey(q, f)
		i := -1
		// a hash hit is only a candidate; names decide
		for _, j := range index[key] {
			if groups[j].Quack == q && groups[j].Fly == f {
				i = j
				break
			}
		}
		if i < 0 {
			i = len(groups)
			index[key] = append(index[key], i)
			groups = append(groups, Group{Key: key, Quack: q, Fly: f})
		}
		groups[i].Ducks = append(groups[i].Ducks, d.Name())
	}
	return groups
}

// PerformAll runs display, quack and fly for every duck in order.
func PerformAll(ducks []*duck.Duck) {
	for _, d := range ducks {
		d.Display()
		d.PerformQuack()
		d.PerformFly()
	}
}
