package maze

import (
	"fmt"
	"slices"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/thetabrick"
)

// Passages returns the cells reachable from a through one open wall.
// Each neighbour appears once.
func (m *ThetaMaze) Passages(a Address) []Address {
	var out []Address
	n := m.DivisionsInRing(a.Ring)
	left := Address{a.Ring, (a.Division + n - 1) % n}
	right := Address{a.Ring, (a.Division + 1) % n}
	add := func(b Address) {
		if b != a && !slices.Contains(out, b) {
			out = append(out, b)
		}
	}

	if !m.cells[left.Ring][left.Division].RightWall {
		add(left)
	}
	if !m.cells[a.Ring][a.Division].RightWall {
		add(right)
	}
	if a.Ring > 0 && !m.cells[a.Ring][a.Division].InnerWall {
		add(m.inner(a))
	}
	if a.Ring < m.rings-1 {
		m.adjacent(a, func(b Address) {
			if b.Ring == a.Ring+1 && !m.cells[b.Ring][b.Division].InnerWall {
				add(b)
			}
		})
	}
	return out
}

// queueItem pairs a cell with the cell it was reached from.
type queueItem struct {
	at, parent Address
}

// solver holds breadth-first search state over the cell grid.
type solver struct {
	m      *ThetaMaze
	queue  []queueItem
	seen   [][]bool
	parent [][]Address
}

// Solve searches the open passages breadth-first from the entrance and
// returns the shortest path to the first hub cell reached, both ends
// included. In a perfect maze it equals Solution.
func (m *ThetaMaze) Solve() ([]Address, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}
	s := &solver{
		m:      m,
		seen:   make([][]bool, m.rings),
		parent: make([][]Address, m.rings),
	}
	for r := range s.seen {
		s.seen[r] = make([]bool, m.DivisionsInRing(r))
		s.parent[r] = make([]Address, m.DivisionsInRing(r))
	}

	start := m.Entrance()
	s.enqueue(start, start)
	for len(s.queue) > 0 {
		item := s.queue[0]
		s.queue = s.queue[1:]
		if item.at.Ring == 0 {
			return s.path(start, item.at), nil
		}
		for _, nb := range m.Passages(item.at) {
			if !s.seen[nb.Ring][nb.Division] {
				s.enqueue(nb, item.at)
			}
		}
	}
	return nil, fmt.Errorf("%w: from %v", ErrNoPath, start)
}

func (s *solver) enqueue(a, parent Address) {
	s.seen[a.Ring][a.Division] = true
	s.parent[a.Ring][a.Division] = parent
	s.queue = append(s.queue, queueItem{at: a, parent: parent})
}

// path walks parent links back from end and returns start..end.
func (s *solver) path(start, end Address) []Address {
	var p []Address
	for at := end; ; at = s.parent[at.Ring][at.Division] {
		p = append(p, at)
		if at == start {
			break
		}
	}
	slices.Reverse(p)
	return p
}

// Verify checks that the carved maze is perfect: with the hub counted as
// one node, every cell is reachable and no passage closes a cycle.
func (m *ThetaMaze) Verify() error {
	if !m.generated {
		return ErrNotGenerated
	}

	hub := disjoint.NewElement()
	sets := make([][]*disjoint.Element, m.rings)
	node := func(a Address) *disjoint.Element {
		if a.Ring == 0 {
			return hub
		}
		return sets[a.Ring][a.Division]
	}
	nodes := 1
	for r := 1; r < m.rings; r++ {
		sets[r] = make([]*disjoint.Element, m.DivisionsInRing(r))
		for d := range sets[r] {
			sets[r][d] = disjoint.NewElement()
		}
		nodes += len(sets[r])
	}

	passages := 0
	join := func(a, b Address) error {
		ea, eb := node(a), node(b)
		if ea.Find() == eb.Find() {
			return fmt.Errorf("%w: %v-%v", ErrCycle, a, b)
		}
		disjoint.Union(ea, eb)
		passages++
		return nil
	}

	for r := 1; r < m.rings; r++ {
		n := m.DivisionsInRing(r)
		for d := 0; d < n; d++ {
			a := Address{r, d}
			c := m.cells[r][d]
			if !c.RightWall && n > 1 {
				if err := join(a, Address{r, (d + 1) % n}); err != nil {
					return err
				}
			}
			if !c.InnerWall {
				if err := join(a, m.inner(a)); err != nil {
					return err
				}
			}
		}
	}

	if passages != nodes-1 {
		return fmt.Errorf("%w: %d passages for %d nodes", ErrDisconnected, passages, nodes)
	}
	thetabrick.Logger().Debug("maze: verified", "nodes", nodes, "passages", passages)
	return nil
}
