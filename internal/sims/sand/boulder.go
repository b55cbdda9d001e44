package sand

// The boulder cache maps a group id to the packed coordinates of its member
// cells. It is a consulted side index, never the owner: cells stay
// individually addressable and membership evaporates as soon as a member cell
// stops carrying the id.

func (g *Grid) attachBoulder(id, idx int) {
	set, ok := g.boulders[id]
	if !ok {
		set = make(map[int]struct{})
		g.boulders[id] = set
	}
	set[idx] = struct{}{}
}

func (g *Grid) detachBoulder(id, idx int) {
	set, ok := g.boulders[id]
	if !ok {
		return
	}
	delete(set, idx)
	if len(set) == 0 {
		delete(g.boulders, id)
	}
}

// BoulderMembers returns the member coordinates of a group, or nil when the
// group does not exist.
func (g *Grid) BoulderMembers(id int) [][2]int {
	set, ok := g.boulders[id]
	if !ok {
		return nil
	}
	out := make([][2]int, 0, len(set))
	for i := range set {
		out = append(out, [2]int{i % g.w, i / g.w})
	}
	return out
}

// MoveBoulderDown drops a rigid group one row as a unit. The move happens only
// if every member's landing cell is empty (or another member); a single
// blocked member pins the whole group. This is a best-effort convenience, not
// rigid-body dynamics.
func (g *Grid) MoveBoulderDown(id int) bool {
	set, ok := g.boulders[id]
	if !ok || len(set) == 0 {
		return false
	}
	for i := range set {
		x, y := i%g.w, i/g.w
		below := g.idx(x, y+1)
		if !g.InBounds(x, y+1) {
			return false
		}
		if _, member := set[below]; member {
			continue
		}
		if !g.cells[below].IsEmpty() {
			return false
		}
	}

	// Move bottom row first so members never land on each other.
	members := make([]int, 0, len(set))
	for i := range set {
		members = append(members, i)
	}
	for i := 1; i < len(members); i++ {
		for j := i; j > 0 && members[j] > members[j-1]; j-- {
			members[j], members[j-1] = members[j-1], members[j]
		}
	}
	for _, i := range members {
		x, y := i%g.w, i/g.w
		g.Swap(x, y, x, y+1)
	}
	return true
}
