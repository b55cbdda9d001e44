// Package spatial provides a uniform spatial hash for particles simulated
// with continuous coordinates, giving O(1) neighbor queries without touching
// the cell grid. Buckets are keyed by packed integers rather than strings so
// lookups stay allocation-free.
package spatial

// Particle is the minimal position record the hash indexes. Inactive
// particles are ignored by Rebuild and should be Removed when deactivated.
type Particle struct {
	X, Y   float64
	Active bool
}

// Hash buckets world space into square cells of a configurable size. The
// invariant is that every indexed particle appears in exactly one bucket.
type Hash struct {
	cellSize   float64
	cols, rows int
	buckets    []map[int]struct{}
	bucketOf   map[int]int
}

// New creates a hash covering a world of the given size. Cell size defaults
// to 1 when non-positive.
func New(width, height, cellSize float64) *Hash {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	return &Hash{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		buckets:  make([]map[int]struct{}, cols*rows),
		bucketOf: make(map[int]int),
	}
}

func (h *Hash) bucketIndex(x, y float64) int {
	col := int(x / h.cellSize)
	row := int(y / h.cellSize)
	if col < 0 {
		col = 0
	} else if col >= h.cols {
		col = h.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= h.rows {
		row = h.rows - 1
	}
	return row*h.cols + col
}

// Len reports the number of indexed particles.
func (h *Hash) Len() int { return len(h.bucketOf) }

// Insert indexes particle i at (x, y). Re-inserting an indexed particle moves
// it.
func (h *Hash) Insert(i int, x, y float64) {
	b := h.bucketIndex(x, y)
	if prev, ok := h.bucketOf[i]; ok {
		if prev == b {
			return
		}
		delete(h.buckets[prev], i)
	}
	if h.buckets[b] == nil {
		h.buckets[b] = make(map[int]struct{}, 8)
	}
	h.buckets[b][i] = struct{}{}
	h.bucketOf[i] = b
}

// Remove drops particle i from the index. Unknown ids are a no-op.
func (h *Hash) Remove(i int) {
	b, ok := h.bucketOf[i]
	if !ok {
		return
	}
	delete(h.buckets[b], i)
	delete(h.bucketOf, i)
}

// Update re-buckets particle i after a move. It is a no-op when the particle
// stays inside its bucket, which is the common case for small per-tick
// displacements.
func (h *Hash) Update(i int, x, y float64) {
	h.Insert(i, x, y)
}

// QueryNeighbors returns the indices of particles within radius buckets of
// particle i's bucket, excluding i itself.
func (h *Hash) QueryNeighbors(i int, radius int) []int {
	b, ok := h.bucketOf[i]
	if !ok {
		return nil
	}
	if radius < 0 {
		radius = 0
	}
	col, row := b%h.cols, b/h.cols
	var out []int
	for dr := -radius; dr <= radius; dr++ {
		r := row + dr
		if r < 0 || r >= h.rows {
			continue
		}
		for dc := -radius; dc <= radius; dc++ {
			c := col + dc
			if c < 0 || c >= h.cols {
				continue
			}
			for j := range h.buckets[r*h.cols+c] {
				if j != i {
					out = append(out, j)
				}
			}
		}
	}
	return out
}

// QueryCircle returns the indices of particles within radius of (x, y),
// filtered by exact distance against the provided particle slice.
func (h *Hash) QueryCircle(x, y, radius float64, particles []Particle) []int {
	if radius < 0 {
		return nil
	}
	span := int(radius/h.cellSize) + 1
	center := h.bucketIndex(x, y)
	col, row := center%h.cols, center/h.cols
	r2 := radius * radius
	var out []int
	for dr := -span; dr <= span; dr++ {
		r := row + dr
		if r < 0 || r >= h.rows {
			continue
		}
		for dc := -span; dc <= span; dc++ {
			c := col + dc
			if c < 0 || c >= h.cols {
				continue
			}
			for j := range h.buckets[r*h.cols+c] {
				if j >= len(particles) {
					continue
				}
				dx := particles[j].X - x
				dy := particles[j].Y - y
				if dx*dx+dy*dy <= r2 {
					out = append(out, j)
				}
			}
		}
	}
	return out
}

// QueryRect returns the indices of particles whose buckets intersect the
// axis-aligned rectangle spanning (x0, y0) to (x1, y1).
func (h *Hash) QueryRect(x0, y0, x1, y1 float64) []int {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	b0 := h.bucketIndex(x0, y0)
	b1 := h.bucketIndex(x1, y1)
	c0, r0 := b0%h.cols, b0/h.cols
	c1, r1 := b1%h.cols, b1/h.cols
	var out []int
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			for j := range h.buckets[r*h.cols+c] {
				out = append(out, j)
			}
		}
	}
	return out
}

// Rebuild reindexes every active particle from scratch, the bulk path after
// batch insertion or teleporting many particles at once.
func (h *Hash) Rebuild(particles []Particle) {
	for i := range h.buckets {
		h.buckets[i] = nil
	}
	h.bucketOf = make(map[int]int, len(particles))
	for i := range particles {
		if !particles[i].Active {
			continue
		}
		h.Insert(i, particles[i].X, particles[i].Y)
	}
}
