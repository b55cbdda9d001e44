// Package worldio reads and writes persisted sand worlds. The format is
// deliberately minimal: dimensions plus the row-major element ids, enough to
// reconstruct every cell's element. Transient cell state (lifetime, scratch
// data) is not persisted.
package worldio

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"grainfall/internal/sims/sand"
)

// Snapshot is the persisted world format.
type Snapshot struct {
	Width  int     `msgpack:"w"`
	Height int     `msgpack:"h"`
	Cells  []uint8 `msgpack:"cells"`
}

// Capture copies the world's current element ids into a snapshot.
func Capture(w *sand.World) Snapshot {
	size := w.Size()
	return Snapshot{
		Width:  size.W,
		Height: size.H,
		Cells:  append([]uint8(nil), w.Cells()...),
	}
}

// Restore rebuilds the world's cells from a snapshot. The snapshot dimensions
// must match the world's.
func Restore(w *sand.World, s Snapshot) error {
	size := w.Size()
	if s.Width != size.W || s.Height != size.H {
		return fmt.Errorf("snapshot is %dx%d, world is %dx%d", s.Width, s.Height, size.W, size.H)
	}
	return w.LoadIDs(s.Cells)
}

// Write encodes a snapshot onto the writer.
func Write(out io.Writer, s Snapshot) error {
	if len(s.Cells) != s.Width*s.Height {
		return fmt.Errorf("snapshot has %d cells for %dx%d", len(s.Cells), s.Width, s.Height)
	}
	return msgpack.NewEncoder(out).Encode(s)
}

// Read decodes a snapshot from the reader and validates its shape.
func Read(in io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(in).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 || len(s.Cells) != s.Width*s.Height {
		return Snapshot{}, fmt.Errorf("malformed snapshot: %dx%d with %d cells", s.Width, s.Height, len(s.Cells))
	}
	return s, nil
}

// SaveFile writes a snapshot to path.
func SaveFile(path string, s Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, s); err != nil {
		return err
	}
	return f.Close()
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()
	return Read(f)
}
