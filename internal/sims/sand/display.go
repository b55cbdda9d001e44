package sand

import "image/color"

// Palette returns id-indexed colors for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	pal := make([]color.RGBA, w.reg.Len())
	for i, e := range w.reg.All() {
		pal[i] = e.Color
	}
	return pal
}
