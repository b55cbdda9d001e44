//go:build ebiten

package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD prints the status lines in the top-left corner of the view.
type HUD struct{}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw renders the lines onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}
