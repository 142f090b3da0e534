// Package window runs games in a desktop window with Ebitengine, drawing
// each entity from a sprite sheet of 24x24 cells.
package window

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Sprite sheet layout: one row of cells, player, bug, laser.
const (
	CellSize   = 24
	SheetCells = 3
)

// SpriteSheet holds the sub-images of each cell.
type SpriteSheet struct {
	cells [SheetCells]*ebiten.Image
}

// LoadSpriteSheet loads a PNG sheet of SheetCells cells laid out left to right.
func LoadSpriteSheet(path string) (*SpriteSheet, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite sheet %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() < CellSize*SheetCells || b.Dy() < CellSize {
		return nil, fmt.Errorf("sprite sheet %s is %dx%d, need at least %dx%d",
			path, b.Dx(), b.Dy(), CellSize*SheetCells, CellSize)
	}
	return sliceSheet(img), nil
}

// GenerateSpriteSheet draws a placeholder sheet so the window host works
// without any asset files.
func GenerateSpriteSheet() *SpriteSheet {
	img := ebiten.NewImage(CellSize*SheetCells, CellSize)

	// Player: hull with a cannon on top
	vector.DrawFilledRect(img, 2, 14, 20, 8, colornames.Deepskyblue, false)
	vector.DrawFilledRect(img, 9, 6, 6, 8, colornames.Deepskyblue, false)
	vector.DrawFilledRect(img, 11, 1, 2, 5, colornames.White, false)

	// Bug: round body, eyes and legs
	ox := float32(CellSize)
	vector.DrawFilledCircle(img, ox+12, 12, 8, colornames.Limegreen, true)
	vector.DrawFilledRect(img, ox+2, 16, 4, 2, colornames.Limegreen, false)
	vector.DrawFilledRect(img, ox+18, 16, 4, 2, colornames.Limegreen, false)
	vector.DrawFilledCircle(img, ox+9, 10, 2, colornames.Black, false)
	vector.DrawFilledCircle(img, ox+15, 10, 2, colornames.Black, false)

	// Laser: thin bright bolt
	ox = float32(CellSize * 2)
	vector.DrawFilledRect(img, ox+11, 2, 2, 20, colornames.Gold, false)

	return sliceSheet(img)
}

func sliceSheet(img *ebiten.Image) *SpriteSheet {
	s := &SpriteSheet{}
	for i := range s.cells {
		r := image.Rect(i*CellSize, 0, (i+1)*CellSize, CellSize)
		s.cells[i] = img.SubImage(r).(*ebiten.Image)
	}
	return s
}

// Cell returns the image of a sheet cell, or nil for an unknown index.
func (s *SpriteSheet) Cell(index int) *ebiten.Image {
	if index < 0 || index >= len(s.cells) {
		return nil
	}
	return s.cells[index]
}
