package ui

import (
	"snake-walk/game"
	"snake-walk/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gameOverText = "Game Over!"
	cornerRadius = 1.0 // in surface units
	cornerSegs   = 4
)

var (
	canvasColor  = rl.NewColor(10, 10, 10, 255)
	segmentColor = rl.NewColor(255, 255, 0, 255)
	textColor    = rl.RayWhite
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	fontSize     int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the window size. Call it after a resize.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.fontSize = headingFontSize(r.screenHeight)
}

// Surface is the drawing area handed to the simulation for its edge test.
func (r *Renderer) Surface() types.Size {
	return types.Size{Width: float32(r.screenWidth), Height: float32(r.screenHeight)}
}

func (r *Renderer) Draw(f game.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(canvasColor)

	for _, seg := range f.Segments {
		rec := segmentRectangle(seg)
		rl.DrawRectangleRounded(rec, roundness(rec), cornerSegs, segmentColor)
	}

	if f.GameOver {
		textWidth := rl.MeasureText(gameOverText, r.fontSize)
		x, y := centerText(r.screenWidth, r.screenHeight, textWidth, r.fontSize)
		rl.DrawText(gameOverText, x, y, r.fontSize, textColor)
	}

	rl.EndDrawing()
}

func segmentRectangle(seg types.Rect) rl.Rectangle {
	return rl.NewRectangle(seg.Min.X, seg.Min.Y, seg.Width(), seg.Height())
}

// roundness converts the fixed corner radius into raylib's relative scale.
func roundness(rec rl.Rectangle) float32 {
	side := rec.Width
	if rec.Height < side {
		side = rec.Height
	}
	if side <= 0 {
		return 0
	}
	r := 2 * cornerRadius / side
	if r > 1 {
		return 1
	}
	return r
}

func centerText(width, height, textWidth, fontSize int32) (int32, int32) {
	return (width - textWidth) / 2, (height - fontSize) / 2
}

func headingFontSize(screenHeight int32) int32 {
	size := screenHeight / 20
	if size < 20 {
		return 20
	}
	return size
}
