// Package viewer renders the live terrain window with Ebitengine and drives
// it from keyboard input, standing in for the game engine the terrain core
// normally feeds.
package viewer

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/QuangD300504/ridgeline/internal/config"
	"github.com/QuangD300504/ridgeline/pkg/terrain"
)

// pxPerUnit is the world-to-screen scale.
const pxPerUnit = 24.0

var (
	ridgeColor    = color.RGBA{0x46, 0xb4, 0x5a, 0xff}
	bottomColor   = color.RGBA{0x2a, 0x52, 0x33, 0xff}
	roadColor     = color.RGBA{0xc8, 0xc8, 0xd2, 0xff}
	centerColor   = color.RGBA{0xe8, 0xd4, 0x4d, 0xff}
	colliderColor = color.RGBA{0xd4, 0x4d, 0x4d, 0x90}
	seamColor     = color.RGBA{0x5a, 0x8c, 0xd4, 0x80}
	probeColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Game implements ebiten.Game over a terrain window. The probe position is
// the "player": arrow keys or A/D move it, space toggles auto-scroll, R
// regenerates the terrain, C toggles the collider outline.
type Game struct {
	cfg    *config.Config
	log    *slog.Logger
	window *terrain.Window

	playerX      float64
	auto         bool
	showCollider bool
}

// New creates a Game over an already-initialized window, with the probe
// parked in the middle of the second chunk.
func New(cfg *config.Config, log *slog.Logger, window *terrain.Window) *Game {
	return &Game{
		cfg:     cfg,
		log:     log,
		window:  window,
		playerX: window.ChunkWidth() * 1.5,
		auto:    true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.auto = !g.auto
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.showCollider = !g.showCollider
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.window.Regenerate(); err != nil {
			return fmt.Errorf("regenerate terrain: %w", err)
		}
		g.playerX = g.window.ChunkWidth() * 1.5
	}

	speed := g.cfg.ScrollSpeed
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		speed *= 4
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.playerX += speed
		g.auto = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.playerX -= speed
		g.auto = false
	}
	if g.auto {
		g.playerX += speed
	}

	g.window.Tick(g.playerX)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, c := range g.window.Chunks() {
		g.drawChunk(screen, c)
	}

	// Probe: the tracked player position, snapped onto the ridge.
	if h, ok := g.window.HeightAt(g.playerX); ok {
		x, y := g.worldToScreen(g.playerX, h)
		vector.DrawFilledCircle(screen, x, y, 5, probeColor, true)
	}

	chunks := g.window.Chunks()
	front, back := chunks[0], chunks[len(chunks)-1]
	slope, _ := g.window.SlopeAt(g.playerX)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"x=%.1f slope=%.2f window=[%.0f, %.0f] chunks=%d\n[arrows/AD] move  [shift] fast  [space] auto  [R] regenerate  [C] collider",
		g.playerX, slope, front.WorldOffsetX(), back.WorldOffsetX()+g.window.ChunkWidth(), len(chunks),
	), 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

func (g *Game) drawChunk(screen *ebiten.Image, c *terrain.Chunk) {
	offset := c.WorldOffsetX()
	mesh := c.Mesh()
	columns := len(c.TopHeights())

	// Ridge and bottom outline.
	g.strokePolyline(screen, mesh.Vertices[:columns], offset, 2, ridgeColor)
	g.strokePolyline(screen, mesh.Vertices[columns:], offset, 1, bottomColor)

	// Road ribbon and its centerline.
	road := c.Road()
	g.strokePolyline(screen, road.Vertices[:columns], offset, 3, roadColor)
	g.strokePolyline(screen, road.Centerline, offset, 1, centerColor)

	if g.showCollider {
		loop := c.Collider()
		g.strokePolyline(screen, loop, offset, 1, colliderColor)
		// Close the loop.
		g.strokeSegment(screen, loop[len(loop)-1], loop[0], offset, 1, colliderColor)
	}

	// Seam marker at the chunk's left edge.
	top := mesh.Vertices[0]
	x, _ := g.worldToScreen(offset+top.X, 0)
	y0 := float32(0)
	y1 := float32(g.cfg.WindowHeight)
	vector.StrokeLine(screen, x, y0, x, y1, 1, seamColor, false)
}

func (g *Game) strokePolyline(screen *ebiten.Image, pts []terrain.Vec2, worldOffsetX float64, width float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		g.strokeSegment(screen, pts[i-1], pts[i], worldOffsetX, width, clr)
	}
}

func (g *Game) strokeSegment(screen *ebiten.Image, a, b terrain.Vec2, worldOffsetX float64, width float32, clr color.Color) {
	x0, y0 := g.worldToScreen(a.X+worldOffsetX, a.Y)
	x1, y1 := g.worldToScreen(b.X+worldOffsetX, b.Y)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// worldToScreen maps a world point to screen space with the camera centered
// on the player.
func (g *Game) worldToScreen(x, y float64) (float32, float32) {
	sx := (x-g.playerX)*pxPerUnit + float64(g.cfg.WindowWidth)/2
	sy := float64(g.cfg.WindowHeight)*0.55 - y*pxPerUnit
	return float32(sx), float32(sy)
}
