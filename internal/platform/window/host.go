package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Game is a registry game that can also describe itself as sprites.
type Game interface {
	registry.Game

	// Sprites returns every drawable entity in world units.
	Sprites() []core.Sprite

	// Arena returns the playfield size in world units.
	Arena() (width, height int)
}

// Options configures the window host.
type Options struct {
	Title       string
	Scale       int
	VSync       bool
	TickRate    int
	SpriteSheet string // PNG path; empty draws a generated sheet
	Logger      *log.Logger
}

// Host adapts a Game to ebiten.Game.
type Host struct {
	game    Game
	sheet   *SpriteSheet
	logger  *log.Logger
	width   int
	height  int
	showHUD bool
	state   core.GameState

	// Keyboard access, swappable in tests.
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// Key bindings. Several keys may map to one action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// NewHost creates a host for an already reset game.
func NewHost(game Game, sheet *SpriteSheet, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := game.Arena()
	return &Host{
		game:        game,
		sheet:       sheet,
		logger:      logger,
		width:       w,
		height:      h,
		showHUD:     true,
		state:       game.State(),
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// inputFrame polls the keyboard for the held state of every action.
func (h *Host) inputFrame() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if h.pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// Update runs exactly one simulation frame per tick.
func (h *Host) Update() error {
	frame := h.inputFrame()
	if frame.Has(core.ActionQuit) {
		h.logger.Info("game stopped", "frame", h.state.Frame, "bugs", h.state.Bugs)
		return ebiten.Termination
	}
	if h.justPressed(ebiten.KeyF3) {
		h.showHUD = !h.showHUD
	}

	result := h.game.Step(frame)
	h.state = result.State
	for _, ev := range result.Events {
		h.logger.Debug(ev.Msg, ev.KeyVals...)
	}
	return nil
}

// Draw renders every sprite centred on its world position.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	for _, sp := range h.game.Sprites() {
		cell := h.sheet.Cell(sp.Index)
		if cell == nil {
			continue
		}
		x, y := ScreenPos(sp.Pos, h.width, h.height)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(cell, op)
	}

	if h.showHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("bugs %d  lasers %d  frame %d  tps %.0f",
			h.state.Bugs, h.state.Lasers, h.state.Frame, ebiten.ActualTPS()))
	}
}

// Layout keeps the logical screen equal to the arena; Ebitengine scales it
// to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// ScreenPos converts a world position (origin at the arena centre, y up) to
// the top-left pixel of a sprite cell centred on it.
func ScreenPos(pos core.Vec2, arenaW, arenaH int) (float64, float64) {
	x := pos.X + float64(arenaW)/2 - CellSize/2
	y := float64(arenaH)/2 - pos.Y - CellSize/2
	return x, y
}

// Run opens the window and blocks until it is closed or the quit key is pressed.
func Run(game Game, opts Options) error {
	var sheet *SpriteSheet
	if opts.SpriteSheet != "" {
		loaded, err := LoadSpriteSheet(opts.SpriteSheet)
		if err != nil {
			return err
		}
		sheet = loaded
	} else {
		sheet = GenerateSpriteSheet()
	}

	w, h := game.Arena()
	scale := max(opts.Scale, 1)
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}

	game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: tps})
	host := NewHost(game, sheet, opts.Logger)
	host.logger.Info("window opened", "game", game.ID(), "width", w*scale, "height", h*scale, "tps", tps)

	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetVsyncEnabled(opts.VSync)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
