package view

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/slaiyer/wasm-game-of-life/internal/app"
	"github.com/slaiyer/wasm-game-of-life/internal/core"
	"github.com/slaiyer/wasm-game-of-life/internal/life"
)

// catch-up cap for the pacer; anything larger means the terminal stalled and
// bursting through the backlog would only freeze it again.
const maxStepBatches = 4

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Terminal renders a universe in a gocui layout and feeds user commands back
// into it. The universe is mutated only from the gocui main loop (handlers
// and Update closures), which keeps the single-owner contract intact.
type Terminal struct {
	u *life.Universe
	g *gocui.Gui
	k []keyBinding

	pacer        *core.FixedStep
	tps          int
	ticksPerStep int
	probability  float64

	running bool
	notice  string

	// anchor cell for keyboard deploys; follows the last mouse click.
	lastRow, lastCol int

	liveFiller string
	deadFiller string

	quit chan struct{}
}

// NewTerminal constructs the terminal viewer around the provided universe.
func NewTerminal(u *life.Universe, cfg *app.Config) *Terminal {
	t := &Terminal{
		u:            u,
		pacer:        core.NewFixedStep(cfg.TPS),
		tps:          cfg.TPS,
		ticksPerStep: cfg.TicksPerFrame,
		probability:  cfg.Probability,
		lastRow:      u.Height() / 2,
		lastCol:      u.Width() / 2,
		liveFiller:   aurora.Green("█").BgBrightGreen().String(),
		deadFiller:   "░",
		quit:         make(chan struct{}),
	}
	if t.ticksPerStep < 1 {
		t.ticksPerStep = 1
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g = g
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "run/pause", t.cmdToggleRun, ""},
		{'n', "N", "step", t.cmdStep, ""},
		{'c', "C", "clear", t.cmdClear, ""},
		{'w', "W", "reseed", t.cmdReseed, ""},
		{'g', "G", "glider", t.cmdDeployGlider, ""},
		{'p', "P", "pulsar", t.cmdDeployPulsar, ""},
		{'+', "+", "faster", t.cmdFaster, ""},
		{'-', "-", "slower", t.cmdSlower, ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", t.cmdMouseToggle, "field"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	return t
}

func (t *Terminal) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) })
		if err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI until the user quits. It blocks.
func (t *Terminal) Start() {
	go t.pace()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.quit)
	t.g.Close()
}

// pace drives the simulation while running. The actual ticking happens
// inside g.Update closures so that it is serialized with the key and mouse
// handlers on the main loop.
func (t *Terminal) pace() {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				n := t.pacer.Steps()
				if !t.running || n == 0 {
					return nil
				}
				if n > maxStepBatches {
					n = maxStepBatches
				}
				for ; n > 0; n-- {
					for i := 0; i < t.ticksPerStep; i++ {
						t.u.Tick()
					}
				}
				t.refresh()
				return nil
			})
		}
	}
}

func (t *Terminal) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *Terminal) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("field")
		if err != nil {
			return nil
		}
		v.Clear()

		w, h := t.u.Width(), t.u.Height()
		maxW, maxH := v.Size()
		cropped := w > maxW || h > maxH

		cells := t.u.Cells()
		var b bytes.Buffer
		for row := 0; row < h && row < maxH; row++ {
			if row != 0 {
				b.WriteByte('\n')
			}
			if cropped && row == maxH-1 {
				b.WriteString(aurora.Red("universe larger than the viewing area").BgBlack().String())
				break
			}
			for col := 0; col < w && col < maxW; col++ {
				idx := row*w + col
				if cells[idx/8]&(1<<(idx%8)) != 0 {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *Terminal) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()
		mode := aurora.Colorize("paused", aurora.BlueFg).String()
		if t.running {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}
		_, _ = fmt.Fprintln(v, t.prop("Dimension", "%v x %v", t.u.Width(), t.u.Height()))
		_, _ = fmt.Fprintln(v, t.prop("Generation", "%v", t.u.Generation()))
		_, _ = fmt.Fprintln(v, t.prop("Population", "%v", t.u.Population()))
		_, _ = fmt.Fprintln(v, t.prop("Speed", "%v tps x %v", t.tps, t.ticksPerStep))
		_, _ = fmt.Fprintln(v, t.prop("Mode", "%v", mode))
		if t.notice != "" {
			_, _ = fmt.Fprintln(v, t.prop("Notice", "%v", t.notice))
		}
		return nil
	})
}

func (t *Terminal) prop(name, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26

	if maxX < leftColumnWidth+4 || maxY < 8 {
		if v, err := g.SetView("header", -1, -1, maxX+1, 1); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Frame = false
			_, _ = fmt.Fprintln(v, "terminal too small")
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		_ = g.DeleteView("help")
		return nil
	}

	if v, err := g.SetView("header", -1, -1, maxX+1, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		_, _ = fmt.Fprintln(v, " Conway's Game of Life")
	}

	if v, err := g.SetView("status", 0, 1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	} else {
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 1, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, kb := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *Terminal) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Terminal) cmdToggleRun(_ *gocui.View) error {
	t.running = !t.running
	t.notice = ""
	t.refresh()
	return nil
}

func (t *Terminal) cmdStep(_ *gocui.View) error {
	t.running = false
	t.u.Tick()
	t.refresh()
	return nil
}

func (t *Terminal) cmdClear(_ *gocui.View) error {
	t.running = false
	t.u.Clear()
	t.refresh()
	return nil
}

func (t *Terminal) cmdReseed(_ *gocui.View) error {
	t.u.Reset(time.Now().UnixNano(), t.probability)
	t.refresh()
	return nil
}

func (t *Terminal) cmdDeployGlider(_ *gocui.View) error {
	return t.deploy("glider")
}

func (t *Terminal) cmdDeployPulsar(_ *gocui.View) error {
	return t.deploy("pulsar")
}

func (t *Terminal) deploy(name string) error {
	if err := t.u.Deploy(name, t.lastRow, t.lastCol); err != nil {
		t.notice = err.Error()
	}
	t.refresh()
	return nil
}

func (t *Terminal) cmdFaster(_ *gocui.View) error {
	if t.tps < 240 {
		t.tps *= 2
		t.pacer.SetTPS(t.tps)
	}
	t.refresh()
	return nil
}

func (t *Terminal) cmdSlower(_ *gocui.View) error {
	if t.tps > 1 {
		t.tps /= 2
		t.pacer.SetTPS(t.tps)
	}
	t.refresh()
	return nil
}

func (t *Terminal) cmdMouseToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.lastRow, t.lastCol = cy, cx
	t.u.ToggleCell(cy, cx)
	t.refresh()
	return nil
}
