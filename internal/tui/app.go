// Package tui is the desk rig: it renders the strip in the terminal and
// maps keyboard input onto encoder rotation and button gestures so the
// controller can be exercised without hardware.
package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/emberstrip/internal/config"
	"github.com/san-kum/emberstrip/internal/encoder"
	"github.com/san-kum/emberstrip/internal/fire"
	"github.com/san-kum/emberstrip/internal/loop"
	"github.com/san-kum/emberstrip/internal/menu"
	"github.com/san-kum/emberstrip/internal/params"
	"github.com/san-kum/emberstrip/internal/strip"
)

const (
	historyCapacity = 240
	velocityWindow  = 200 * time.Millisecond
	diagCapacity    = 6
)

type tickMsg time.Time

// diagLog keeps the last few diagnostics lines for the side panel.
type diagLog struct {
	lines []string
}

func (d *diagLog) add(line string) {
	d.lines = append(d.lines, line)
	if len(d.lines) > diagCapacity {
		d.lines = d.lines[len(d.lines)-diagCapacity:]
	}
}

// Model drives one lamp through the real scheduler at the configured
// frame rate, with keyboard standing in for the sampling interrupt.
type Model struct {
	cfg      *config.Config
	events   *encoder.Accumulator
	velocity *encoder.Velocity
	machine  *menu.Machine
	sched    *loop.Scheduler
	sink     *strip.Memory
	diag     *diagLog

	history []float64
	ticks   int
	width   int
	height  int
}

// NewModel wires a complete controller from cfg.
func NewModel(cfg *config.Config) Model {
	diag := &diagLog{}
	logf := func(format string, args ...any) {
		diag.add(fmt.Sprintf(format, args...))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store := params.NewStore(cfg.Leds)
	store.Set(params.Brightness, cfg.Brightness)
	store.Set(params.Sparking, cfg.Sparking)
	store.Set(params.Cooling, cfg.Cooling)

	sim := fire.NewSimulator(cfg.Leds, cfg.Reversed, rng)
	machine := menu.New(store, sim, logf)
	events := &encoder.Accumulator{}
	sink := &strip.Memory{}
	sched := loop.New(machine, events, sink, cfg.FPS, logf)

	return Model{
		cfg:      cfg,
		events:   events,
		velocity: encoder.NewVelocity(velocityWindow),
		machine:  machine,
		sched:    sched,
		sink:     sink,
		diag:     diag,
		history:  make([]float64, 0, historyCapacity),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.sched.Period(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if err := m.sched.RunTick(time.Time(msg)); err != nil {
			return m, tea.Quit
		}
		m.ticks++
		frame, _ := m.sink.Last()
		m.history = append(m.history, frame.Luma())
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

// handleKey translates keys into the same events the hardware sampler
// would produce: rotation deltas and one pending gesture.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "j":
		m.events.AddRotation(-m.velocity.Record(-1, time.Now()))
	case "right", "k":
		m.events.AddRotation(m.velocity.Record(1, time.Now()))
	case " ":
		m.events.PutGesture(encoder.Clicked)
	case "d":
		m.events.PutGesture(encoder.DoubleClicked)
	case "h":
		m.events.PutGesture(encoder.Held)
	case "r":
		m.events.PutGesture(encoder.Released)
	}
	return m, nil
}

// Run starts the rig and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
