// Package tui hosts the Bubble Tea program for the habit stack.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/persist"
	"tableflip.dev/streak/pkg/reorder"
	"tableflip.dev/streak/pkg/undo"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeForm
	modeCommand
	modeHelp
)

type formAction int

const (
	formAdd formAction = iota
	formEdit
)

// form field order
const (
	fieldTitle = iota
	fieldDescription
	fieldColor
	fieldIcon
	fieldCount
)

// cardUnit is the abstract height of one resting card in the drag
// machine's coordinate space. Keyboard moves step the pointer by one
// unit, which is exactly one slot.
const cardUnit = 1.0

// Model contains UI state
type Model struct {
	boot *app.Bootstrap
	svc  *app.Service
	ctx  context.Context

	mode       mode
	formAction formAction
	editingID  string

	cursor  int
	loading bool

	drag    reorder.Drag
	grabID  string
	pointer float64

	undoCtl         *undo.Controller
	undoCh          chan string
	pendingDeleteID string

	inputs   [fieldCount]textinput.Model
	focusIdx int

	input textinput.Model // command line

	spin   spinner.Model
	status string

	termWidth  int
	termHeight int

	watchCh     <-chan persist.Event
	watchCancel context.CancelFunc
}

// New creates a new UI model backed by the wired app.
func New(boot *app.Bootstrap) *Model {
	var inputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"Title", "Description", "#f9736f", "icon id"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.VirtualCursor = true
		ti.Styles.Cursor.Color = lipgloss.Color("212")
		inputs[i] = ti
	}

	cmdInput := textinput.New()
	cmdInput.Placeholder = "command"
	cmdInput.CharLimit = 64
	cmdInput.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		boot:    boot,
		svc:     boot.Service,
		ctx:     context.Background(),
		mode:    modeNormal,
		loading: true,
		inputs:  inputs,
		input:   cmdInput,
		spin:    sp,
		status:  "j/k move, x tick today, o add, i edit, m grab to reorder, d delete, u undo, : commands",
		undoCh:  make(chan string, 8),
	}
	m.undoCtl = undo.New(boot.Config.GracePeriod(), func(id string) {
		select {
		case m.undoCh <- id:
		default:
		}
	})
	return m
}

// Init loads initial data
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.hydrate(), m.startWatch(), m.waitForUndo())
}

func (m *Model) hydrate() tea.Cmd {
	return func() tea.Msg {
		return hydratedMsg{m.svc.Hydrate(m.ctx)}
	}
}

func (m *Model) startWatch() tea.Cmd {
	local := m.boot.Local
	if local == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(m.ctx)
		ch, err := local.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) waitForUndo() tea.Cmd {
	ch := m.undoCh
	return func() tea.Msg {
		return undoExpiredMsg{id: <-ch}
	}
}

// messages
type errMsg struct{ err error }
type hydratedMsg struct{ hydration app.Hydration }
type watchStartedMsg struct {
	ch     <-chan persist.Event
	cancel context.CancelFunc
	err    error
}
type watchEventMsg struct{ event persist.Event }
type watchStoppedMsg struct{}
type undoExpiredMsg struct{ id string }

// Update handles messages and keybindings
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case hydratedMsg:
		// A drag across a list swap cannot land sanely; drop it.
		m.cancelGrab()
		if m.svc.ApplyHydration(msg.hydration) {
			m.loading = false
			m.clampCursor()
		} else {
			// Auth mode flipped while the fetch was in flight; go again.
			cmds = append(cmds, m.hydrate())
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: " + msg.err.Error()
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Type == persist.EventSessionChanged {
			m.boot.Auth.Invalidate()
		}
		cmds = append(cmds, m.hydrate(), m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case undoExpiredMsg:
		if msg.id != "" {
			m.svc.RemoveHabit(m.ctx, msg.id)
			if m.pendingDeleteID == msg.id {
				m.pendingDeleteID = ""
			}
			m.clampCursor()
		}
		cmds = append(cmds, m.waitForUndo())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeForm:
			m.handleFormKey(msg, &cmds)
		case modeCommand:
			m.handleCommandKey(msg, &cmds)
		case modeNormal:
			m.handleNormalKey(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case ":":
		m.mode = modeCommand
		m.input.Reset()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "j", "down":
		if m.grabID != "" {
			m.dragStep(1)
		} else if m.cursor < m.svc.Store.Len()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.grabID != "" {
			m.dragStep(-1)
		} else if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		if m.grabID == "" {
			m.cursor = 0
		}
	case "G":
		if m.grabID == "" && m.svc.Store.Len() > 0 {
			m.cursor = m.svc.Store.Len() - 1
		}
	case "x", "space":
		if h := m.currentHabit(); h != nil {
			if patch, ok := m.svc.ToggleCompletion(m.ctx, h.ID, ""); ok {
				if patch.Completed {
					m.status = "Ticked " + patch.Day
				} else {
					m.status = "Cleared " + patch.Day
				}
			}
		}
	case "o":
		m.openForm(formAdd, nil, cmds)
	case "i", "e":
		if h := m.currentHabit(); h != nil {
			m.openForm(formEdit, h, cmds)
		}
	case "d":
		if h := m.currentHabit(); h != nil && h.ID != m.pendingDeleteID {
			// Superseding a pending delete finalizes it through the
			// controller's callback.
			m.undoCtl.RequestDelete(h.ID)
			m.pendingDeleteID = h.ID
			m.status = "Deleted " + h.Title + " · u to undo"
		}
	case "u":
		if m.pendingDeleteID != "" && m.undoCtl.Undo(m.pendingDeleteID) {
			m.pendingDeleteID = ""
			m.status = "Restored"
		}
	case "m", "enter":
		if m.grabID == "" {
			m.beginGrab()
		} else {
			m.releaseGrab()
		}
	case "esc":
		if m.grabID != "" {
			m.cancelGrab()
			m.status = "Reorder cancelled"
		}
	case "r":
		*cmds = append(*cmds, m.hydrate())
	case "?":
		m.mode = modeHelp
	case "q", "ctrl+c":
		m.quit(cmds)
	}
}

func (m *Model) handleCommandKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		switch input {
		case "q", "quit", "exit":
			m.quit(cmds)
		case "sync":
			m.svc.Saver.Save(m.ctx, m.svc.Store.GetAll())
			*cmds = append(*cmds, m.hydrate())
			m.status = "Synced"
		case "logout":
			if err := m.boot.Auth.SignOut(); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.status = "Signed out"
				*cmds = append(*cmds, m.hydrate())
			}
		case "":
		default:
			m.status = "Unknown command: " + input
		}
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Command cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	// A removal in its grace window must not be lost to process exit.
	if m.pendingDeleteID != "" && m.undoCtl.Undo(m.pendingDeleteID) {
		m.svc.RemoveHabit(m.ctx, m.pendingDeleteID)
		m.pendingDeleteID = ""
	}
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) currentHabit() *habit.Habit {
	habits := m.svc.Store.GetAll()
	if m.cursor < 0 || m.cursor >= len(habits) {
		return nil
	}
	return habits[m.cursor]
}

func (m *Model) clampCursor() {
	if n := m.svc.Store.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- keyboard reorder via the drag machine

func (m *Model) beginGrab() {
	h := m.currentHabit()
	if h == nil || m.svc.Store.Len() < 2 {
		return
	}
	card := reorder.Rect{Top: float64(m.cursor) * cardUnit, Height: cardUnit}
	m.pointer = card.Center()
	if !m.drag.Begin(m.cursor, card, m.pointer) {
		return
	}
	m.grabID = h.ID
	m.status = "Grabbed " + h.Title + " · j/k move, m drop, esc cancel"
}

func (m *Model) dragStep(delta int) {
	m.pointer += float64(delta) * cardUnit
	m.drag.Move(m.pointer, m.siblingRects())
}

// siblingRects are the resting slots of every card except the grabbed
// one: n-1 stacked units.
func (m *Model) siblingRects() []reorder.Rect {
	n := m.svc.Store.Len() - 1
	if n < 0 {
		n = 0
	}
	rects := make([]reorder.Rect, n)
	for i := range rects {
		rects[i] = reorder.Rect{Top: float64(i) * cardUnit, Height: cardUnit}
	}
	return rects
}

func (m *Model) releaseGrab() {
	m.drag.Release()
	_, to, _ := m.drag.Settle()
	id := m.grabID
	m.grabID = ""
	// Committing a reorder always saves, even for a zero-net move.
	m.svc.MoveHabit(m.ctx, id, to)
	m.cursor = to
	m.status = "Moved"
}

func (m *Model) cancelGrab() {
	m.drag.Cancel()
	m.grabID = ""
	m.clampCursor()
}

// displayHabits is the list in visual order: while a card is grabbed it
// appears at the drag machine's insertion point instead of its stored
// slot.
func (m *Model) displayHabits() []*habit.Habit {
	habits := m.svc.Store.GetAll()
	if m.grabID == "" || m.drag.State() != reorder.Dragging {
		return habits
	}
	grabbed, i, ok := m.svc.Store.FindByID(m.grabID)
	if !ok {
		return habits
	}
	rest := append(habits[:i:i], habits[i+1:]...)
	at := m.drag.Move(m.pointer, m.siblingRects())
	if at > len(rest) {
		at = len(rest)
	}
	out := make([]*habit.Habit, 0, len(habits))
	out = append(out, rest[:at]...)
	out = append(out, grabbed)
	out = append(out, rest[at:]...)
	return out
}

// Program entry
func Run(boot *app.Bootstrap) error {
	p := tea.NewProgram(New(boot), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// displayCursor is where the selection marker sits: the grabbed card's
// placeholder while dragging, the cursor otherwise.
func (m *Model) displayCursor() int {
	if m.grabID != "" && m.drag.State() == reorder.Dragging {
		for i, h := range m.displayHabits() {
			if h.ID == m.grabID {
				return i
			}
		}
	}
	return m.cursor
}
