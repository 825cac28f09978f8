package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/streak/pkg/habit"
)

func (m *Model) openForm(action formAction, h *habit.Habit, cmds *[]tea.Cmd) {
	m.mode = modeForm
	m.formAction = action
	m.editingID = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	if action == formEdit && h != nil {
		m.editingID = h.ID
		m.inputs[fieldTitle].SetValue(h.Title)
		m.inputs[fieldDescription].SetValue(h.Description)
		m.inputs[fieldColor].SetValue(h.Color)
		m.inputs[fieldIcon].SetValue(h.IconID)
	}
	m.focusIdx = fieldTitle
	if cmd := m.inputs[fieldTitle].Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitForm()
	case "esc":
		m.closeForm()
		m.status = "Cancelled"
	case "tab", "down":
		m.focusField((m.focusIdx+1)%fieldCount, cmds)
	case "shift+tab", "up":
		m.focusField((m.focusIdx+fieldCount-1)%fieldCount, cmds)
	default:
		var cmd tea.Cmd
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) focusField(idx int, cmds *[]tea.Cmd) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	if cmd := m.inputs[idx].Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

// submitForm applies the form. A validation failure keeps the form open
// with the typed values intact so nothing is lost.
func (m *Model) submitForm() {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	description := strings.TrimSpace(m.inputs[fieldDescription].Value())
	color := strings.TrimSpace(m.inputs[fieldColor].Value())
	iconID := strings.TrimSpace(m.inputs[fieldIcon].Value())

	switch m.formAction {
	case formAdd:
		if _, err := m.svc.AddHabit(m.ctx, title, description, color, iconID); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.cursor = 0
		m.status = "Added " + title
	case formEdit:
		p := habit.Patch{
			Title:       &title,
			Description: &description,
			IconID:      &iconID,
		}
		if color != "" {
			p.Color = &color
		}
		if err := m.svc.EditHabit(m.ctx, m.editingID, p); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "Saved"
	}
	m.closeForm()
}

func (m *Model) closeForm() {
	m.mode = modeNormal
	m.editingID = ""
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
