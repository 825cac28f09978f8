package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/streak/pkg/ui/viewmodel"
	"tableflip.dev/streak/pkg/ui/yeargrid"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	grabStyle    = cardStyle.BorderForeground(lipgloss.Color("212"))
	pendingStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("241")).Italic(true)
	todayStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	formStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
)

// View renders the derived screen: loading, empty state, the habit
// stack, or the add/edit form. Rendering is a pure projection of model
// state, so any update can safely repaint everything.
func (m *Model) View() string {
	vm := viewmodel.Build(m.displayHabits(), viewmodel.UIState{
		Loading:         m.loading,
		FormOpen:        m.mode == modeForm,
		EditingID:       m.editingID,
		PendingDeleteID: m.pendingDeleteID,
		Width:           m.gridWidth(),
	}, m.boot.Icons, time.Now())

	var body string
	switch vm.Screen {
	case viewmodel.ScreenLoading:
		body = m.spin.View() + " loading habits…"
	case viewmodel.ScreenEmpty:
		body = titleStyle.Render("No habits yet.") + "\n\n" +
			helpStyle.Render("Press o to add your first habit.")
	case viewmodel.ScreenForm:
		body = m.viewForm()
	case viewmodel.ScreenStack:
		body = m.viewStack(vm)
	}

	if m.mode == modeHelp {
		body += "\n\n" + helpStyle.Render(
			"Keys: j/k move, x tick today, o add, i edit, d delete, u undo, m grab/drop, esc cancel, r refresh, :sync, :logout, q quit")
	}
	if m.mode == modeCommand {
		body += "\n\n:" + m.input.View()
	}

	return body + "\n\n" + m.viewStatus()
}

func (m *Model) viewStack(vm viewmodel.ViewModel) string {
	sel := m.displayCursor()
	cards := make([]string, 0, len(vm.Cards))
	for i, card := range vm.Cards {
		cards = append(cards, m.viewCard(card, i == sel))
	}
	return strings.Join(cards, "\n")
}

func (m *Model) viewCard(card viewmodel.Card, selected bool) string {
	if card.PendingDelete {
		return pendingStyle.Render(fmt.Sprintf("deleted %s · press u to undo", card.Title))
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(card.Color))
	marker := "  "
	if selected {
		marker = "» "
	}
	header := marker + accent.Bold(true).Render(card.IconSymbol+" "+card.Title)
	if card.TodayDone {
		header += accent.Render("  ✓ today")
	}
	if card.Streak > 1 {
		header += faintStyle.Render(fmt.Sprintf("  %d day streak", card.Streak))
	}

	lines := []string{header}
	if card.Description != "" {
		lines = append(lines, faintStyle.Render(wordwrap.String(card.Description, m.gridWidth())))
	}
	lines = append(lines, yeargrid.Render(card.Geometry, card.Cells, yeargrid.Options{
		DoneStyle:  accent,
		EmptyStyle: faintStyle,
		TodayStyle: todayStyle,
	}))

	style := cardStyle
	if selected && m.grabID != "" {
		style = grabStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewForm() string {
	labels := [fieldCount]string{"Title", "Description", "Color", "Icon"}
	heading := "New habit"
	if m.formAction == formEdit {
		heading = "Edit habit"
	}

	lines := []string{titleStyle.Render(heading), ""}
	for i := range m.inputs {
		label := labels[i]
		if i == m.focusIdx {
			label = "» " + label
		} else {
			label = "  " + label
		}
		lines = append(lines, fmt.Sprintf("%-14s %s", label, m.inputs[i].View()))
	}
	lines = append(lines, "", helpStyle.Render("enter save · tab next field · esc cancel"))
	return formStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewStatus() string {
	who := "guest · saving locally"
	if s, ok := m.boot.Auth.Current(); ok {
		if s.Email != "" {
			who = s.Email
		} else {
			who = s.UserID
		}
	}
	modeStr := map[mode]string{modeNormal: "NORMAL", modeForm: "FORM", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	return faintStyle.Render(fmt.Sprintf("[%s] %s · %s", modeStr, m.status, who))
}

// gridWidth is the horizontal space available to each card's year grid.
func (m *Model) gridWidth() int {
	w := m.termWidth - 6
	if w < 53 {
		w = 53
	}
	return w
}
