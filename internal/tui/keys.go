package tui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

func isToggle(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", " ", "space":
		return true
	}
	return false
}
