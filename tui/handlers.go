package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	// An error must be dismissed before anything else happens.
	if a.scene.PendingError() != nil {
		switch key {
		case "esc", "enter", " ":
			a.scene.DismissError()
		}
		return nil
	}

	switch a.currentMode {
	case FilterMode:
		return a.handleFilterKeys(msg)
	case TagInputMode:
		return a.handleTagInputKeys(msg)
	case ConfirmRenameMode:
		return a.handleConfirmKeys(key)
	case HelpMode:
		return a.handleHelpKeys(key)
	}

	// Global
	switch key {
	case "q":
		return tea.Quit
	case "?":
		return a.toggleHelp()
	case "y":
		return a.copySelected(false)
	case "Y":
		return a.copySelected(true)
	case " ", "p":
		return a.togglePlayback()
	case "o":
		if selected, ok := a.ctrl.Selected(); ok {
			return a.openMedia(selected.Name)
		}
		return a.setStatus("Select an image first", 2)
	case "a":
		return a.startTagInput()
	case "r":
		return a.refresh()
	case "R":
		a.previousMode = a.currentMode
		a.currentMode = ConfirmRenameMode
		return nil
	}

	if a.currentMode == TagListMode {
		return a.handleTagListKeys(key)
	}
	return a.handleGridKeys(key)
}

func (a *App) handleGridKeys(key string) tea.Cmd {
	switch key {
	case "up", "k":
		a.browser.MoveUp()
	case "down", "j":
		a.browser.MoveDown()
	case "left", "h":
		a.browser.MoveLeft()
	case "right", "l":
		a.browser.MoveRight()
	case "pgup":
		a.browser.PageUp()
	case "pgdown":
		a.browser.PageDown()
	case "home", "g":
		a.browser.Home()
	case "end", "G":
		a.browser.End()
	case "enter":
		grid, _ := a.scene.Grid()
		if i := a.browser.Cursor(); i < len(grid) {
			a.ctrl.Select(grid[i].ID)
		}
	case "tab":
		if _, ok := a.ctrl.Selected(); ok {
			a.currentMode = TagListMode
		}
	case "/":
		a.currentMode = FilterMode
		a.filterInput.SetValue(a.ctrl.Filter())
		a.filterInput.CursorEnd()
		return a.filterInput.Focus()
	case "esc":
		if a.ctrl.Filter() != "" {
			a.applyFilter("")
		}
	}
	return nil
}

func (a *App) handleTagListKeys(key string) tea.Cmd {
	switch key {
	case "left", "h", "up", "k":
		a.tagEditor.MoveLeft()
	case "right", "l", "down", "j":
		a.tagEditor.MoveRight()
	case "d", "x", "delete", "backspace":
		if chip, ok := a.tagEditor.SelectedChip(); ok {
			return a.deleteTag(chip)
		}
	case "tab", "esc":
		a.currentMode = GridMode
	}
	return nil
}

func (a *App) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.filterInput.Blur()
		a.currentMode = GridMode
		return nil
	case "esc":
		a.filterInput.Blur()
		a.filterInput.Reset()
		a.currentMode = GridMode
		a.applyFilter("")
		return nil
	}

	before := a.filterInput.Value()
	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	if a.filterInput.Value() != before {
		a.applyFilter(a.filterInput.Value())
	}
	return cmd
}

func (a *App) applyFilter(query string) {
	a.ctrl.ApplyFilter(query)
	a.browser.Reset()
}

func (a *App) startTagInput() tea.Cmd {
	if _, ok := a.ctrl.Selected(); !ok {
		return a.setStatus("Select an image first", 2)
	}
	a.previousMode = a.currentMode
	a.currentMode = TagInputMode
	return a.tagEditor.StartEditing()
}

func (a *App) handleTagInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return a.submitTag()
	case "esc":
		a.tagEditor.StopEditing()
		a.currentMode = a.previousMode
		return nil
	}

	cmd := a.tagEditor.Update(msg)
	a.ctrl.SetTagInput(a.tagEditor.Value())
	return cmd
}

func (a *App) handleConfirmKeys(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		a.currentMode = a.previousMode
		return a.renameAll(true)
	case "n", "N", "esc":
		a.currentMode = a.previousMode
		return a.renameAll(false)
	}
	return nil
}

func (a *App) handleHelpKeys(key string) tea.Cmd {
	switch key {
	case "esc", "?", "q":
		a.currentMode = a.previousMode
	}
	return nil
}

func (a *App) toggleHelp() tea.Cmd {
	if a.currentMode == HelpMode {
		a.currentMode = a.previousMode
	} else {
		a.previousMode = a.currentMode
		a.currentMode = HelpMode
	}
	return nil
}

// togglePlayback clicks the play overlay of the selected video, or pauses it
// when it is already playing. Playback itself happens in the system player.
func (a *App) togglePlayback() tea.Cmd {
	detail, _ := a.scene.Detail()
	if detail == nil || detail.Player == nil {
		return a.setStatus("Select a video first", 2)
	}
	if detail.Player.OverlayVisible() {
		detail.Player.ClickOverlay()
		return a.openMedia(detail.Record.Name)
	}
	detail.Player.Pause()
	return nil
}
