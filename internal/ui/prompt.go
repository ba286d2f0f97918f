package ui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows an interactive confirmation for a destructive action.
// Defaults to no; any prompt error counts as a refusal.
func Confirm(title string) bool {
	confirm := false
	prompt := huh.NewConfirm().
		Title(title).
		Value(&confirm)

	if err := prompt.Run(); err != nil {
		return false
	}
	return confirm
}
