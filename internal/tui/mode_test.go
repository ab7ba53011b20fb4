package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModeConfirm, "confirm"},
		{ModeInputTitle, "input_title"},
		{ModeHelp, "help"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
			assert.Equal(t, tt.mode == ModeInputTitle, tt.mode.IsInputMode())
		})
	}
}

func TestDefaultKeyMap_HelpCoversBindings(t *testing.T) {
	k := DefaultKeyMap()

	var n int
	for _, group := range k.FullHelp() {
		n += len(group)
	}
	assert.Equal(t, 9, n)
	assert.Contains(t, k.ShortHelp(), k.Quit)
}
