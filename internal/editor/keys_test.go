package editor

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', 0), "a"},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'A', 0), "A"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', 0), "space"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{"meta rune", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModMeta), "cmd+s"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "ctrl+q"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0), "enter"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, 0), "tab"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), "shift+tab"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, 0), "esc"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), "backspace"},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, 0), "del"},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, 0), "up"},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), "shift+up"},
		{"meta arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModMeta), "cmd+left"},
		{"page keys", tcell.NewEventKey(tcell.KeyPgDn, 0, 0), "pgdn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyString(tt.ev); got != tt.want {
				t.Fatalf("keyString = %q, want %q", got, tt.want)
			}
		})
	}
}
