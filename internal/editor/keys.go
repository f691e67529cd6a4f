package editor

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyString normalizes a key event into the chord identifier used as a
// keymap key: lower-case key name with "cmd+"/"ctrl+"/"alt+" prefixes in
// that order. Shift is left implicit for rune keys (the rune already
// carries it).
func keyString(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		return modPrefix(ev.Modifiers()) + name
	}
	if ev.Key() == tcell.KeyBacktab {
		return "shift+tab"
	}
	// Tab and Enter collide with the ctrl-letter range (KeyTab == KeyCtrlI,
	// KeyEnter == KeyCtrlM), so named keys go first.
	if name := specialKeyName(ev.Key()); name != "" {
		mods := ev.Modifiers() &^ tcell.ModShift
		if ev.Modifiers()&tcell.ModShift != 0 {
			return modPrefix(mods) + "shift+" + name
		}
		return modPrefix(mods) + name
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	return strings.ToLower(ev.Name())
}

func modPrefix(mods tcell.ModMask) string {
	var sb strings.Builder
	if mods&tcell.ModMeta != 0 {
		sb.WriteString("cmd+")
	}
	if mods&tcell.ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if mods&tcell.ModAlt != 0 {
		sb.WriteString("alt+")
	}
	return sb.String()
}

func specialKeyName(key tcell.Key) string {
	switch key {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyDelete:
		return "del"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyInsert:
		return "ins"
	}
	return ""
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string('a'+rune(key-tcell.KeyCtrlA))
	}
	switch key {
	case tcell.KeyCtrlSpace:
		return "ctrl+space"
	case tcell.KeyCtrlUnderscore:
		return "ctrl+_"
	}
	return ""
}
