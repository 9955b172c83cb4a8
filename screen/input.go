// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/input.go
// Summary: Minimal key passthrough to the backend's input notation.
// Notes: Deliberately not a symbol mapping table; printable runes pass
//        through and only the keys the notation requires get names.

package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "CR",
	tcell.KeyEscape:     "Esc",
	tcell.KeyBackspace:  "BS",
	tcell.KeyBackspace2: "BS",
	tcell.KeyTab:        "Tab",
	tcell.KeyDelete:     "Del",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
}

// translateKey converts a key event to backend input notation, or "" when
// the event carries nothing forwardable.
func translateKey(ev *tcell.EventKey) string {
	if name, ok := specialKeys[ev.Key()]; ok {
		return wrapMods(name, ev.Modifiers())
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == '<' {
			return "<lt>"
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return fmt.Sprintf("<M-%c>", r)
		}
		return string(r)
	}

	// Control characters arrive as dedicated tcell keys.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return fmt.Sprintf("<C-%c>", 'a'+rune(ev.Key()-tcell.KeyCtrlA))
	}
	return ""
}

func wrapMods(name string, mods tcell.ModMask) string {
	prefix := ""
	if mods&tcell.ModCtrl != 0 {
		prefix += "C-"
	}
	if mods&tcell.ModAlt != 0 {
		prefix += "M-"
	}
	if mods&tcell.ModShift != 0 {
		prefix += "S-"
	}
	return "<" + prefix + name + ">"
}
