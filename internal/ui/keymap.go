package ui

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// Action names a user command. Buttons and keys resolve to the same names.
type Action string

const (
	ActionText      Action = "text"
	ActionPaste     Action = "paste"
	ActionDelete    Action = "delete"
	ActionSave      Action = "save"
	ActionCopy      Action = "copy"
	ActionEdit      Action = "edit"
	ActionQuit      Action = "quit"
	ActionBigger    Action = "bigger"
	ActionSmaller   Action = "smaller"
	ActionScheme    Action = "scheme"
	ActionYouTube   Action = "size:youtube"
	ActionNote      Action = "size:note"
	ActionTemplate1 Action = "template:1"
	ActionTemplate2 Action = "template:2"
	ActionTemplate3 Action = "template:3"
	ActionGreyscale Action = "filter:greyscale"
	ActionSepia     Action = "filter:sepia"
	ActionContrast  Action = "filter:contrast"
	ActionBlur      Action = "filter:blur"
	ActionNoFilter  Action = "filter:none"
)

// KeyShortcut identifies a key press.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

var bindings = []struct {
	action Action
	keys   []KeyShortcut
}{
	{ActionText, []KeyShortcut{{Rune: 't'}}},
	{ActionPaste, []KeyShortcut{{Rune: 'v', Modifiers: key.ModControl}}},
	{ActionDelete, []KeyShortcut{{Code: key.CodeDeleteForward}, {Code: key.CodeDeleteBackspace}}},
	{ActionSave, []KeyShortcut{{Rune: 's', Modifiers: key.ModControl}}},
	{ActionCopy, []KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}},
	{ActionEdit, []KeyShortcut{{Code: key.CodeReturnEnter}}},
	{ActionQuit, []KeyShortcut{{Rune: 'q'}}},
	{ActionBigger, []KeyShortcut{{Rune: ']'}}},
	{ActionSmaller, []KeyShortcut{{Rune: '['}}},
	{ActionScheme, []KeyShortcut{{Rune: 'k'}}},
	{ActionYouTube, []KeyShortcut{{Rune: 'y'}}},
	{ActionNote, []KeyShortcut{{Rune: 'o'}}},
	{ActionTemplate1, []KeyShortcut{{Code: key.CodeF1}}},
	{ActionTemplate2, []KeyShortcut{{Code: key.CodeF2}}},
	{ActionTemplate3, []KeyShortcut{{Code: key.CodeF3}}},
	{ActionGreyscale, []KeyShortcut{{Rune: 'g'}}},
	{ActionSepia, []KeyShortcut{{Rune: 's'}}},
	{ActionContrast, []KeyShortcut{{Rune: 'c'}}},
	{ActionBlur, []KeyShortcut{{Rune: 'b'}}},
	{ActionNoFilter, []KeyShortcut{{Rune: 'n'}}},
}

var keymap = map[KeyShortcut]Action{}

func init() {
	for _, b := range bindings {
		for _, k := range b.keys {
			keymap[k] = b.action
		}
	}
}

// Lookup resolves a key event to an action. Only presses resolve.
func Lookup(e key.Event) (Action, bool) {
	if e.Direction != key.DirPress && e.Direction != key.DirNone {
		return "", false
	}
	mods := e.Modifiers & (key.ModControl | key.ModMeta)
	r := unicode.ToLower(e.Rune)
	// Some drivers report control characters for Ctrl+letter.
	if (r <= 0 || !unicode.IsPrint(r)) && e.Code >= key.CodeA && e.Code <= key.CodeZ {
		r = 'a' + rune(e.Code-key.CodeA)
	}
	if r > 0 && unicode.IsPrint(r) {
		if a, ok := keymap[KeyShortcut{Rune: r, Modifiers: mods}]; ok {
			return a, true
		}
	}
	a, ok := keymap[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return a, ok
}

// statusShortcuts are shown in the bottom bar.
var statusShortcuts = []struct {
	Label  string
	Action Action
}{
	{"T:text", ActionText},
	{"^V:paste", ActionPaste},
	{"Del:delete", ActionDelete},
	{"^S:save", ActionSave},
	{"^C:copy", ActionCopy},
	{"Enter:type", ActionEdit},
	{"F1-F3:template", ActionTemplate1},
	{"[/]:size", ActionBigger},
	{"K:scheme", ActionScheme},
	{"Q:quit", ActionQuit},
}
