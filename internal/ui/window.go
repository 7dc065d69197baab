// Package ui is the desktop front-end: a shiny window showing the canvas
// between a tool column and the property panel.
package ui

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/thumbforge/internal/clipboard"
	"github.com/example/thumbforge/internal/editor"
	"github.com/example/thumbforge/internal/filter"
	"github.com/example/thumbforge/internal/notify"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/panel"
	"github.com/example/thumbforge/internal/template"
	"github.com/example/thumbforge/internal/theme"
)

const (
	messageDuration = 2 * time.Second
	fontStep        = 4
)

// drainEvent asks the window goroutine to run posted editor work.
type drainEvent struct{}

// Window drives one editor session from a shiny window. All session calls
// happen on the window goroutine, which doubles as the editor loop.
type Window struct {
	sess     *editor.Session
	theme    *theme.Theme
	notifier *notify.Notifier

	readClipboard  func() ([]byte, error)
	writeClipboard func(image.Image) error

	width, height int
	layout        Layout

	toolButtons  []*CacheButton
	panelButtons []*CacheButton
	sections     []section
	hover        Action
	pressed      Action

	typing    bool
	pasting   bool
	dragging  bool
	dragLast  image.Point
	schemeIdx int
	quit      bool

	message      string
	messageUntil time.Time

	repaint func()
}

// Option configures a Window.
type Option func(*Window)

// WithNotifier sets the notifier used after saves and copies.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.notifier = n } }

// WithClipboard replaces the system clipboard.
func WithClipboard(read func() ([]byte, error), write func(image.Image) error) Option {
	return func(w *Window) {
		w.readClipboard = read
		w.writeClipboard = write
	}
}

// New prepares a window for sess. th may be nil for the default theme.
func New(sess *editor.Session, th *theme.Theme, opts ...Option) *Window {
	if th == nil {
		th = theme.Default()
	}
	w := &Window{
		sess:           sess,
		theme:          th,
		readClipboard:  clipboard.ReadPNG,
		writeClipboard: clipboard.WriteImage,
		schemeIdx:      -1,
	}
	for _, o := range opts {
		o(w)
	}
	w.toolButtons = []*CacheButton{
		newButton("Text", ActionText),
		newButton("Paste", ActionPaste),
		newButton("Delete", ActionDelete),
		newButton("Save", ActionSave),
		newButton("Copy", ActionCopy),
	}
	w.rebuildPanel()
	sz := sess.Kind.Size()
	w.resize(sz.X/2+toolbarWidth+panelWidth+2*margin, sz.Y/2+bottomHeight+2*margin)
	sess.OnChange(func() {
		if w.repaint != nil {
			w.repaint()
		}
	})
	return w
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() { driver.Main(w.Main) }

// Main is the shiny entry point.
func (w *Window) Main(s screen.Screen) {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.width, Height: w.height, Title: "thumbforge"})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer win.Release()

	w.repaint = func() { win.Send(paint.Event{}) }
	w.sess.Loop.OnPost(func() { win.Send(drainEvent{}) })
	defer w.sess.Loop.OnPost(nil)

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			w.resize(e.WidthPx, e.HeightPx)
			win.Send(paint.Event{})
		case paint.Event:
			w.paint(s, win)
		case drainEvent:
			w.sess.Loop.Drain()
			win.Send(paint.Event{})
		case mouse.Event:
			if w.handleMouse(e) {
				win.Send(paint.Event{})
			}
		case key.Event:
			if w.handleKey(e) {
				win.Send(paint.Event{})
			}
			if w.quit {
				return
			}
		}
	}
}

func (w *Window) paint(s screen.Screen, win screen.Window) {
	b, err := s.NewBuffer(image.Point{w.width, w.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	w.drawFrame(b.RGBA())
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

func (w *Window) resize(width, height int) {
	w.width, w.height = width, height
	w.layout = ComputeLayout(width, height)
	w.placeButtons()
}

func (w *Window) flash(msg string) {
	w.message = msg
	w.messageUntil = time.Now().Add(messageDuration)
	if w.repaint != nil {
		time.AfterFunc(messageDuration, w.repaint)
	}
}

// Message returns the message currently on screen.
func (w *Window) Message() string {
	if time.Now().After(w.messageUntil) {
		return ""
	}
	return w.message
}

// Typing reports whether key presses edit the selected text.
func (w *Window) Typing() bool { return w.typing }

func (w *Window) uploadBusy() bool { return w.pasting || w.sess.Toolbar.Uploading() }

// Do performs an action. It must run on the window goroutine.
func (w *Window) Do(a Action) {
	verb, arg, _ := strings.Cut(string(a), ":")
	switch verb {
	case "text":
		w.sess.AddText()
		w.typing = false
	case "paste":
		w.paste()
	case "delete":
		if w.sess.Delete() > 0 {
			w.typing = false
		}
	case "save":
		w.save()
	case "copy":
		w.copy()
	case "edit":
		w.typing = w.sess.Panel.Mode() == panel.Editing
	case "quit":
		w.quit = true
	case "bigger", "smaller":
		step := float64(fontStep)
		if verb == "smaller" {
			step = -step
		}
		w.sess.Panel.SetFontSize(w.sess.Panel.Fields().FontSize + step)
	case "scheme":
		w.scheme(arg)
	case "size":
		k, err := output.Parse(arg)
		if err != nil {
			w.flash(err.Error())
			return
		}
		w.sess.ApplySizePreset(k)
		w.rebuildPanel()
	case "template":
		w.template(arg)
	case "filter":
		n, err := w.sess.ApplyFilter(arg)
		if err != nil {
			w.flash(err.Error())
		} else if n == 0 {
			w.flash("No image to filter")
		}
	default:
		log.Printf("ui: unknown action %q", a)
	}
}

func (w *Window) scheme(name string) {
	schemes := panel.Schemes()
	if name == "" {
		w.schemeIdx = (w.schemeIdx + 1) % len(schemes)
		name = schemes[w.schemeIdx].Name
	}
	if err := w.sess.ApplyScheme(name); err != nil {
		w.flash(err.Error())
	}
}

func (w *Window) template(arg string) {
	name := arg
	if i, err := strconv.Atoi(arg); err == nil {
		presets := template.For(w.sess.Kind)
		if i < 1 || i > len(presets) {
			return
		}
		name = presets[i-1].Name
	}
	if err := w.sess.ApplyTemplate(name); err != nil {
		w.flash(err.Error())
		return
	}
	w.typing = false
}

func (w *Window) paste() {
	if w.uploadBusy() {
		w.flash("Upload in progress")
		return
	}
	w.pasting = true
	read := w.readClipboard
	loop := w.sess.Loop
	go func() {
		data, err := read()
		loop.Post(func() {
			w.pasting = false
			if err != nil {
				log.Printf("paste: %v", err)
				w.flash("Clipboard has no image")
				return
			}
			w.sess.Upload(bytes.NewReader(data))
		})
	}()
}

func (w *Window) save() {
	path, err := w.sess.ExportFile()
	if err != nil {
		log.Printf("save: %v", err)
		w.flash("Save failed")
		return
	}
	w.notifier.Export(path)
	w.flash("Saved " + path)
}

func (w *Window) copy() {
	frame := w.sess.Surface.Render()
	if err := w.writeClipboard(frame); err != nil {
		log.Printf("copy: %v", err)
		w.flash("Copy failed")
		return
	}
	w.notifier.Copy(fmt.Sprintf("%s thumbnail", w.sess.Kind.Label()), frame)
	w.flash("Copied to clipboard")
}

func (w *Window) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if w.typing {
		return w.typeKey(e)
	}
	a, ok := Lookup(e)
	if !ok {
		return false
	}
	w.Do(a)
	return true
}

func (w *Window) typeKey(e key.Event) bool {
	t := w.sess.Panel.Target()
	if t == nil {
		w.typing = false
		return true
	}
	switch e.Code {
	case key.CodeEscape:
		w.typing = false
		return true
	case key.CodeReturnEnter:
		if e.Modifiers&key.ModShift != 0 {
			w.sess.Panel.SetText(t.Content + "\n")
		} else {
			w.typing = false
		}
		return true
	case key.CodeDeleteBackspace:
		if t.Content != "" {
			_, n := utf8.DecodeLastRuneInString(t.Content)
			w.sess.Panel.SetText(t.Content[:len(t.Content)-n])
		}
		return true
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) && e.Modifiers&(key.ModControl|key.ModMeta) == 0 {
		w.sess.Panel.SetText(t.Content + string(e.Rune))
		return true
	}
	return false
}

func (w *Window) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	buttons := append(append([]*CacheButton(nil), w.toolButtons...), w.panelButtons...)
	if i := buttonAt(buttons, p); i >= 0 {
		a := buttons[i].Action()
		changed := w.hover != a
		w.hover = a
		if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
			w.pressed = a
			return true
		}
		if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease {
			if w.pressed == a && !(a == ActionPaste && w.uploadBusy()) {
				w.Do(a)
			}
			w.pressed = ""
			return true
		}
		return changed
	}
	changed := w.hover != ""
	w.hover = ""

	cw, ch := w.sess.Surface.Size()
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		w.pressed = ""
		cp, ok := w.layout.ToCanvas(p, cw, ch)
		if !ok {
			return changed
		}
		w.typing = false
		w.dragging = w.sess.SelectAt(cp.X, cp.Y) != nil
		w.dragLast = p
		return true
	case e.Direction == mouse.DirRelease:
		w.dragging = false
		w.pressed = ""
		return changed
	case e.Direction == mouse.DirNone && w.dragging:
		zoom, _ := w.layout.Fit(cw, ch)
		if zoom == 0 {
			return changed
		}
		dx := float64(p.X-w.dragLast.X) / zoom
		dy := float64(p.Y-w.dragLast.Y) / zoom
		w.dragLast = p
		w.sess.MoveActive(dx, dy)
		return true
	}
	return changed
}

// section groups panel buttons under a heading.
type section struct {
	title      string
	start, end int
	top        int
}

// rebuildPanel lists the panel buttons for the session kind.
func (w *Window) rebuildPanel() {
	var bs []*CacheButton
	var secs []section
	add := func(title string, labels []string, action func(i int) Action) {
		sec := section{title: title, start: len(bs)}
		for i, l := range labels {
			bs = append(bs, newButton(l, action(i)))
		}
		sec.end = len(bs)
		secs = append(secs, sec)
	}

	presets := template.For(w.sess.Kind)
	var names []string
	for _, p := range presets {
		names = append(names, p.Name)
	}
	add("Templates", names, func(i int) Action { return Action("template:" + presets[i].Name) })

	kinds := output.Kinds()
	names = nil
	for _, k := range kinds {
		names = append(names, k.Label())
	}
	add("Size", names, func(i int) Action { return Action("size:" + kinds[i].String()) })

	filters := filter.Names()
	add("Filters", filters, func(i int) Action { return Action("filter:" + filters[i]) })

	schemes := panel.Schemes()
	names = nil
	for _, s := range schemes {
		names = append(names, s.Name)
	}
	add("Colours", names, func(i int) Action { return Action("scheme:" + schemes[i].Name) })

	w.panelButtons = bs
	w.sections = secs
	w.placeButtons()
}
