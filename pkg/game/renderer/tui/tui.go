package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gallerycrawl/pkg/engine/input"
	"gallerycrawl/pkg/engine/terminal"
	"gallerycrawl/pkg/game/renderer"
	"gallerycrawl/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows    = 7
	ViewportMinCols    = 15
	ViewportSideMargin = 2
	// Lines needed outside viewport:
	// - Header + place + blank (3)
	// - Legend + blank (2)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Key help + prompt (2)
	ViewportTopMargin = 14
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// Out receives every frame; defaults to stdout
	Out io.Writer
	// Reveal draws the whole layout, ignoring fog
	Reveal bool

	colorFloor       color.Style
	colorWall        color.Style
	colorDoor        color.Style
	colorExhibit     color.Style
	colorFog         color.Style
	colorObserver    color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{Out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	if t.Out == nil {
		t.Out = os.Stdout
	}

	t.colorFloor = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgBlue}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorExhibit = color.Style{color.FgMagenta, color.OpBold}
	t.colorFog = color.Style{color.FgDarkGray}
	t.colorObserver = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.!'()%-]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleExhibit:
		return t.colorExhibit.Sprint(text)
	case renderer.StyleFog:
		return t.colorFog.Sprint(text)
	case renderer.StyleObserver:
		return t.colorObserver.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "EXHIBIT":
			val = t.colorExhibit.Sprint(operand)
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.Out, t.FormatText("%s", msg))
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - ViewportSideMargin*2
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep rows and cols odd for centering
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(lvl *state.Level) {
	rows, cols := t.GetViewportSize()
	t.renderFrame(lvl, rows, cols, terminal.DefaultWidth)
}

func (t *TUIRenderer) renderFrame(lvl *state.Level, rows, cols, width int) {
	t.printHeader(lvl)
	t.printMap(lvl, rows, cols)
	t.printLegend()
	t.printMessagesPane(lvl, width)
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.Out, t.FormatText(msg, a...))
}

func (t *TUIRenderer) printHeader(lvl *state.Level) {
	fmt.Fprint(t.Out, t.colorAction.Sprint(gotext.Get("Wing %d", lvl.Depth)+" · "+lvl.Theme().Name()))
	fmt.Fprint(t.Out, t.colorSubtle.Sprint("  "+gotext.Get("seed %d", lvl.Seed)))
	fmt.Fprint(t.Out, t.colorSubtle.Sprint("  "+gotext.Get("revealed %d", lvl.Revealed().Len())))
	fmt.Fprint(t.Out, "\n")

	if obs, ok := lvl.Observer(); ok {
		if place := lvl.PlaceName(obs); place != "" {
			fmt.Fprint(t.Out, t.colorSubtle.Sprint(gotext.Get("In: %s", place)))
		}
	}
	fmt.Fprint(t.Out, "\n\n")
}

// printMap renders the viewport centred on the observer
func (t *TUIRenderer) printMap(lvl *state.Level, rows, cols int) {
	snap := renderer.NewSnapshot(lvl)
	snap.Reveal = t.Reveal

	indent := strings.Repeat(" ", ViewportSideMargin)
	for _, line := range snap.Lines(snap.Viewport(rows, cols), t.StyleText) {
		fmt.Fprintln(t.Out, indent+line)
	}
	fmt.Fprintln(t.Out)
}

// printLegend prints the glyph legend
func (t *TUIRenderer) printLegend() {
	entries := []struct {
		icon  string
		style renderer.TextStyle
		label string
	}{
		{renderer.IconObserver, renderer.StyleObserver, gotext.Get("you")},
		{renderer.IconFloor, renderer.StyleFloor, gotext.Get("floor")},
		{renderer.IconWall, renderer.StyleWall, gotext.Get("wall")},
		{renderer.IconDoor, renderer.StyleDoor, gotext.Get("door")},
		{renderer.IconExhibit, renderer.StyleExhibit, gotext.Get("exhibit")},
		{renderer.IconFog, renderer.StyleFog, gotext.Get("unexplored")},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, t.StyleText(e.icon, e.style)+" "+t.colorSubtle.Sprint(e.label))
	}
	fmt.Fprintln(t.Out, strings.Join(parts, "  "))
	fmt.Fprintln(t.Out)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(lvl *state.Level, width int) {
	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.Out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(lvl.Messages) == 0 {
		fmt.Fprintln(t.Out, t.colorSubtle.Sprint("  "+gotext.Get("(no messages)")))
	} else {
		for _, msg := range lvl.Messages {
			t.printString("  %s\n", msg)
		}
	}

	fmt.Fprintln(t.Out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// PrintKeyHelp prints the key bindings for the explore loop
func (t *TUIRenderer) PrintKeyHelp() {
	byAction := input.GetBindingsByAction()
	actions := []input.Action{
		input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast,
		input.ActionResetLevel, input.ActionNextLevel, input.ActionQuit,
	}

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		key := keyLabel(byAction[a])
		if key == "" {
			continue
		}
		parts = append(parts, t.colorActionShort.Sprint(key)+" "+t.colorSubtle.Sprint(dynamicGet(input.ActionName(a))))
	}
	fmt.Fprintln(t.Out, strings.Join(parts, "  "))
}

// keyLabel joins the single-key codes of an action, such as "k/n", or falls
// back to the first code
func keyLabel(codes []string) string {
	var keys []string
	for _, c := range codes {
		if len(c) == 1 {
			keys = append(keys, c)
		}
	}
	if len(keys) == 0 && len(codes) > 0 {
		return codes[0]
	}
	return strings.Join(keys, "/")
}
