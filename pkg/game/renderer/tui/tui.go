package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"dungeonescape/pkg/engine/terminal"
	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/renderer"
	"dungeonescape/pkg/game/state"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	plain bool
	width int

	colorTitle       color.Style
	colorRoom        color.Style
	colorRoomText    color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorHealth      color.Style
	colorHealthLow   color.Style
	colorVictory     color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out.
// A plain renderer emits no colour codes, which suits pipes and tests.
func New(out io.Writer, plain bool) *TUIRenderer {
	return &TUIRenderer{out: out, plain: plain}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgYellow, color.OpBold}
	t.colorRoom = color.Style{color.FgCyan, color.OpBold}
	t.colorRoomText = color.Style{color.FgBlue}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHealth = color.Style{color.FgGreen}
	t.colorHealthLow = color.Style{color.FgRed, color.OpBold}
	t.colorVictory = color.Style{color.FgGreen, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

	t.width = terminal.RuleWidth()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.plain {
		return text
	}

	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleRoomText:
		return t.colorRoomText.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHealth:
		return t.colorHealth.Sprint(text)
	case renderer.StyleHealthLow:
		return t.colorHealthLow.Sprint(text)
	case renderer.StyleVictory:
		return t.colorVictory.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return t.markup(msg)
}

// markup expands the markup functions in s, which is already formatted
func (t *TUIRenderer) markup(s string) string {
	ret := s
	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = locale.Get(operand)
		case "ITEM":
			val = t.StyleText(operand, renderer.StyleItem)
		case "ROOM":
			val = t.StyleText(operand, renderer.StyleRoom)
		case "ACTION":
			val = t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		case "DENIED":
			val = t.StyleText(operand, renderer.StyleDenied)
		default:
			// Not markup we know; leave the text alone
			continue
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	t.println(t.markup(msg))
}

// ShowIntro prints the title banner and opening lines
func (t *TUIRenderer) ShowIntro() {
	rule := strings.Repeat("=", t.width)
	title := locale.Get("TITLE")

	t.println("")
	t.println(t.StyleText(rule, renderer.StyleSubtle))
	t.println(t.StyleText(centre(title, t.width), renderer.StyleTitle))
	t.println(t.StyleText(rule, renderer.StyleSubtle))

	for _, line := range renderer.IntroLines() {
		t.println(t.markup(line))
	}
}

// RenderRoom prints the current room
func (t *TUIRenderer) RenderRoom(g *state.Game) {
	for i, line := range renderer.RoomLines(g) {
		// the description sits right under the room name
		if i == 2 {
			line = t.StyleText(line, renderer.StyleRoomText)
		}
		t.println(t.markup(line))
	}
}

// RenderStatus prints the status line, colouring health by how low it is
func (t *TUIRenderer) RenderStatus(g *state.Game) {
	style := renderer.StyleHealth
	if g.Player.Health <= renderer.LowHealth {
		style = renderer.StyleHealthLow
	}

	line := t.markup(renderer.StatusLine(g))
	health := fmt.Sprint(g.Player.Health)
	line = strings.Replace(line, health, t.StyleText(health, style), 1)

	t.println("")
	t.println(line)
}

// Prompt prints the input prompt
func (t *TUIRenderer) Prompt() {
	fmt.Fprint(t.out, "\n"+t.StyleText(locale.Get("PROMPT"), renderer.StyleAction))
}

// println writes a single line
func (t *TUIRenderer) println(s string) {
	fmt.Fprintln(t.out, s)
}

// centre pads s on the left so it sits in the middle of width columns
func centre(s string, width int) string {
	pad := (width - len(color.ClearCode(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
