package input

import (
	"strings"
	"unicode"
)

// Action is the canonical meaning of a command keyword
type Action int

const (
	ActionNone Action = iota // Blank input

	ActionMove
	ActionTake
	ActionUse
	ActionInventory
	ActionLook
	ActionHelp
	ActionQuit

	ActionUnknown // Keyword not in the bindings table
)

// Command is a parsed line of input.
// Raw is the whole line after trimming and lower-casing.
type Command struct {
	Action   Action
	Keyword  string
	Argument string
	Raw      string
}

type binding struct {
	action   Action
	keywords []string
}

// synonyms lists the keywords for each action in help order
var synonyms = []binding{
	{ActionMove, []string{"go", "move", "walk"}},
	{ActionTake, []string{"take", "get", "grab", "pick"}},
	{ActionUse, []string{"use"}},
	{ActionInventory, []string{"inventory", "inv", "i"}},
	{ActionLook, []string{"look", "l"}},
	{ActionHelp, []string{"help", "h", "?"}},
	{ActionQuit, []string{"quit", "exit", "q"}},
}

// bindings maps keywords to actions
var bindings = func() map[string]Action {
	m := make(map[string]Action)
	for _, b := range synonyms {
		for _, kw := range b.keywords {
			m[kw] = b.action
		}
	}
	return m
}()

// Parse normalizes a raw line and splits it into an action keyword and an
// argument. Everything after the first word is the argument, so multi-word
// arguments are kept whole.
func Parse(line string) Command {
	raw := strings.ToLower(strings.TrimSpace(line))
	if raw == "" {
		return Command{Action: ActionNone}
	}

	keyword, argument := raw, ""
	if i := strings.IndexFunc(raw, unicode.IsSpace); i >= 0 {
		keyword = raw[:i]
		argument = strings.TrimSpace(raw[i:])
	}

	return Command{
		Action:   Lookup(keyword),
		Keyword:  keyword,
		Argument: argument,
		Raw:      raw,
	}
}

// Lookup returns the action bound to keyword, or ActionUnknown
func Lookup(keyword string) Action {
	if act, ok := bindings[strings.ToLower(keyword)]; ok {
		return act
	}
	return ActionUnknown
}

// RequiresArgument returns true for actions that need an argument
func (a Action) RequiresArgument() bool {
	switch a {
	case ActionMove, ActionTake, ActionUse:
		return true
	default:
		return false
	}
}

// String returns the canonical action name
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionTake:
		return "take"
	case ActionUse:
		return "use"
	case ActionInventory:
		return "inventory"
	case ActionLook:
		return "look"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Synonyms returns the keywords bound to an action in declaration order
func Synonyms(a Action) []string {
	for _, b := range synonyms {
		if b.action == a {
			out := make([]string, len(b.keywords))
			copy(out, b.keywords)
			return out
		}
	}
	return nil
}

// Actions returns every bindable action in help order
func Actions() []Action {
	out := make([]Action, 0, len(synonyms))
	for _, b := range synonyms {
		out = append(out, b.action)
	}
	return out
}
