package settings

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chest-sorter/core/reconcile"
)

// Kind identifies a sorter chat command.
type Kind string

const (
	KindSortMode     Kind = "sortmode"
	KindSortVerbose  Kind = "sortverbose"
	KindSortAnywhere Kind = "sortanywhere"
)

var (
	// ErrNotCommand means the message is not addressed to the sorter.
	ErrNotCommand = errors.New("not a sorter command")
	// ErrInvalidUsage means the command was recognised but its argument was not.
	ErrInvalidUsage = errors.New("invalid usage")
	// ErrNotOperator means the sender may not change settings.
	ErrNotOperator = errors.New("only operators or singleplayer can use this command")
)

// OperatorTag is the player tag granting operator rights.
const OperatorTag = "operator"

// Command is a parsed chat command.
type Command struct {
	Kind    Kind           `json:"kind"`
	Mode    reconcile.Mode `json:"mode,omitempty"`
	Verbose bool           `json:"verbose,omitempty"`
}

// Player is the sender of a command or the trigger of a sort.
type Player struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// HasTag reports whether the player carries tag.
func (p Player) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// IsOperator reports whether p may change sorter settings: everyone may in a
// single-player world, otherwise only players tagged "operator".
func IsOperator(p Player, onlinePlayers int) bool {
	if onlinePlayers == 1 {
		return true
	}
	return p.HasTag(OperatorTag)
}

// ParseCommand parses a chat message. Commands taking an argument are only
// recognized with a space after their name; a bare "/sortmode" is ordinary
// chat and yields ErrNotCommand.
func ParseCommand(msg string) (Command, error) {
	msg = strings.TrimSpace(msg)
	if msg == "/"+string(KindSortAnywhere) {
		return Command{Kind: KindSortAnywhere}, nil
	}

	name, rest, ok := strings.Cut(msg, " ")
	if !ok || !strings.HasPrefix(name, "/") {
		return Command{}, ErrNotCommand
	}
	// Only the word right after the first space counts, as in "/sortmode count".
	arg, _, _ := strings.Cut(rest, " ")
	arg = strings.ToLower(arg)

	switch Kind(strings.TrimPrefix(name, "/")) {
	case KindSortMode:
		mode, err := reconcile.ParseMode(arg)
		if err != nil {
			return Command{Kind: KindSortMode}, fmt.Errorf("%w: use %s", ErrInvalidUsage, Usage(KindSortMode))
		}
		return Command{Kind: KindSortMode, Mode: mode}, nil

	case KindSortVerbose:
		switch arg {
		case "on":
			return Command{Kind: KindSortVerbose, Verbose: true}, nil
		case "off":
			return Command{Kind: KindSortVerbose, Verbose: false}, nil
		}
		return Command{Kind: KindSortVerbose}, fmt.Errorf("%w: use %s", ErrInvalidUsage, Usage(KindSortVerbose))
	}

	return Command{}, ErrNotCommand
}

// Usage returns the syntax of a command.
func Usage(k Kind) string {
	switch k {
	case KindSortMode:
		names := make([]string, len(reconcile.Modes))
		for i, m := range reconcile.Modes {
			names[i] = string(m)
		}
		return "/sortmode " + strings.Join(names, "|")
	case KindSortVerbose:
		return "/sortverbose on|off"
	}
	return "/" + string(k)
}

// Apply returns s with cmd applied and the message to broadcast to the world.
func Apply(s Settings, cmd Command) (Settings, string) {
	switch cmd.Kind {
	case KindSortMode:
		s.Mode = cmd.Mode
		return s, fmt.Sprintf("[ChestSort] Sorting mode set to %s.", cmd.Mode)
	case KindSortVerbose:
		s.Verbose = cmd.Verbose
		return s, fmt.Sprintf("[ChestSort] Verbose mode is now %s.", onOff(cmd.Verbose, "ON", "OFF"))
	case KindSortAnywhere:
		s.SortWithoutSneak = !s.SortWithoutSneak
		return s, fmt.Sprintf("[ChestSort] Sorting without sneaking is now %s.", onOff(s.SortWithoutSneak, "ENABLED", "DISABLED"))
	}
	return s, ""
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}
