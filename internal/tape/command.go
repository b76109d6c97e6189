package tape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gaurav-Gosain/retrodesk/internal/desktop"
)

// CommandType represents the type of a tape command
type CommandType string

const (
	// Desktop operations
	CommandType_Viewport CommandType = "Viewport"
	CommandType_Open     CommandType = "Open"
	CommandType_Minimize CommandType = "Minimize"
	CommandType_Close    CommandType = "Close"
	CommandType_Focus    CommandType = "Focus"

	// Pointer gestures and keys
	CommandType_Drag     CommandType = "Drag"
	CommandType_Resize   CommandType = "Resize"
	CommandType_Maximize CommandType = "Maximize"
	CommandType_Scroll   CommandType = "Scroll"
	CommandType_Key      CommandType = "Key"

	// Assertions
	CommandType_Expect        CommandType = "Expect"
	CommandType_ExpectOpen    CommandType = "ExpectOpen"
	CommandType_ExpectFocused CommandType = "ExpectFocused"
)

// Command represents a parsed tape command
type Command struct {
	Type   CommandType
	App    desktop.Application   // target app; empty for ExpectFocused none
	Apps   []desktop.Application // ExpectOpen
	Args   []float64             // numeric arguments
	Key    string                // canonical key for Key
	Line   int                   // Source line number
	Column int                   // Source column number
}

// String returns the command as it would be written in a script
func (c *Command) String() string {
	parts := []string{string(c.Type)}
	switch c.Type {
	case CommandType_Key:
		parts = append(parts, strconv.Quote(c.Key))
	case CommandType_ExpectOpen:
		for _, app := range c.Apps {
			parts = append(parts, string(app))
		}
	case CommandType_ExpectFocused:
		if c.App == "" {
			parts = append(parts, "none")
		} else {
			parts = append(parts, string(c.App))
		}
	default:
		if c.App != "" {
			parts = append(parts, string(c.App))
		}
	}
	for _, a := range c.Args {
		parts = append(parts, strconv.FormatFloat(a, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}

// IsAssertion reports whether the command checks state instead of changing it.
func (ct CommandType) IsAssertion() bool {
	switch ct {
	case CommandType_Expect, CommandType_ExpectOpen, CommandType_ExpectFocused:
		return true
	}
	return false
}

// ParseError is a syntax error at a position in the script.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}
