package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCommand is returned for a line that is not exactly three tokens.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidRelation is returned for a relation code with no registered handler.
	ErrInvalidRelation = errors.New("invalid relation type")
)

// Command is one parsed "[Person1] [Relation] [Person2]" line.
type Command struct {
	Subject  string // Person1
	Relation string // relation code, e.g. "P"
	Object   string // Person2
}

func (c Command) String() string {
	return c.Subject + " " + c.Relation + " " + c.Object
}

// Parse splits line on whitespace. Anything other than three tokens is ErrInvalidCommand.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Command{}, fmt.Errorf("%w: want 3 tokens, got %d", ErrInvalidCommand, len(parts))
	}
	return Command{Subject: parts[0], Relation: parts[1], Object: parts[2]}, nil
}

// UserMessage turns an interpreter error into the line shown at the prompt.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		return "Invalid command. Please try again."
	case errors.Is(err, ErrInvalidRelation):
		return "Invalid relation type. Please use P, C, S, or PS."
	default:
		return err.Error()
	}
}
