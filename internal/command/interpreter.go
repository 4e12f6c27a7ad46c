package command

import (
	"errors"
	"log/slog"

	"github.com/gyaneshwarpardhi/familytree/internal/family"
	"github.com/gyaneshwarpardhi/familytree/internal/metrics"
)

// Interpreter applies command lines to a family tree.
type Interpreter struct {
	tree     *family.Tree
	registry *Registry
	logger   *slog.Logger
}

// NewInterpreter creates an Interpreter over tree. A nil registry means DefaultRegistry,
// a nil logger means slog.Default().
func NewInterpreter(tree *family.Tree, reg *Registry, logger *slog.Logger) *Interpreter {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{tree: tree, registry: reg, logger: logger}
}

// Tree returns the tree the interpreter mutates.
func (in *Interpreter) Tree() *family.Tree {
	return in.tree
}

// Process interprets one "[Person1] [Relation] [Person2]" line and returns the
// confirmation to show the user.
//
// A malformed line changes nothing. An unknown relation code is reported only after both
// persons have been registered.
func (in *Interpreter) Process(line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		metrics.InvalidCommands.WithLabelValues("shape").Inc()
		in.logger.Debug("command rejected", "line", line, "err", err)
		return "", err
	}

	subject := in.tree.GetOrCreate(cmd.Subject)
	object := in.tree.GetOrCreate(cmd.Object)
	metrics.PersonsRegistered.Set(float64(in.tree.Len()))

	h, err := in.registry.Get(cmd.Relation)
	if err != nil {
		if errors.Is(err, ErrInvalidRelation) {
			metrics.InvalidCommands.WithLabelValues("relation").Inc()
		}
		metrics.CommandsProcessed.WithLabelValues("unknown", metrics.StatusRejected).Inc()
		in.logger.Debug("command rejected", "command", cmd.String(), "err", err)
		return "", err
	}

	h.Apply(in.tree, subject, object)
	metrics.CommandsProcessed.WithLabelValues(h.Code(), metrics.StatusApplied).Inc()
	in.logger.Debug("command applied", "command", cmd.String())
	return h.Describe(cmd.Subject, cmd.Object), nil
}
