package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gyaneshwarpardhi/familytree/internal/command"
	"github.com/gyaneshwarpardhi/familytree/internal/family"
	"github.com/gyaneshwarpardhi/familytree/internal/metrics"
)

// Session keywords, matched case-insensitively.
const (
	KeywordExit  = "EXIT"
	KeywordPrint = "PRINT"
	KeywordClear = "CLEAR"
)

var bannerLines = []string{
	"Enter commands to build the family tree, or type 'PRINT' to display the tree.",
	"Type 'EXIT' to quit the program.",
	"Command format: [Person1] [Relation] [Person2] (for relation use P (parent), C (child), S (sibling), PS (parent sibling)",
}

// Session is one interactive run: it reads lines, feeds commands to the interpreter
// and answers PRINT, CLEAR and EXIT.
type Session struct {
	id          string
	in          LineReader
	out         io.Writer
	interp      *command.Interpreter
	settings    atomic.Pointer[Settings]
	interactive bool
	logger      *slog.Logger

	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
}

// New creates a Session reading from in and writing to out.
func New(in LineReader, out io.Writer, interp *command.Interpreter, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		in:     in,
		out:    out,
		interp: interp,
		logger: slog.Default(),
	}
	s.settings.Store(DefaultSettings())
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)

	r := lipgloss.NewRenderer(out)
	s.titleStyle = r.NewStyle().Bold(true)
	s.errorStyle = r.NewStyle().Foreground(lipgloss.Color("9"))
	return s
}

// ID returns the session id attached to every log line.
func (s *Session) ID() string {
	return s.id
}

// SwapSettings replaces the display settings; the next command sees the new values.
func (s *Session) SwapSettings(settings *Settings) {
	s.settings.Store(settings)
	s.logger.Info("display settings swapped", "indent", settings.Indent)
}

// Run writes the banner and processes lines until EXIT, end of input, or ctx is done.
// EXIT and end of input return nil.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	if err := s.banner(); err != nil {
		return err
	}

	for {
		if s.interactive {
			if _, err := io.WriteString(s.out, s.settings.Load().Prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}
		line, err := s.in.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.Info("session ended", "reason", "eof")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		done, err := s.Handle(line)
		if err != nil {
			return err
		}
		if done {
			s.logger.Info("session ended", "reason", "exit")
			return nil
		}
	}
}

// Handle processes one input line. done reports whether the line was EXIT.
// The returned error is an output failure; bad commands are answered, not returned.
func (s *Session) Handle(line string) (done bool, err error) {
	switch keyword := strings.TrimSpace(line); {
	case strings.EqualFold(keyword, KeywordExit):
		return true, nil
	case strings.EqualFold(keyword, KeywordPrint):
		return false, s.print()
	case strings.EqualFold(keyword, KeywordClear):
		s.interp.Tree().Clear()
		metrics.TreesCleared.Inc()
		metrics.PersonsRegistered.Set(0)
		return false, s.writeLine("Family tree cleared.")
	}

	msg, perr := s.interp.Process(line)
	if perr != nil {
		return false, s.writeLine(s.errorStyle.Render(command.UserMessage(perr)))
	}
	return false, s.writeLine(msg)
}

func (s *Session) print() error {
	start := time.Now()
	tree := s.interp.Tree()
	root, ok := tree.OldestWithMostDescendants()
	if !ok {
		s.logger.Debug("print skipped: no root")
		return nil
	}

	settings := s.settings.Load()
	if err := s.writeLine("Family Tree:"); err != nil {
		return err
	}
	pr := &family.Printer{Tree: tree, Indent: settings.Indent, Compare: settings.Compare}
	if err := pr.PrintFrom(s.out, root); err != nil {
		return err
	}

	metrics.TreesPrinted.Inc()
	metrics.PrintDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
	s.logger.Debug("tree printed", "root", tree.Person(root).Name, "persons", tree.Len())
	return nil
}

func (s *Session) banner() error {
	if err := s.writeLine(s.titleStyle.Render("Family Tree Application")); err != nil {
		return err
	}
	for _, l := range bannerLines {
		if err := s.writeLine(l); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) writeLine(line string) error {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
