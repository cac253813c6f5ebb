package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dmitrymomot/ophite/pkg/convert"
	"github.com/dmitrymomot/ophite/pkg/fault"
	"github.com/dmitrymomot/ophite/pkg/logger"
)

// Console prompts on a writer and reads answers line by line from a reader.
// Methods are safe for concurrent use; each read consumes one whole line.
type Console struct {
	mu       sync.Mutex
	in       *bufio.Reader
	out      io.Writer
	log      *slog.Logger
	renderer *lipgloss.Renderer
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger used for rejected input. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

// WithColorProfile forces the color profile instead of detecting it from
// the output writer.
func WithColorProfile(p termenv.Profile) Option {
	return func(c *Console) {
		c.renderer.SetColorProfile(p)
	}
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		log:      logger.Discard(),
		renderer: lipgloss.NewRenderer(out),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Std returns a Console bound to os.Stdin and os.Stdout.
func Std(opts ...Option) *Console {
	return New(os.Stdin, os.Stdout, opts...)
}

// ReadString writes prompt (when not empty) and returns the next line without
// its line terminator.
func (c *Console) ReadString(prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLine(prompt)
}

// ReadInt reads one line and parses it as an int.
func (c *Console) ReadInt(prompt string) (int, error) {
	return Read[int](c, prompt)
}

// ReadFloat reads one line and parses it as a float64.
func (c *Console) ReadFloat(prompt string) (float64, error) {
	return Read[float64](c, prompt)
}

// ReadIntLoop prompts until a line parses as an int.
func (c *Console) ReadIntLoop(prompt string) (int, error) {
	return ReadLoop[int](c, prompt)
}

// ReadFloatLoop prompts until a line parses as a float64.
func (c *Console) ReadFloatLoop(prompt string) (float64, error) {
	return ReadLoop[float64](c, prompt)
}

// Read reads one line and parses it as T. Parse failures are the
// convert package errors.
func Read[T convert.Number](c *Console, prompt string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, err := c.readLine(prompt)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert.Parse[T](line)
}

// ReadLoop prompts until a line parses as T. It fails only when the input
// ends or cannot be read.
func ReadLoop[T convert.Number](c *Console, prompt string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for attempt := 1; ; attempt++ {
		line, err := c.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := convert.Parse[T](line)
		if err == nil {
			return v, nil
		}
		c.log.Debug("rejected console input",
			logger.Input(line),
			logger.Attempt(attempt),
			logger.Kind(err),
			logger.Error(err),
		)
	}
}

// readLine expects c.mu to be held.
func (c *Console) readLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", fault.Wrap(fault.ErrIO, errors.Join(ErrWrite, err))
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fault.Wrap(fault.ErrIO, errors.Join(ErrRead, err))
		}
		// a final line without terminator is still a line
		if line == "" {
			return "", ErrEOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Printf writes formatted text to the console output.
func (c *Console) Printf(format string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		return fault.Wrap(fault.ErrIO, errors.Join(ErrWrite, err))
	}
	return nil
}
