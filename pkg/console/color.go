package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

// Color is one of the 16 standard console colors.
type Color uint8

// The values are the ANSI palette indexes.
const (
	Black       Color = 0
	DarkRed     Color = 1
	DarkGreen   Color = 2
	DarkYellow  Color = 3
	DarkBlue    Color = 4
	DarkMagenta Color = 5
	DarkCyan    Color = 6
	Gray        Color = 7
	DarkGray    Color = 8
	Red         Color = 9
	Green       Color = 10
	Yellow      Color = 11
	Blue        Color = 12
	Magenta     Color = 13
	Cyan        Color = 14
	White       Color = 15
)

var colorNames = [...]string{
	"black", "dark-red", "dark-green", "dark-yellow",
	"dark-blue", "dark-magenta", "dark-cyan", "gray",
	"dark-gray", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

func (c Color) terminal() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

// ParseColor resolves a color name. Case, spaces and underscores are
// ignored, so "DarkRed", "dark_red" and "dark-red" are equal.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	for i, cn := range colorNames {
		if strings.ReplaceAll(cn, "-", "") == n {
			return Color(i), nil
		}
	}
	if n == "grey" {
		return Gray, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Color writes text in the given colors. Empty text writes nothing.
func (c *Console) Color(text string, fg, bg Color) error {
	if text == "" {
		return nil
	}

	style := c.renderer.NewStyle().
		Foreground(fg.terminal()).
		Background(bg.terminal())

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.out, style.Render(text)); err != nil {
		return fault.Wrap(fault.ErrIO, errors.Join(ErrWrite, err))
	}
	return nil
}

// Colorln is Color followed by a newline in the default colors.
func (c *Console) Colorln(text string, fg, bg Color) error {
	if err := c.Color(text, fg, bg); err != nil {
		return err
	}
	return c.Printf("\n")
}
