// Package output provides output formatting for otpowner.
package output

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/yndnr/otpowner/internal/core/domain"
)

// Kind classifies an interactive message for coloring.
type Kind int

const (
	KindPlain Kind = iota
	KindPrompt
	KindInfo
	KindSuccess
	KindError
)

// Palette decorates text by kind.
type Palette func(kind Kind, text string) string

// Plain is the no-op palette.
func Plain(_ Kind, text string) string {
	return text
}

// NewColorPalette returns a palette that always emits ANSI colors.
func NewColorPalette() Palette {
	styles := map[Kind]*color.Color{
		KindPrompt:  color.New(color.FgCyan, color.Bold),
		KindInfo:    color.New(color.FgYellow),
		KindSuccess: color.New(color.FgGreen),
		KindError:   color.New(color.FgRed),
	}
	for _, c := range styles {
		c.EnableColor()
	}

	return func(kind Kind, text string) string {
		c, ok := styles[kind]
		if !ok || text == "" {
			return text
		}
		return c.Sprint(text)
	}
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidColorMode reports whether mode is auto, always or never.
func ValidColorMode(mode string) bool {
	switch strings.ToLower(mode) {
	case "", ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// PaletteFor picks a palette for mode. In auto mode colors are used only
// when f is a terminal and NO_COLOR is unset.
func PaletteFor(mode string, f *os.File) (Palette, error) {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return NewColorPalette(), nil
	case ColorNever:
		return Plain, nil
	case "", ColorAuto:
		if f == nil || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(f.Fd())) {
			return Plain, nil
		}
		return NewColorPalette(), nil
	}
	return nil, domain.ErrInvalidArgument.WithDetails("unknown color mode " + mode)
}
