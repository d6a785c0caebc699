package display

import (
	"io"
	"os"
	"strings"
)

type Color string

const (
	Reset Color = "\033[0m"
	Bold  Color = "\033[1m"
	Dim   Color = "\033[2m"

	Red    Color = "\033[31m"
	Green  Color = "\033[32m"
	Yellow Color = "\033[33m"
	Cyan   Color = "\033[36m"

	BrightBlack Color = "\033[90m"
)

type Style struct {
	color Color
	bold  bool
	dim   bool
}

var (
	SuccessStyle = Style{color: Green, bold: true}
	WarningStyle = Style{color: Yellow, bold: true}
	ErrorStyle   = Style{color: Red, bold: true}
	InfoStyle    = Style{color: Cyan}
	HintStyle    = Style{color: BrightBlack, dim: true}
	HashStyle    = Style{color: Yellow}
)

type Formatter struct {
	writer       io.Writer
	colorEnabled bool
}

func NewFormatter(w io.Writer) *Formatter {
	if w == nil {
		w = os.Stdout
	}
	return &Formatter{
		writer:       w,
		colorEnabled: isTerminalColorSupported(w),
	}
}

func NewFormatterWithColor(w io.Writer, colorEnabled bool) *Formatter {
	if w == nil {
		w = os.Stdout
	}
	return &Formatter{
		writer:       w,
		colorEnabled: colorEnabled,
	}
}

func (f *Formatter) SetColorEnabled(enabled bool) { f.colorEnabled = enabled }
func (f *Formatter) IsColorEnabled() bool         { return f.colorEnabled }

func (f *Formatter) Apply(style Style, text string) string {
	if !f.colorEnabled {
		return text
	}

	var codes []string

	if style.bold {
		codes = append(codes, string(Bold))
	}
	if style.dim {
		codes = append(codes, string(Dim))
	}
	if style.color != "" {
		codes = append(codes, string(style.color))
	}

	if len(codes) == 0 {
		return text
	}

	return strings.Join(codes, "") + text + string(Reset)
}

func (f *Formatter) Success(message string) string { return f.Apply(SuccessStyle, message) }
func (f *Formatter) Warning(message string) string { return f.Apply(WarningStyle, message) }
func (f *Formatter) Error(message string) string   { return f.Apply(ErrorStyle, message) }
func (f *Formatter) Info(message string) string    { return f.Apply(InfoStyle, message) }
func (f *Formatter) Hint(message string) string    { return f.Apply(HintStyle, message) }
func (f *Formatter) Hash(digest string) string     { return f.Apply(HashStyle, digest) }

var defaultFormatter = NewFormatter(os.Stdout)

func Success(message string) string { return defaultFormatter.Success(message) }
func Warning(message string) string { return defaultFormatter.Warning(message) }
func Error(message string) string   { return defaultFormatter.Error(message) }
func Info(message string) string    { return defaultFormatter.Info(message) }
func Hint(message string) string    { return defaultFormatter.Hint(message) }
func Hash(digest string) string     { return defaultFormatter.Hash(digest) }

func SetColorEnabled(enabled bool) { defaultFormatter.SetColorEnabled(enabled) }
func IsColorEnabled() bool         { return defaultFormatter.IsColorEnabled() }

func isTerminalColorSupported(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		if f == os.Stdout || f == os.Stderr {
			term := os.Getenv("TERM")
			if term == "" || term == "dumb" {
				return false
			}

			if os.Getenv("NO_COLOR") != "" {
				return false
			}

			if os.Getenv("FORCE_COLOR") != "" {
				return true
			}

			return strings.Contains(term, "color") ||
				strings.Contains(term, "xterm") ||
				strings.Contains(term, "screen") ||
				strings.Contains(term, "tmux") ||
				term == "ansi"
		}
	}

	return false
}
