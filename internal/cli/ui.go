package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/planargrid/pkg/errors"
	"github.com/matzehuels/planargrid/pkg/planar"
)

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")  // light blue
	colorValue  = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleValue   = lipgloss.NewStyle().Foreground(colorValue)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarn)
	styleLabel   = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleFresh   = lipgloss.NewStyle().Foreground(colorLabel)
	styleCached  = lipgloss.NewStyle().Foreground(colorOK)
)

// Cache states shown next to results.
const (
	stateFresh  = "fresh"
	stateCached = "cached"
)

// statusIcon pairs a glyph with its colour.
type statusIcon struct {
	glyph string
	style lipgloss.Style
}

var (
	iconOK   = statusIcon{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	iconFail = statusIcon{"✗", lipgloss.NewStyle().Foreground(colorFail)}
	iconWarn = statusIcon{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	iconNote = statusIcon{"›", lipgloss.NewStyle().Foreground(colorLabel)}
)

func (i statusIcon) line(msg string) string {
	return i.style.Render(i.glyph) + " " + msg
}

func printSuccess(format string, args ...any) {
	fmt.Println(iconOK.line(fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Println(iconWarn.line(styleWarning.Render(fmt.Sprintf(format, args...))))
}

func printInfo(format string, args ...any) {
	fmt.Println(iconNote.line(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact path.
func printFile(path string) {
	fmt.Println("  " + styleMuted.Render("→") + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + styleValue.Render(value))
}

// formatStats renders v, e, c and f on one line followed by the cache state.
func formatStats(st planar.Stats, cached bool) string {
	state := styleFresh.Render(stateFresh)
	if cached {
		state = styleCached.Render(stateCached)
	}
	sep := styleMuted.Render(" · ")
	parts := []string{
		styleMuted.Render(fmt.Sprintf("%d vertices", st.V)),
		styleMuted.Render(fmt.Sprintf("%d edges", st.E)),
		styleMuted.Render(fmt.Sprintf("%d components", st.C)),
		styleMuted.Render(fmt.Sprintf("%d faces", st.F)),
		state,
	}
	return "  " + strings.Join(parts, sep)
}

func printStats(st planar.Stats, cached bool) {
	fmt.Println(formatStats(st, cached))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(styleMuted.Render(description+":") + " " + styleCommand.Render(cmd))
}

// PrintError writes err to w in the CLI's error style. Coded errors show
// their message followed by the code.
func PrintError(w io.Writer, err error) {
	msg := err.Error()
	if code := errors.GetCode(err); code != "" {
		msg = errors.UserMessage(err) + " " + styleMuted.Render("("+string(code)+")")
	}
	fmt.Fprintln(w, iconFail.line(msg))
}
