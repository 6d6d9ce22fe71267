package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/playfair/pkg/playfair"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleError for refusals and failures.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	styleGridHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleGridCell   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleGridKey    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Key Square
// =============================================================================

// renderGrid draws g as a bordered 5×5 table with row and column indices.
// Letters that came from the key rather than the alphabet fill are
// highlighted; keyLen is the number of such letters.
func renderGrid(g playfair.Grid, keyLen int) string {
	headers := make([]string, 0, playfair.Size+1)
	headers = append(headers, "")
	for col := 0; col < playfair.Size; col++ {
		headers = append(headers, strconv.Itoa(col))
	}

	rows := make([][]string, playfair.Size)
	for r, line := range g.Rows() {
		row := make([]string, 0, playfair.Size+1)
		row = append(row, strconv.Itoa(r))
		for i := 0; i < len(line); i++ {
			row = append(row, string(line[i]))
		}
		rows[r] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return styleGridHeader
			}
			if row*playfair.Size+col-1 < keyLen {
				return styleGridKey
			}
			return styleGridCell
		})

	return t.Render()
}

// keyLetters counts the distinct letters key contributes to its square.
func keyLetters(key string) int {
	seen := make(map[rune]bool)
	for _, r := range playfair.Normalize(key) {
		seen[r] = true
	}
	return len(seen)
}
