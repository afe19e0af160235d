package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [symbol]",
	Short: "Show one symbol from the slim dataset",
	Long: `Print the slim entry for a symbol, as a hover tooltip would show it.
Reads the dataset named by --output (or output.path in the config file).`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

// lookupJSON prints the raw entry instead of the formatted view.
var lookupJSON bool

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print the entry as compact JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if slimService == nil {
		return errors.New("slim service not configured")
	}

	symbol := args[0]
	settings := effectiveSettings(cmd)

	entry, err := slimService.Lookup(commandContext(cmd), settings.OutputPath, symbol)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", symbol, err)
	}

	out := cmd.OutOrStdout()

	if lookupJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode entry: %w", err)
		}
		return nil
	}

	fmt.Fprintln(out, symbol)
	description := entry.Description
	if width := terminalWidth(out); width > 0 {
		description = wrapText(description, width-2)
	}
	for _, line := range strings.Split(description, "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintf(out, "\n  Params: %s\n", string(entry.Params))
	fmt.Fprintf(out, "  Return: %s\n", string(entry.Return))
	return nil
}

// terminalWidth returns the column count of w, or 0 if w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// wrapText breaks text into lines of at most width columns at spaces.
// Words longer than width get a line of their own.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))
		switch {
		case lineLen == 0:
		case lineLen+1+wordLen > width:
			b.WriteByte('\n')
			lineLen = 0
		default:
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += wordLen
	}
	return b.String()
}
