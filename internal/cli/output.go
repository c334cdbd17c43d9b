package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sanity-io/litter"
)

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatDebug = "debug"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch o.format {
	case FormatJSON:
		o.printJSON(data)
	case FormatDebug:
		fmt.Fprintln(o.w, litter.Sdump(data))
	default:
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == FormatJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Ledger:
		o.printLedger(v)
	case AutoplayResult:
		o.printAutoplayResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Ledger is the printable form of a saved ledger
type Ledger struct {
	Name    string `json:"name"`
	Wealth  uint16 `json:"wealth"`
	Storage string `json:"storage"`
	Slot    string `json:"slot,omitempty"`
}

// AutoplayResult is the printable outcome of an autoplay run
type AutoplayResult struct {
	Strategy string `json:"strategy"`
	Rounds   int    `json:"rounds"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Pushes   int    `json:"pushes"`
	Ledger   Ledger `json:"ledger"`
}

func (o *Output) printLedger(l Ledger) {
	fmt.Fprintf(o.w, "Player: %s\n", l.Name)
	fmt.Fprintf(o.w, "Wealth: $%d\n", l.Wealth)
	if l.Slot != "" {
		fmt.Fprintf(o.w, "Storage: %s (slot %s)\n", l.Storage, l.Slot)
	} else {
		fmt.Fprintf(o.w, "Storage: %s\n", l.Storage)
	}
}

func (o *Output) printAutoplayResult(r AutoplayResult) {
	fmt.Fprintf(o.w, "Strategy: %s\n", r.Strategy)
	fmt.Fprintf(o.w, "Rounds: %d (won %d, lost %d, drew %d)\n", r.Rounds, r.Wins, r.Losses, r.Pushes)
	o.printLedger(r.Ledger)
}
