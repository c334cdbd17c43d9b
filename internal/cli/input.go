package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/round"
)

// LineInput reads one answer per line from the terminal. Lines are scanned
// on a background goroutine so a pending read can be abandoned when the
// context is cancelled.
type LineInput struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// Ensure LineInput implements round.Input
var _ round.Input = (*LineInput)(nil)

// NewLineInput creates a LineInput that prompts on out
func NewLineInput(in io.Reader, out io.Writer) *LineInput {
	return &LineInput{in: in, out: out, lines: make(chan lineResult)}
}

func (l *LineInput) scan() {
	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		l.lines <- lineResult{text: scanner.Text()}
	}
	err := model.ErrInputClosed
	if scanErr := scanner.Err(); scanErr != nil {
		err = fmt.Errorf("%w: %w", model.ErrInputClosed, scanErr)
	}
	l.lines <- lineResult{err: err}
	close(l.lines)
}

// ReadLine returns the next line without its newline. It returns
// model.ErrInputClosed once the input is exhausted, and ctx.Err() as soon
// as ctx is done even while a read is still blocked.
func (l *LineInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.once.Do(func() { go l.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-l.lines:
		if !ok {
			return "", model.ErrInputClosed
		}
		return r.text, r.err
	}
}

func (l *LineInput) ReadBet(ctx context.Context, view round.BetView) (string, error) {
	fmt.Fprintln(l.out, "\n---")
	fmt.Fprintf(l.out, "You have $%d\n", view.Wealth)
	fmt.Fprintln(l.out, "Place your bet")
	return l.ReadLine(ctx)
}

func (l *LineInput) ReadAction(ctx context.Context, view round.TurnView) (string, error) {
	fmt.Fprintln(l.out, "\n---")
	fmt.Fprintln(l.out, "What do you want to do?")
	fmt.Fprintln(l.out, "1. Hit")
	fmt.Fprintln(l.out, "2. Stand")
	fmt.Fprintln(l.out, "3. Double down")
	return l.ReadLine(ctx)
}
