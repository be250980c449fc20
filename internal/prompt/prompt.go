// Package prompt runs the interactive numeral conversion loop.
//
// Each iteration asks for a numeral, validates it and, on success, asks how to
// print it: "r" prints the canonical numeral, "d" the decimal value, anything
// else prints both. Rejected input is reported on the error writer and the
// loop asks again. A line that is exactly "q" or "Q", end of input or a
// cancelled context ends the loop.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/deromanizer/internal/messages"
	"github.com/dmitrymomot/deromanizer/pkg/i18n"
	"github.com/dmitrymomot/deromanizer/pkg/logger"
	"github.com/dmitrymomot/deromanizer/pkg/roman"
	"github.com/dmitrymomot/deromanizer/pkg/sanitizer"
)

const defaultMaxLine = 64 * 1024

// Prompt holds the loop settings. It is safe to Run more than once, but not
// concurrently on the same writers.
type Prompt struct {
	translator *i18n.Translator
	lang       string
	quiet      bool
	maxLine    int
	logger     *slog.Logger
}

// New creates a Prompt rendering its text through t.
func New(t *i18n.Translator, opts ...Option) (*Prompt, error) {
	if t == nil {
		return nil, ErrNilTranslator
	}

	p := &Prompt{
		translator: t,
		lang:       t.DefaultLanguage(),
		maxLine:    defaultMaxLine,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("prompt"))

	return p, nil
}

// Run reads lines from in until the user quits, in is exhausted or ctx is
// done. Quitting and end of input return nil; cancellation returns ctx.Err().
func (p *Prompt) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	// Stops the reader goroutine on every return path, including quit.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := p.readLines(ctx, in)

	// One value is kept across iterations; a rejected line leaves it as it was.
	var number roman.Numeral

	for {
		p.print(out, "prompt.enter")

		line, ok, err := next(ctx, lines)
		if err != nil || !ok {
			return err
		}
		if line == "q" || line == "Q" {
			p.logger.DebugContext(ctx, "quit requested")
			return nil
		}

		if err := number.Set(line); err != nil {
			p.reject(ctx, errOut, line, err)
			continue
		}
		p.logger.DebugContext(ctx, "numeral accepted", logger.Numeral(number.Roman(), number.Decimal()))

		if p.quiet {
			fmt.Fprintf(out, "%s\t%d\n", number.Roman(), number.Decimal())
			continue
		}

		p.print(out, "prompt.choice")
		option, _, err := next(ctx, lines)
		if err != nil {
			return err
		}
		p.show(out, &number, sanitizer.FirstRune(option))
	}
}

func (p *Prompt) reject(ctx context.Context, errOut io.Writer, line string, err error) {
	attrs := []any{logger.Input(line), logger.Error(err)}
	if verr, ok := roman.AsValidationError(err); ok {
		attrs = append(attrs, logger.Code(verr.Code()))
	}
	p.logger.DebugContext(ctx, "numeral rejected", attrs...)

	msg := messages.RomanError(p.translator, p.lang, err)
	fmt.Fprintln(errOut, p.translator.T(p.lang, "prompt.invalid", "message", msg))
}

func (p *Prompt) show(out io.Writer, number *roman.Numeral, choice rune) {
	switch choice {
	case 'r':
		fmt.Fprintln(out, number.Roman())
	case 'd':
		fmt.Fprintln(out, number.Decimal())
	default:
		fmt.Fprintln(out, p.translator.T(p.lang, "prompt.entered", "roman", number.Roman()))
		fmt.Fprintln(out, p.translator.T(p.lang, "prompt.converted", "decimal", strconv.Itoa(number.Decimal())))
	}
}

func (p *Prompt) print(out io.Writer, key string) {
	if p.quiet {
		return
	}
	fmt.Fprint(out, p.translator.T(p.lang, key))
}

type lineResult struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The goroutine exits at end of input or once ctx is done; a
// Read already blocked on in finishes first. The channel is closed on exit.
func (p *Prompt) readLines(ctx context.Context, in io.Reader) <-chan lineResult {
	lines := make(chan lineResult)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, min(4096, p.maxLine)), p.maxLine)
		for scanner.Scan() {
			select {
			case lines <- lineResult{text: strings.TrimSuffix(scanner.Text(), "\r")}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- lineResult{err: errors.Join(ErrRead, err)}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

// next returns the next line; ok is false at end of input.
func next(ctx context.Context, lines <-chan lineResult) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res, ok := <-lines:
		if !ok {
			return "", false, nil
		}
		if res.err != nil {
			return "", false, res.err
		}
		return res.text, true, nil
	}
}
