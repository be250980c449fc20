package prompt_test

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deromanizer/internal/messages"
	"github.com/dmitrymomot/deromanizer/internal/prompt"
	"github.com/dmitrymomot/deromanizer/pkg/i18n"
)

const (
	enter  = "Please enter a Roman numeral (or 'q' to quit): "
	choice = "Print as (r)oman or (d)ecimal? (any other input prints both): "
)

func newPrompt(t *testing.T, opts ...prompt.Option) *prompt.Prompt {
	t.Helper()
	tr, err := messages.NewTranslator(context.Background())
	require.NoError(t, err)
	p, err := prompt.New(tr, opts...)
	require.NoError(t, err)
	return p
}

func run(t *testing.T, p *prompt.Prompt, input string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	require.NoError(t, p.Run(context.Background(), strings.NewReader(input), &out, &errOut))
	return out.String(), errOut.String()
}

func TestNewRequiresTranslator(t *testing.T) {
	_, err := prompt.New(nil)
	assert.ErrorIs(t, err, prompt.ErrNilTranslator)
}

func TestRunChoices(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOut string
	}{
		{
			name:    "roman",
			input:   "xiv\nr\nq\n",
			wantOut: enter + choice + "XIV\n" + enter,
		},
		{
			name:    "decimal is case-insensitive",
			input:   "  mCmXc  \nDecimal\nQ\n",
			wantOut: enter + choice + "1990\n" + enter,
		},
		{
			name:  "anything else prints both",
			input: "MMMCMXCIX\nx\nq\n",
			wantOut: enter + choice +
				"You entered: MMMCMXCIX\nConverted to decimal: 3999\n" + enter,
		},
		{
			name:  "empty choice prints both",
			input: "iv\n\nq\n",
			wantOut: enter + choice +
				"You entered: IV\nConverted to decimal: 4\n" + enter,
		},
		{
			name:  "end of input at choice prints both",
			input: "ix\n",
			wantOut: enter + choice +
				"You entered: IX\nConverted to decimal: 9\n" + enter,
		},
		{
			name:    "end of input quits",
			input:   "",
			wantOut: enter,
		},
		{
			name:    "crlf line endings",
			input:   "x\r\nd\r\nq\r\n",
			wantOut: enter + choice + "10\n" + enter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := run(t, newPrompt(t), tt.input)
			assert.Equal(t, tt.wantOut, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	out, errOut := run(t, newPrompt(t), "IIII\nIL\nXAV\n   \nq\n")

	assert.Equal(t, strings.Repeat(enter, 5), out)
	assert.Equal(t,
		"Invalid input: Too many repeated characters in sequence.\n"+
			"Invalid input: Invalid subtractive pair: 'IL'.\n"+
			"Invalid input: Invalid character: 'A'. Valid: I V X L C D M.\n"+
			"Invalid input: Empty input; please enter a Roman numeral.\n",
		errOut)
}

func TestRunQuitIsExact(t *testing.T) {
	// " q" is not a quit command; after normalization it is an invalid symbol.
	out, errOut := run(t, newPrompt(t), " q\nq\n")
	assert.Equal(t, enter+enter, out)
	assert.Equal(t, "Invalid input: Invalid character: 'Q'. Valid: I V X L C D M.\n", errOut)
}

func TestRunQuiet(t *testing.T) {
	out, errOut := run(t, newPrompt(t, prompt.WithQuiet(true)), "xiv\nbad\nMCMXC\n")
	assert.Equal(t, "XIV\t14\nMCMXC\t1990\n", out)
	assert.Equal(t, "Invalid input: Invalid character: 'B'. Valid: I V X L C D M.\n", errOut)
}

func TestRunLanguage(t *testing.T) {
	out, errOut := run(t, newPrompt(t, prompt.WithLanguage("es")), "IL\nq\n")
	assert.Equal(t, strings.Repeat("Introduzca un número romano (o 'q' para salir): ", 2), out)
	assert.Equal(t, "Entrada no válida: par sustractivo no válido 'IL'\n", errOut)
}

func TestRunLineTooLong(t *testing.T) {
	p := newPrompt(t, prompt.WithQuiet(true), prompt.WithMaxLineSize(16))

	var out, errOut bytes.Buffer
	err := p.Run(context.Background(), strings.NewReader(strings.Repeat("I", 64)+"\n"), &out, &errOut)
	assert.ErrorIs(t, err, prompt.ErrRead)
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	p := newPrompt(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx, pr, io.Discard, io.Discard)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("prompt did not stop after cancellation")
	}
}

func TestWithLanguageIgnoresEmpty(t *testing.T) {
	tr, err := messages.NewTranslator(context.Background(), i18n.WithDefaultLanguage("es"))
	require.NoError(t, err)
	p, err := prompt.New(tr, prompt.WithLanguage(""))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, p.Run(context.Background(), strings.NewReader("q\n"), &out, io.Discard))
	assert.True(t, strings.HasPrefix(out.String(), "Introduzca"))
}

// lineReader hands out one line per Read and counts the calls.
type lineReader struct {
	lines []string
	reads atomic.Int32
}

func (r *lineReader) Read(b []byte) (int, error) {
	n := int(r.reads.Add(1)) - 1
	if n >= len(r.lines) {
		return 0, io.EOF
	}
	return copy(b, r.lines[n]), nil
}

func TestRunQuitStopsReading(t *testing.T) {
	lines := []string{"q\n"}
	for range 100 {
		lines = append(lines, "XIV\n")
	}
	in := &lineReader{lines: lines}

	var out, errOut bytes.Buffer
	require.NoError(t, newPrompt(t, prompt.WithQuiet(true)).Run(context.Background(), in, &out, &errOut))

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())

	// The reader may look one line ahead before it sees the quit, never more.
	time.Sleep(20 * time.Millisecond)
	reads := in.reads.Load()
	assert.LessOrEqual(t, reads, int32(2))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, reads, in.reads.Load())
}

func TestRunReleasesReaderGoroutine(t *testing.T) {
	p := newPrompt(t)
	before := runtime.NumGoroutine()

	for range 50 {
		var out bytes.Buffer
		require.NoError(t, p.Run(context.Background(), strings.NewReader("q\nXIV\nr\n"), &out, io.Discard))
		assert.Equal(t, enter, out.String())
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond)
}
