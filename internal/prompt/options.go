package prompt

import "log/slog"

// Option configures a Prompt.
type Option func(*Prompt)

// WithLanguage sets the catalog language for prompts and error messages.
func WithLanguage(lang string) Option {
	return func(p *Prompt) {
		if lang != "" {
			p.lang = lang
		}
	}
}

// WithQuiet switches to pipeline output: no prompts, no choice question,
// one "ROMAN<TAB>DECIMAL" line per accepted input.
func WithQuiet(quiet bool) Option {
	return func(p *Prompt) {
		p.quiet = quiet
	}
}

// WithLogger sets the logger used for debug traces of each line. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prompt) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxLineSize bounds a single input line in bytes.
func WithMaxLineSize(n int) Option {
	return func(p *Prompt) {
		if n > 0 {
			p.maxLine = n
		}
	}
}
