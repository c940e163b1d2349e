package sshcfg

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/vinv/log"
)

// options configures a parse call.
type options struct {
	logger log.Logger
	coerce func(string) (int, error)
}

// Option configures parsing behavior.
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging and
// coercion warnings. If not provided, the logger is zero-valued and all
// logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// ParseReader parses a document from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data), opts...)
}

// Parse parses `vagrant ssh-config` output into a [Document].
//
// Parse is a pure function of its input: it holds no shared state and is
// safe to call concurrently. The entire input must match the grammar; any
// nonconforming region fails the whole parse with a [*ParseError] wrapped
// in [ErrParse].
func Parse(ctx context.Context, text string, opts ...Option) (Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &matcher{input: text}

	root, ok := m.match(ref(ruleDocument), 0)
	if !ok || root.end != len(text) {
		perr := newParseError(text, m.farthest, m.expected)

		o.logger.DebugContext(ctx, "parse failed",
			slog.Int("offset", perr.Offset),
			slog.Int("line", perr.Line),
		)

		return nil, ErrParse.Wrap(perr)
	}

	r := &reducer{
		input:  text,
		logger: o.logger,
		coerce: o.coerce,
	}

	doc := r.document(ctx, root)

	o.logger.TraceContext(ctx, "parse complete",
		slog.Int("host_count", len(doc)))

	return doc, nil
}
