package sshcfg

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ardnew/vinv/log"
)

// reducer folds a concrete parse tree into a Document, depth-first. Each
// node kind has a dedicated method; there is no name-based dispatch.
//
// coerce converts a digit-only value to an integer. It is a field so tests
// can exercise the defensive failure path; nil means strconv.Atoi.
type reducer struct {
	coerce func(string) (int, error)
	input  string
	logger log.Logger
}

// document reduces the root node into the ordered sequence of host records.
func (r *reducer) document(ctx context.Context, n *node) Document {
	doc := make(Document, 0, len(n.children))

	for _, block := range n.children {
		doc = append(doc, r.block(ctx, block))
	}

	return doc
}

// block reduces one block subtree into a Record. The block node's children
// are, in order: the blank-line repetition, the header, the body-line
// repetition, and the optional trailer.
func (r *reducer) block(ctx context.Context, n *node) *Record {
	rec := NewRecord()

	key, value := r.header(n.children[1])
	rec.Set(key, Text(value))

	for _, line := range n.children[2].children {
		r.line(ctx, rec, line)
	}

	if trailer := n.children[3]; len(trailer.children) == 1 {
		r.line(ctx, rec, trailer.children[0])
	}

	return rec
}

// header extracts the (key, hostname) pair from a header node, discarding
// the whitespace and newline children. Header children are:
// key, single_ws, hostname, newline.
func (r *reducer) header(n *node) (key, value string) {
	return n.children[0].text(r.input), n.children[2].text(r.input)
}

// bodyPair extracts the (key, value) pair from an indented line node,
// discarding whitespace and terminator children. Indented-line children
// are: double_ws, key, single_ws, value, and the line's terminator (a
// newline, end-of-input for the typed trailer, nothing for the generic
// trailer).
func (r *reducer) bodyPair(n *node) (key, value string) {
	return n.children[1].text(r.input), n.children[3].text(r.input)
}

// line reduces one body line (or the trailer) into a record field. The
// ordered choice in the grammar already resolved the node to its typed or
// generic alternative, so the node's rule name is the tag switched on here.
func (r *reducer) line(ctx context.Context, rec *Record, n *node) {
	key, value := r.bodyPair(n)

	switch n.rule {
	case ruleTypedLine, ruleTypedTrailer:
		number, err := r.atoi(value)
		if err != nil {
			// The grammar restricts the match to 1-5 digits, so conversion
			// cannot fail. If it somehow does, drop this one field and keep
			// the rest of the record rather than failing the document.
			r.logger.WarnContext(ctx, "dropping uncoercible numeric field",
				slog.String("key", key),
				slog.String("value", value),
				slog.Any("error", ErrCoerce.Wrap(err)),
			)

			return
		}

		rec.Set(key, Number(number))

	case ruleGenericLine, ruleGenericTrailer:
		rec.Set(key, Text(value))
	}
}

func (r *reducer) atoi(s string) (int, error) {
	if r.coerce != nil {
		return r.coerce(s)
	}

	return strconv.Atoi(s)
}
