// Package sshcfg parses the output of `vagrant ssh-config` into an ordered
// sequence of host records.
//
// The input format is OpenSSH client-config style: each host is a block with
// an unindented "Host <name>" header line followed by two-space-indented
// "Key Value" lines, blocks separated by blank lines. The final line of the
// final block may lack a trailing newline.
//
// The format is described by a declarative grammar (a table of named rules
// over sequences, ordered choices, repetitions, and regular-expression
// terminals) and matched by a small PEG engine that produces a concrete
// parse tree. A depth-first reducer folds each block subtree into a
// [Record]: an insertion-ordered mapping from field name to a tagged
// [Value]. A value whose text is entirely 1-5 decimal digits is typed as a
// number; every other value is the literal trailing text of its line.
//
// Parsing is all-or-nothing: input that does not fully match the grammar
// yields a [*ParseError] carrying the offset, line, column, and expected
// tokens of the farthest failure. There is no partial result.
//
//	doc, err := sshcfg.Parse(ctx, text)
//	if err != nil { ... }
//	for _, rec := range doc {
//	    fmt.Println(rec.Host())
//	}
package sshcfg
