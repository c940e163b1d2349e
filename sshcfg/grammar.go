package sshcfg

import "regexp"

// exprKind discriminates the variants of a grammar expression.
type exprKind int

const (
	kindTerm     exprKind = iota // regular-expression terminal
	kindSeq                      // sequence of sub-expressions
	kindChoice                   // ordered choice (first match wins)
	kindRepeat                   // sub-expression repeated min or more times
	kindOptional                 // sub-expression matched zero or one time
	kindRef                      // reference to a named rule
)

// expr is one grammar expression. Exactly the fields relevant to its kind
// are set.
type expr struct {
	re   *regexp.Regexp // kindTerm
	name string         // kindRef: rule name; kindTerm: display name
	subs []*expr        // composite sub-expressions
	kind exprKind
	min  int // kindRepeat: minimum iterations
}

func term(name, pattern string) *expr {
	return &expr{
		kind: kindTerm,
		name: name,
		re:   regexp.MustCompile(`^(?:` + pattern + `)`),
	}
}

func seq(subs ...*expr) *expr { return &expr{kind: kindSeq, subs: subs} }

func choice(subs ...*expr) *expr { return &expr{kind: kindChoice, subs: subs} }

func rep0(sub *expr) *expr {
	return &expr{kind: kindRepeat, min: 0, subs: []*expr{sub}}
}

func rep1(sub *expr) *expr {
	return &expr{kind: kindRepeat, min: 1, subs: []*expr{sub}}
}

func opt(sub *expr) *expr {
	return &expr{kind: kindOptional, subs: []*expr{sub}}
}

func ref(name string) *expr { return &expr{kind: kindRef, name: name} }

// Rule names of the grammar. The reducer switches on these, so they are
// named constants rather than bare strings.
const (
	ruleDocument       = "document"
	ruleBlock          = "block"
	ruleHeader         = "header"
	ruleLine           = "line"
	ruleTypedLine      = "typed_line"
	ruleGenericLine    = "generic_line"
	ruleTrailer        = "trailer"
	ruleTypedTrailer   = "typed_trailer"
	ruleGenericTrailer = "generic_trailer"
	ruleKey            = "key"
	ruleHostname       = "hostname"
	ruleTextValue      = "text_value"
	ruleIntValue       = "integer_value"
	ruleSingleWS       = "single_ws"
	ruleDoubleWS       = "double_ws"
	ruleNewline        = "newline"
	ruleEOF            = "eof"
)

// grammar is the declarative rule table describing `vagrant ssh-config`
// output. It is pure data; the matching engine in match.go interprets it.
//
// Informally:
//
//	document        = block+
//	block           = newline* header line* trailer?
//	header          = key single_ws hostname newline
//	line            = typed_line / generic_line
//	typed_line      = double_ws key single_ws integer_value newline
//	generic_line    = double_ws key single_ws text_value    newline
//	trailer         = typed_trailer / generic_trailer
//	typed_trailer   = double_ws key single_ws integer_value eof
//	generic_trailer = double_ws key single_ws text_value
//
// Only the header line is unindented. The trailer rule matches the last
// line of the last block when it has no trailing newline; it never matches
// otherwise because every interior line is consumed (newline included) by
// the line rule. Ordered choice tries the typed alternative before the
// generic one, so a value of 1-5 digits is always numeric regardless of its
// key. The trailer mirrors the same choice, with end-of-input standing in
// for the newline, so a final line parses to the same value with or without
// its terminator.
//
//nolint:gochecknoglobals
var grammar = map[string]*expr{
	ruleDocument: rep1(ref(ruleBlock)),
	ruleBlock: seq(
		rep0(ref(ruleNewline)),
		ref(ruleHeader),
		rep0(ref(ruleLine)),
		opt(ref(ruleTrailer)),
	),
	ruleHeader: seq(
		ref(ruleKey),
		ref(ruleSingleWS),
		ref(ruleHostname),
		ref(ruleNewline),
	),
	ruleLine: choice(ref(ruleTypedLine), ref(ruleGenericLine)),
	ruleTypedLine: seq(
		ref(ruleDoubleWS),
		ref(ruleKey),
		ref(ruleSingleWS),
		ref(ruleIntValue),
		ref(ruleNewline),
	),
	ruleGenericLine: seq(
		ref(ruleDoubleWS),
		ref(ruleKey),
		ref(ruleSingleWS),
		ref(ruleTextValue),
		ref(ruleNewline),
	),
	ruleTrailer: choice(ref(ruleTypedTrailer), ref(ruleGenericTrailer)),
	ruleTypedTrailer: seq(
		ref(ruleDoubleWS),
		ref(ruleKey),
		ref(ruleSingleWS),
		ref(ruleIntValue),
		ref(ruleEOF),
	),
	ruleGenericTrailer: seq(
		ref(ruleDoubleWS),
		ref(ruleKey),
		ref(ruleSingleWS),
		ref(ruleTextValue),
	),

	ruleKey:      term("key", `[A-Za-z]+`),
	ruleHostname: term("hostname", `[A-Za-z0-9-]+`),
	// Values are arbitrary and can be paths, ints, etc.
	// `.` excludes newline, so a value is the rest of its line.
	ruleTextValue: term("value", `.+`),
	ruleIntValue:  term("integer", `[0-9]{1,5}`),
	ruleSingleWS:  term("whitespace", `\s`),
	ruleDoubleWS:  term("indent", `\s\s`),
	ruleNewline:   term("newline", `\n`),
	ruleEOF:       term("end of input", `\z`),
}
