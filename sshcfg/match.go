package sshcfg

import "slices"

// node is one vertex of the concrete parse tree. A node spans input bytes
// [start, end) and holds one child per sub-expression match. Nodes produced
// by anonymous composite expressions have an empty rule name; nodes produced
// through a rule reference carry that rule's name.
//
// The tree is transient: it exists only between matching and reduction.
type node struct {
	rule     string
	children []*node
	start    int
	end      int
}

// text returns the input text spanned by the node.
func (n *node) text(input string) string { return input[n.start:n.end] }

// matcher matches grammar expressions against input text with PEG
// semantics: ordered choice, greedy repetition, unlimited backtracking by
// position reset. It records the farthest position at which any terminal
// failed, along with the names of the terminals expected there, for error
// reporting.
type matcher struct {
	input    string
	expected []string
	farthest int
}

// match attempts to match e at pos. On success it returns the resulting
// node and true; on failure it returns nil and false, leaving failure
// context in m.farthest and m.expected.
func (m *matcher) match(e *expr, pos int) (*node, bool) {
	switch e.kind {
	case kindTerm:
		return m.matchTerm(e, pos)

	case kindRef:
		sub, ok := grammar[e.name]
		if !ok {
			// Unknown rule reference is a bug in the grammar table.
			panic("sshcfg: undefined grammar rule " + e.name)
		}

		n, ok := m.match(sub, pos)
		if !ok {
			return nil, false
		}

		// Name the node after the rule unless an inner reference already
		// claimed it (an ordered choice returns its alternative's node, and
		// the reducer needs the alternative's name, not the choice's).
		if n.rule == "" {
			n.rule = e.name
		}

		return n, true

	case kindSeq:
		children := make([]*node, 0, len(e.subs))
		next := pos

		for _, sub := range e.subs {
			n, ok := m.match(sub, next)
			if !ok {
				return nil, false
			}

			children = append(children, n)
			next = n.end
		}

		return &node{start: pos, end: next, children: children}, true

	case kindChoice:
		for _, sub := range e.subs {
			if n, ok := m.match(sub, pos); ok {
				return n, true
			}
		}

		return nil, false

	case kindRepeat:
		children := make([]*node, 0)
		next := pos

		for {
			n, ok := m.match(e.subs[0], next)
			if !ok {
				break
			}

			// Zero-width matches would loop forever.
			if n.end == next {
				break
			}

			children = append(children, n)
			next = n.end
		}

		if len(children) < e.min {
			return nil, false
		}

		return &node{start: pos, end: next, children: children}, true

	case kindOptional:
		if n, ok := m.match(e.subs[0], pos); ok {
			return &node{start: pos, end: n.end, children: []*node{n}}, true
		}

		return &node{start: pos, end: pos}, true

	default:
		panic("sshcfg: invalid grammar expression kind")
	}
}

// matchTerm matches a regular-expression terminal anchored at pos.
func (m *matcher) matchTerm(e *expr, pos int) (*node, bool) {
	loc := e.re.FindStringIndex(m.input[pos:])
	if loc == nil {
		m.fail(pos, e.name)

		return nil, false
	}

	return &node{start: pos, end: pos + loc[1]}, true
}

// fail records a terminal failure for error reporting. Only failures at the
// farthest position reached are kept: that position is where the parse
// actually went wrong, earlier failures are ordinary backtracking.
func (m *matcher) fail(pos int, expected string) {
	switch {
	case pos > m.farthest:
		m.farthest = pos
		m.expected = m.expected[:0]
		m.expected = append(m.expected, expected)

	case pos == m.farthest:
		if !slices.Contains(m.expected, expected) {
			m.expected = append(m.expected, expected)
		}
	}
}
