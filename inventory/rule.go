package inventory

import (
	"log/slog"

	"github.com/ardnew/mung"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/vinv/sshcfg"
)

// Rule defines one user-supplied group: every host whose record satisfies
// the Match expression joins the group. Match is an expr-lang boolean
// expression evaluated with the host's fields as variables, e.g.
//
//	group: role=edge
//	match: Host matches "^edge-\\d+$"
//
// Numeric fields (Port) are integers in the expression environment, so
// comparisons like `Port >= 2200` work without conversion.
type Rule struct {
	Group string `json:"group" yaml:"group"`
	Match string `json:"match" yaml:"match"`
}

// compiledRule pairs a group name with its compiled match program.
type compiledRule struct {
	program *vm.Program
	group   string
}

// compileRules compiles all rule expressions up front so a bad expression
// fails the build before any host is evaluated.
func compileRules(rules []Rule) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, r := range rules {
		program, err := expr.Compile(r.Match,
			expr.AllowUndefinedVariables(),
			expr.AsBool(),
		)
		if err != nil {
			return nil, ErrRuleCompile.Wrap(err).With(
				slog.String("group", r.Group),
				slog.String("match", r.Match),
			)
		}

		compiled = append(compiled, compiledRule{
			group:   r.Group,
			program: program,
		})
	}

	return compiled, nil
}

// matches evaluates the rule against one host record.
func (c compiledRule) matches(rec *sshcfg.Record) (bool, error) {
	out, err := expr.Run(c.program, ruleEnv(rec))
	if err != nil {
		return false, ErrRuleEval.Wrap(err).With(
			slog.String("group", c.group),
			slog.String("host", rec.Host()),
		)
	}

	matched, ok := out.(bool)

	return ok && matched, nil
}

// ruleEnv builds the expression environment for one host. The well-known
// fields are always defined so expressions need not guard against missing
// variables, and string-munging helpers are exposed under "mung".
func ruleEnv(rec *sshcfg.Record) map[string]any {
	env := map[string]any{
		sshcfg.FieldHost:     "",
		sshcfg.FieldHostName: "",
		sshcfg.FieldPort:     0,

		"role": Role(rec.Host()),

		// List-valued string manipulation via mung.
		"mung": map[string]any{
			"prefix":   mungPrefix,
			"prefixif": mungPrefixIf,
		},
	}

	for key, value := range rec.Fields() {
		env[key] = value.Native()
	}

	return env
}

// ruleDelim separates items in list-valued rule helpers.
const ruleDelim = ","

func mungPrefix(subject string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(subject),
		mung.WithDelim(ruleDelim),
		mung.WithPrefixItems(prefix...),
	).String()
}

func mungPrefixIf(
	subject string,
	predicate func(string) bool,
	prefix ...string,
) string {
	return mung.Make(
		mung.WithSubjectItems(subject),
		mung.WithDelim(ruleDelim),
		mung.WithPrefixItems(prefix...),
		mung.WithFilter(predicate),
	).String()
}
