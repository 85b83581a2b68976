package adapter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	m "synmut.dev/pkg/synmut/internal/model"
)

// Rule is one entry of the rule configuration, in ESLint's shape.
type Rule struct {
	ID       string
	Severity m.Severity
	Options  []any
}

// GlobalAccess is the ESLint access mode of a predefined global.
type GlobalAccess string

// Global access modes.
const (
	GlobalReadonly GlobalAccess = "readonly"
	GlobalWritable GlobalAccess = "writable"
)

// RuleSet is the fixed rule configuration handed to the engine for a run.
type RuleSet struct {
	EcmaVersion int
	SourceType  string
	Globals     map[string]GlobalAccess
	Rules       []Rule
}

// DefaultRuleSet returns the syntax and style rules every run uses.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		EcmaVersion: 2021,
		SourceType:  "module",
		Globals: map[string]GlobalAccess{
			"console":    GlobalReadonly,
			"process":    GlobalReadonly,
			"Buffer":     GlobalReadonly,
			"__dirname":  GlobalReadonly,
			"__filename": GlobalReadonly,
			"exports":    GlobalWritable,
			"global":     GlobalReadonly,
			"module":     GlobalWritable,
			"require":    GlobalReadonly,
		},
		Rules: []Rule{
			// syntax
			{ID: "no-undef", Severity: m.SeverityError},
			{ID: "no-unreachable", Severity: m.SeverityError},
			{ID: "no-unused-expressions", Severity: m.SeverityError},
			// style
			{ID: "semi", Severity: m.SeverityError, Options: []any{"always"}},
			{ID: "quotes", Severity: m.SeverityError, Options: []any{"double"}},
			{ID: "indent", Severity: m.SeverityError, Options: []any{2}},
			{ID: "brace-style", Severity: m.SeverityError, Options: []any{"1tbs", map[string]any{"allowSingleLine": true}}},
			{ID: "camelcase", Severity: m.SeverityError, Options: []any{map[string]any{"properties": "never"}}},
		},
	}
}

// Rule returns the configuration of the rule with the given id.
func (rs RuleSet) Rule(id string) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.ID == id {
			return r, true
		}
	}

	return Rule{}, false
}

// GlobalNames returns the predefined globals sorted by name.
func (rs RuleSet) GlobalNames() []string {
	names := make([]string, 0, len(rs.Globals))
	for name := range rs.Globals {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// StringOption returns the i-th option as a string, or def.
func (r Rule) StringOption(i int, def string) string {
	if i < len(r.Options) {
		if s, ok := r.Options[i].(string); ok {
			return s
		}
	}

	return def
}

// IntOption returns the i-th option as an int, or def.
func (r Rule) IntOption(i int, def int) int {
	if i < len(r.Options) {
		switch v := r.Options[i].(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}

	return def
}

// ESLintFlag renders the rule as a JSON value for ESLint's --rule flag.
func (r Rule) ESLintFlag() (string, error) {
	value := append([]any{int(r.Severity)}, r.Options...)

	raw, err := json.Marshal(map[string]any{r.ID: value})
	if err != nil {
		return "", fmt.Errorf("encode rule %s: %w", r.ID, err)
	}

	return string(raw), nil
}

// ESLintArgs renders the rule set as ESLint CLI arguments.
func (rs RuleSet) ESLintArgs() ([]string, error) {
	args := []string{
		"--no-config-lookup",
		"--parser-options", fmt.Sprintf("ecmaVersion:%d", rs.EcmaVersion),
		"--parser-options", "sourceType:" + rs.SourceType,
	}

	if len(rs.Globals) > 0 {
		globals := make([]string, 0, len(rs.Globals))

		for _, name := range rs.GlobalNames() {
			if rs.Globals[name] == GlobalWritable {
				name += ":true"
			}

			globals = append(globals, name)
		}

		args = append(args, "--global", strings.Join(globals, ","))
	}

	for _, r := range rs.Rules {
		flag, err := r.ESLintFlag()
		if err != nil {
			return nil, err
		}

		args = append(args, "--rule", flag)
	}

	return args, nil
}
