// Package mutagens provides the textual mutation operators applied to valid snippets.
//
// Operators are regular-expression substitutions over the raw text, not AST
// transforms: they can match inside string literals or comments, and that
// imprecision is accepted.
package mutagens

import (
	"fmt"
	"regexp"

	m "synmut.dev/pkg/synmut/internal/model"
)

// Operator is a named, deterministic and total Snippet -> Snippet transform.
type Operator struct {
	Name        string
	Description string
	pattern     *regexp.Regexp
	replace     func(match string) string
}

// Apply rewrites every match of the operator's pattern in snippet.
// Snippets without a match are returned unchanged.
func (o Operator) Apply(snippet m.Snippet) m.Snippet {
	if o.pattern == nil {
		return snippet
	}

	return m.Snippet(o.pattern.ReplaceAllStringFunc(string(snippet), o.replace))
}

// Changes reports whether applying the operator alters snippet.
func (o Operator) Changes(snippet m.Snippet) bool {
	return o.Apply(snippet) != snippet
}

func deleteAll(name, description, expr string) Operator {
	return Operator{
		Name:        name,
		Description: description,
		pattern:     regexp.MustCompile(expr),
		replace:     func(string) string { return "" },
	}
}

func replaceAll(name, description, expr, with string) Operator {
	re := regexp.MustCompile(expr)

	return Operator{
		Name:        name,
		Description: description,
		pattern:     re,
		replace: func(match string) string {
			return re.ReplaceAllString(match, with)
		},
	}
}

// All returns every operator in its canonical order.
func All() []Operator {
	return []Operator{
		RemoveSemicolons,
		AssignmentToEquality,
		RemoveReturn,
		RemoveFunctionName,
		RemoveOpenParens,
		RemoveClosingBraces,
		RemoveColons,
		DoubleToSingleQuotes,
	}
}

// Lookup returns the operator registered under name.
func Lookup(name string) (Operator, error) {
	for _, op := range All() {
		if op.Name == name {
			return op, nil
		}
	}

	return Operator{}, fmt.Errorf("unsupported mutation operator: %s", name)
}

// Resolve maps operator names to operators in first-seen order, ignoring
// repeated names. No names means all operators.
func Resolve(names ...string) ([]Operator, error) {
	if len(names) == 0 {
		return All(), nil
	}

	ops := make([]Operator, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}

		op, err := Lookup(name)
		if err != nil {
			return nil, err
		}

		seen[name] = struct{}{}
		ops = append(ops, op)
	}

	return ops, nil
}
