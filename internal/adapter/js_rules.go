package adapter

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "synmut.dev/pkg/synmut/internal/model"
)

// ruleContext is handed to each rule check; report appends a diagnostic tagged
// with the rule's id and severity.
type ruleContext struct {
	rule    Rule
	rules   RuleSet
	src     []byte
	lines   []string
	results *[]m.Diagnostic
}

func (rc *ruleContext) report(p sitter.Point, format string, args ...any) {
	line, column := position(p)

	*rc.results = append(*rc.results, m.Diagnostic{
		Severity: rc.rule.Severity,
		Line:     line,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
		RuleID:   rc.rule.ID,
	})
}

type ruleCheck func(rc *ruleContext, root *sitter.Node)

var ruleChecks = map[string]ruleCheck{
	"semi":                  checkSemi,
	"quotes":                checkQuotes,
	"indent":                checkIndent,
	"brace-style":           checkBraceStyle,
	"camelcase":             checkCamelcase,
	"no-undef":              checkNoUndef,
	"no-unreachable":        checkNoUnreachable,
	"no-unused-expressions": checkNoUnusedExpressions,
}

func runRules(rules RuleSet, root *sitter.Node, src []byte) []m.Diagnostic {
	var diags []m.Diagnostic

	lines := strings.Split(string(src), "\n")

	for _, rule := range rules.Rules {
		if rule.Severity == m.SeverityOff {
			continue
		}

		check, ok := ruleChecks[rule.ID]
		if !ok {
			continue
		}

		check(&ruleContext{rule: rule, rules: rules, src: src, lines: lines, results: &diags}, root)
	}

	return diags
}

var statementParents = map[string]bool{
	"program":           true,
	"statement_block":   true,
	"switch_case":       true,
	"switch_default":    true,
	"if_statement":      true,
	"else_clause":       true,
	"while_statement":   true,
	"do_statement":      true,
	"for_in_statement":  true,
	"labeled_statement": true,
	"export_statement":  true,
}

// inStatementPosition reports whether n is a statement of its parent rather
// than a clause of a for-loop header.
func inStatementPosition(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}

	if parent.Type() == "for_statement" {
		body := parent.ChildByFieldName("body")
		return body != nil && body.StartByte() == n.StartByte() && body.EndByte() == n.EndByte()
	}

	return statementParents[parent.Type()]
}

var terminatedStatements = map[string]bool{
	"expression_statement": true,
	"lexical_declaration":  true,
	"variable_declaration": true,
	"return_statement":     true,
	"throw_statement":      true,
	"break_statement":      true,
	"continue_statement":   true,
	"debugger_statement":   true,
	"import_statement":     true,
	"do_statement":         true,
	"export_statement":     true,
}

func checkSemi(rc *ruleContext, root *sitter.Node) {
	if rc.rule.StringOption(0, "always") != "always" {
		return
	}

	walk(root, func(n *sitter.Node) bool {
		if !terminatedStatements[n.Type()] {
			return true
		}

		if !inStatementPosition(n) || !needsTerminator(n) {
			return true
		}

		last := n.Child(int(n.ChildCount()) - 1)
		if last == nil || last.Type() != ";" {
			rc.report(n.EndPoint(), "Missing semicolon.")
		}

		return true
	})
}

// needsTerminator excludes export statements that wrap a declaration or a
// default function or class, which end with their own body.
func needsTerminator(n *sitter.Node) bool {
	if n.Type() != "export_statement" {
		return true
	}

	if n.ChildByFieldName("declaration") != nil {
		return false
	}

	if value := n.ChildByFieldName("value"); value != nil {
		switch value.Type() {
		case "function", "function_expression", "generator_function", "class":
			return false
		}
	}

	return true
}

func checkQuotes(rc *ruleContext, root *sitter.Node) {
	style := rc.rule.StringOption(0, "double")

	want, name := byte('"'), "doublequote"
	if style == "single" {
		want, name = '\'', "singlequote"
	}

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "string":
			text := n.Content(rc.src)
			if text != "" && text[0] != want {
				rc.report(n.StartPoint(), "Strings must use %s.", name)
			}

			return false
		case "template_string":
			if isPlainTemplate(n, rc.src) {
				rc.report(n.StartPoint(), "Strings must use %s.", name)
			}
		}

		return true
	})
}

// isPlainTemplate reports whether a template literal could be an ordinary
// string: untagged, single line and without substitutions.
func isPlainTemplate(n *sitter.Node, src []byte) bool {
	if parent := n.Parent(); parent != nil && parent.Type() == "call_expression" {
		return false
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "template_substitution" {
			return false
		}
	}

	return !strings.Contains(n.Content(src), "\n")
}

// Nodes whose children sit one indentation level deeper than the node itself.
var indentContainers = map[string]bool{
	"statement_block": true,
	"class_body":      true,
	"object":          true,
	"array":           true,
	"object_pattern":  true,
	"array_pattern":   true,
	"switch_case":     true,
	"switch_default":  true,
}

func checkIndent(rc *ruleContext, root *sitter.Node) {
	size := rc.rule.IntOption(0, 4)

	expectAt := func(n *sitter.Node, levels int) {
		row := int(n.StartPoint().Row)
		if row >= len(rc.lines) {
			return
		}

		found := leadingWhitespace(rc.lines[row])
		if found != int(n.StartPoint().Column) {
			return // not the first token on its line
		}

		if expected := levels * size; found != expected {
			rc.report(sitter.Point{Row: uint32(row)}, "Expected indentation of %d %s but found %d.", expected, plural(expected, "space"), found)
		}
	}

	walk(root, func(n *sitter.Node) bool {
		typ := n.Type()
		if typ != "program" && typ != "switch_body" && !indentContainers[typ] {
			return true
		}

		var value *sitter.Node
		if typ == "switch_case" {
			value = n.ChildByFieldName("value")
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)

			switch {
			case child.IsNamed():
				if value != nil && child.StartByte() == value.StartByte() {
					continue
				}

				expectAt(child, indentDepth(child))
			case (child.Type() == "}" || child.Type() == "]") && i == int(n.ChildCount())-1:
				expectAt(child, indentDepth(n))
			}
		}

		return true
	})
}

func indentDepth(n *sitter.Node) int {
	depth := 0

	for p := n.Parent(); p != nil; p = p.Parent() {
		if indentContainers[p.Type()] {
			depth++
		}
	}

	return depth
}

func leadingWhitespace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}

var braceOwners = map[string]bool{
	"if_statement":                   true,
	"else_clause":                    true,
	"for_statement":                  true,
	"for_in_statement":               true,
	"while_statement":                true,
	"do_statement":                   true,
	"try_statement":                  true,
	"catch_clause":                   true,
	"finally_clause":                 true,
	"function_declaration":           true,
	"generator_function_declaration": true,
	"function_expression":            true,
	"function":                       true,
	"generator_function":             true,
	"arrow_function":                 true,
	"method_definition":              true,
	"class_declaration":              true,
	"class":                          true,
}

// checkBraceStyle enforces "one true brace style" with single-line blocks allowed.
func checkBraceStyle(rc *ruleContext, root *sitter.Node) {
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "statement_block", "class_body":
			parent := n.Parent()
			if parent == nil || !braceOwners[parent.Type()] {
				return true
			}

			if prev := n.PrevSibling(); prev != nil && prev.EndPoint().Row != n.StartPoint().Row {
				rc.report(n.StartPoint(), "Opening curly brace does not appear on the same line as controlling statement.")
			}

		case "if_statement":
			checkSameLineAfterBlock(rc, n.ChildByFieldName("consequence"), n.ChildByFieldName("alternative"))

		case "try_statement":
			body := n.ChildByFieldName("body")
			handler := n.ChildByFieldName("handler")
			checkSameLineAfterBlock(rc, body, handler)

			if handler != nil {
				body = handler
			}

			checkSameLineAfterBlock(rc, body, n.ChildByFieldName("finalizer"))
		}

		return true
	})
}

func checkSameLineAfterBlock(rc *ruleContext, block, next *sitter.Node) {
	if block == nil || next == nil {
		return
	}

	end := block
	if end.Type() == "catch_clause" {
		end = end.ChildByFieldName("body")
	}

	if end == nil || end.Type() != "statement_block" {
		return
	}

	if next.StartPoint().Row != end.EndPoint().Row {
		rc.report(next.StartPoint(), "Closing curly brace does not appear on the same line as the subsequent block.")
	}
}

func checkCamelcase(rc *ruleContext, root *sitter.Node) {
	for _, binding := range collectBindings(root) {
		name := binding.Content(rc.src)
		if !isCamelCase(name) {
			rc.report(binding.StartPoint(), "Identifier '%s' is not in camel case.", name)
		}
	}
}

func isCamelCase(name string) bool {
	trimmed := strings.Trim(name, "_")

	return !strings.Contains(trimmed, "_") || trimmed == strings.ToUpper(trimmed)
}

// ecmaBuiltins are the globals ESLint knows for ES2021 without any environment.
var ecmaBuiltins = []string{
	"undefined", "NaN", "Infinity", "globalThis", "arguments",
	"Object", "Function", "Array", "String", "Number", "Boolean", "Symbol", "BigInt",
	"Promise", "Proxy", "Reflect", "Math", "JSON", "Date", "RegExp", "Intl",
	"Map", "Set", "WeakMap", "WeakSet", "WeakRef", "FinalizationRegistry",
	"Error", "EvalError", "RangeError", "ReferenceError", "SyntaxError", "TypeError", "URIError", "AggregateError",
	"ArrayBuffer", "SharedArrayBuffer", "DataView", "Atomics",
	"Int8Array", "Uint8Array", "Uint8ClampedArray", "Int16Array", "Uint16Array",
	"Int32Array", "Uint32Array", "Float32Array", "Float64Array", "BigInt64Array", "BigUint64Array",
	"parseInt", "parseFloat", "isNaN", "isFinite", "eval",
	"encodeURI", "encodeURIComponent", "decodeURI", "decodeURIComponent", "escape", "unescape",
}

// checkNoUndef reports references to names that are neither declared anywhere in
// the source nor predefined. Scoping is flat: a declaration anywhere counts.
func checkNoUndef(rc *ruleContext, root *sitter.Node) {
	declared := make(map[string]struct{})

	for _, name := range ecmaBuiltins {
		declared[name] = struct{}{}
	}

	for name := range rc.rules.Globals {
		declared[name] = struct{}{}
	}

	for _, binding := range collectBindings(root) {
		declared[binding.Content(rc.src)] = struct{}{}
	}

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "identifier", "shorthand_property_identifier":
			if isTypeofOperand(n, rc.src) {
				return true
			}

			name := n.Content(rc.src)
			if _, ok := declared[name]; !ok {
				rc.report(n.StartPoint(), "'%s' is not defined.", name)
			}
		}

		return true
	})
}

// isTypeofOperand reports whether n is the direct operand of typeof, which may
// name an undeclared global.
func isTypeofOperand(n *sitter.Node, src []byte) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != "unary_expression" {
		return false
	}

	op := parent.ChildByFieldName("operator")

	return op != nil && op.Content(src) == "typeof"
}

var blockTerminators = map[string]bool{
	"return_statement":   true,
	"throw_statement":    true,
	"break_statement":    true,
	"continue_statement": true,
}

func checkNoUnreachable(rc *ruleContext, root *sitter.Node) {
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "program" && n.Type() != "statement_block" {
			return true
		}

		terminated := false

		for i := 0; i < int(n.NamedChildCount()); i++ {
			stmt := n.NamedChild(i)

			if terminated && reachableAfterTerminator(stmt) {
				continue
			}

			if terminated {
				rc.report(stmt.StartPoint(), "Unreachable code.")
				break
			}

			terminated = blockTerminators[stmt.Type()]
		}

		return true
	})
}

// reachableAfterTerminator lists statements ESLint ignores after a jump:
// hoisted declarations, comments and empty statements.
func reachableAfterTerminator(stmt *sitter.Node) bool {
	switch stmt.Type() {
	case "comment", "empty_statement", "function_declaration", "generator_function_declaration":
		return true
	case "variable_declaration":
		for i := 0; i < int(stmt.NamedChildCount()); i++ {
			if stmt.NamedChild(i).ChildByFieldName("value") != nil {
				return false
			}
		}

		return true
	default:
		return false
	}
}

var effectfulExpressions = map[string]bool{
	"call_expression":                 true,
	"new_expression":                  true,
	"assignment_expression":           true,
	"augmented_assignment_expression": true,
	"update_expression":               true,
	"await_expression":                true,
	"yield_expression":                true,
}

func checkNoUnusedExpressions(rc *ruleContext, root *sitter.Node) {
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "expression_statement" {
			return true
		}

		if !inStatementPosition(n) {
			return true
		}

		expr := n.NamedChild(0)
		if expr == nil || isDirective(n, rc.src) || hasEffect(expr, rc.src) {
			return true
		}

		rc.report(n.StartPoint(), "Expected an assignment or function call and instead saw an expression.")

		return true
	})
}

func hasEffect(expr *sitter.Node, src []byte) bool {
	switch expr.Type() {
	case "parenthesized_expression":
		inner := expr.NamedChild(0)
		return inner != nil && hasEffect(inner, src)
	case "unary_expression":
		op := expr.ChildByFieldName("operator")
		return op != nil && (op.Content(src) == "delete" || op.Content(src) == "void")
	case "sequence_expression":
		for i := 0; i < int(expr.NamedChildCount()); i++ {
			if !hasEffect(expr.NamedChild(i), src) {
				return false
			}
		}

		return true
	default:
		return effectfulExpressions[expr.Type()]
	}
}

// isDirective reports whether stmt is a string literal in a directive prologue
// ("use strict").
func isDirective(stmt *sitter.Node, src []byte) bool {
	expr := stmt.NamedChild(0)
	if expr == nil || expr.Type() != "string" {
		return false
	}

	parent := stmt.Parent()
	if parent == nil {
		return false
	}

	if parent.Type() != "program" && parent.Type() != "statement_block" {
		return false
	}

	for prev := stmt.PrevNamedSibling(); prev != nil; prev = prev.PrevNamedSibling() {
		if prev.Type() == "comment" {
			continue
		}

		if prev.Type() != "expression_statement" || prev.NamedChild(0) == nil || prev.NamedChild(0).Type() != "string" {
			return false
		}
	}

	return true
}

// collectBindings returns the identifier nodes that declare a name.
func collectBindings(root *sitter.Node) []*sitter.Node {
	var bindings []*sitter.Node

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "variable_declarator":
			bindings = append(bindings, patternIdentifiers(n.ChildByFieldName("name"))...)
		case "function_declaration", "generator_function_declaration", "function_expression", "function",
			"generator_function", "class_declaration", "class":
			if name := n.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
				bindings = append(bindings, name)
			}
		case "formal_parameters":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				bindings = append(bindings, patternIdentifiers(n.NamedChild(i))...)
			}
		case "arrow_function":
			if param := n.ChildByFieldName("parameter"); param != nil {
				bindings = append(bindings, patternIdentifiers(param)...)
			}
		case "catch_clause":
			bindings = append(bindings, patternIdentifiers(n.ChildByFieldName("parameter"))...)
		case "for_in_statement":
			bindings = append(bindings, patternIdentifiers(n.ChildByFieldName("left"))...)
		case "import_clause":
			bindings = append(bindings, patternIdentifiers(n)...)
		}

		return true
	})

	return bindings
}

func patternIdentifiers(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		return []*sitter.Node{n}
	case "assignment_pattern", "object_assignment_pattern":
		return patternIdentifiers(n.ChildByFieldName("left"))
	case "pair_pattern":
		return patternIdentifiers(n.ChildByFieldName("value"))
	case "comment", "string":
		return nil
	}

	var ids []*sitter.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		ids = append(ids, patternIdentifiers(n.NamedChild(i))...)
	}

	return ids
}
