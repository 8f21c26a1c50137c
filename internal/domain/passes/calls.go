package passes

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"cleanup.dev/pkg/cleanup/internal/syntax"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

const placeholder = "undefined"

// statement containers where a statement can simply disappear
var statementLists = map[string]bool{
	"program":         true,
	"statement_block": true,
	"switch_case":     true,
	"switch_default":  true,
}

var logicalOperators = map[string]bool{
	"&&": true,
	"||": true,
	"??": true,
}

type slot int

const (
	slotOther slot = iota
	slotStatement
	slotOperand
)

// CallPruner removes console.<method>(...) calls.
type CallPruner struct{}

// Name implements Pass.
func (CallPruner) Name() string { return "console" }

// Apply removes calls in statement position and replaces calls that are
// operands of sequence, logical or conditional expressions with undefined.
// Calls anywhere else are left alone and reported in Flagged.
func (CallPruner) Apply(tree *syntax.Tree, policy m.RemovalPolicy) Report {
	set := policy.RemovalSet()
	if len(set) == 0 {
		return Report{}
	}

	var r Report

	syntax.Walk(tree.Root(), func(n *sitter.Node) bool {
		if tree.Removed(n) {
			return false
		}

		if n.Kind() != "call_expression" {
			return true
		}

		method, ok := consoleMethod(tree, n)
		if !ok {
			return true
		}

		if _, remove := set[method]; !remove {
			return true
		}

		where, host := classify(n)

		switch where {
		case slotStatement:
			removeStatement(tree, host)
		case slotOperand:
			tree.Replace(n, placeholder)
		default:
			line, col := tree.Position(n)
			r.Flagged = append(r.Flagged, m.CallSite{
				Method:  method,
				Line:    line,
				Column:  col,
				Context: contextOf(host),
			})

			return true
		}

		r.Removed++

		return false
	})

	return r
}

// consoleMethod matches console.<name>(...) with a plain identifier receiver.
// Optional chains are not matched.
func consoleMethod(tree *syntax.Tree, call *sitter.Node) (string, bool) {
	if hasChild(call, "optional_chain") {
		return "", false
	}

	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Kind() != "member_expression" || hasChild(fn, "optional_chain") {
		return "", false
	}

	object := fn.ChildByFieldName("object")
	if object == nil || object.Kind() != "identifier" || tree.Text(object) != m.ConsoleReceiver {
		return "", false
	}

	property := fn.ChildByFieldName("property")
	if property == nil || property.Kind() != "property_identifier" {
		return "", false
	}

	return tree.Text(property), true
}

func hasChild(n *sitter.Node, kind string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		if n.Child(i).Kind() == kind {
			return true
		}
	}

	return false
}

// classify looks through parentheses for the node that decides how the call
// can be removed.
func classify(call *sitter.Node) (slot, *sitter.Node) {
	parent := call.Parent()
	for parent != nil && parent.Kind() == "parenthesized_expression" {
		parent = parent.Parent()
	}

	if parent == nil {
		return slotOther, nil
	}

	switch parent.Kind() {
	case "expression_statement":
		return slotStatement, parent
	case "sequence_expression", "ternary_expression":
		return slotOperand, parent
	case "binary_expression":
		if op := parent.ChildByFieldName("operator"); op != nil && logicalOperators[op.Kind()] {
			return slotOperand, parent
		}
	}

	return slotOther, parent
}

// removeStatement deletes a statement, or empties it when the grammar needs a
// statement in that slot (if/else/loop bodies, labels).
func removeStatement(tree *syntax.Tree, stmt *sitter.Node) {
	if parent := stmt.Parent(); parent != nil && statementLists[parent.Kind()] {
		tree.Delete(stmt)
		return
	}

	tree.Replace(stmt, "{}")
}

func contextOf(host *sitter.Node) m.CallContext {
	if host == nil {
		return m.CallInExpression
	}

	switch host.Kind() {
	case "arguments":
		return m.CallInArgument
	case "assignment_expression", "augmented_assignment_expression":
		return m.CallInAssignment
	case "variable_declarator", "public_field_definition", "field_definition":
		return m.CallInInitializer
	case "return_statement":
		return m.CallInReturn
	case "arrow_function":
		return m.CallInArrowBody
	case "if_statement", "while_statement", "do_statement", "for_statement":
		return m.CallInCondition
	default:
		return m.CallInExpression
	}
}
