// Package jsonmodel serializes condition trees to the two stable wire
// shapes external tooling consumes: a verbose, round-trippable tree and a
// concise, one-way tree. The evaluation result types carry their own json
// tags in package evaluation.
package jsonmodel

import (
	"encoding/json"
	"fmt"

	"github.com/hochfrequenz/go-ahbicht/condition"
)

// Token is the verbose leaf payload: the key's literal text plus its
// lexical category.
type Token struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// VerboseNode is one node of the verbose tree representation: a rule name,
// its children, and — for leaves — the token it was built from.
type VerboseNode struct {
	Type     string        `json:"type"`
	Children []VerboseNode `json:"children,omitempty"`
	Token    *Token        `json:"token,omitempty"`
}

func ruleNameFor(op condition.CompositionOp) string {
	switch op {
	case condition.OpAnd:
		return "and_composition"
	case condition.OpOr:
		return "or_composition"
	case condition.OpXor:
		return "xor_composition"
	case condition.OpThenAlso:
		return "then_also_composition"
	default:
		return "composition"
	}
}

func leafTokenType(leaf *condition.Leaf) string {
	if leaf.IsPackage() {
		return "PACKAGE_KEY"
	}
	return "CONDITION_KEY"
}

// Verbose builds the verbose tree representation of n: each node is
// {type, children, token?} with rule names and token types as named in
// the wire schema. A nil tree (bare indicator, no condition expression)
// serializes as a "condition" node with no children and no token.
func Verbose(n condition.Node) VerboseNode {
	switch v := n.(type) {
	case nil:
		return VerboseNode{Type: "condition"}
	case *condition.Leaf:
		ruleType := "condition"
		if v.IsPackage() {
			ruleType = "package"
		}
		return VerboseNode{
			Type:  ruleType,
			Token: &Token{Value: v.Key, Type: leafTokenType(v)},
		}
	case *condition.Composition:
		return VerboseNode{
			Type:     ruleNameFor(v.Op),
			Children: []VerboseNode{Verbose(v.Left), Verbose(v.Right)},
		}
	default:
		return VerboseNode{Type: "condition"}
	}
}

// VerboseIndicator wraps Verbose with the outer requirement-indicator
// frame: "ahb_expression" for a multi-pair document, or
// "single_requirement_indicator_expression" for a lone pair.
func VerboseIndicator(indicatorToken string, tree condition.Node, multiPair bool) VerboseNode {
	ruleType := "single_requirement_indicator_expression"
	if multiPair {
		ruleType = "ahb_expression"
	}
	return VerboseNode{
		Type: ruleType,
		Children: []VerboseNode{
			{Type: "condition", Token: &Token{Value: indicatorToken, Type: "MODAL_MARK"}},
			Verbose(tree),
		},
	}
}

// Concise renders n as the one-way concise tree: each composition is a
// single-key object {"<op>": [left, right]}, leaves are bare strings. The
// result is built directly as json.RawMessage rather than through a
// struct, since the shape isn't deserializable (leaves and compositions
// are not discriminable without the original tree).
func Concise(n condition.Node) json.RawMessage {
	switch v := n.(type) {
	case nil:
		return json.RawMessage(`null`)
	case *condition.Leaf:
		b, _ := json.Marshal(v.Key)
		return json.RawMessage(b)
	case *condition.Composition:
		left := Concise(v.Left)
		right := Concise(v.Right)
		tag, _ := json.Marshal(conciseTag(v.Op))
		return json.RawMessage(fmt.Sprintf(`{%s:[%s,%s]}`, tag, left, right))
	default:
		return json.RawMessage(`null`)
	}
}

func conciseTag(op condition.CompositionOp) string {
	switch op {
	case condition.OpAnd:
		return "and"
	case condition.OpOr:
		return "or"
	case condition.OpXor:
		return "xor"
	case condition.OpThenAlso:
		return "then_also"
	default:
		return "composition"
	}
}
