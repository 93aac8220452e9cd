package importer

import (
	"fmt"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// parseJSModule reads exported object constants from a JS/TS module.
//
// Two shapes are recognised:
//
//	export const primary = { name: "Primary", light: "#3b82f6", dark: "#60a5fa", category: "brand" };
//	export const brand = { primary: { light: "#3b82f6", dark: "#60a5fa" } };
//
// In the second, the constant name becomes the category of every entry.
func (im *Importer) parseJSModule(source []byte, path string) (tokens.ColorSet, error) {
	tree, err := im.parsers.ParseFile(source, path)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w: syntax error in module", tokens.ErrMalformedImport)
	}

	var set tokens.ColorSet
	for i := uint(0); i < root.NamedChildCount(); i++ {
		stmt := root.NamedChild(i)
		if stmt.Kind() != "export_statement" {
			continue
		}
		decl := stmt.ChildByFieldName("declaration")
		if decl == nil || decl.Kind() != "lexical_declaration" {
			continue
		}
		for j := uint(0); j < decl.NamedChildCount(); j++ {
			declarator := decl.NamedChild(j)
			if declarator.Kind() != "variable_declarator" {
				continue
			}
			set = append(set, tokensFromDeclarator(declarator, source)...)
		}
	}
	return set, nil
}

func tokensFromDeclarator(declarator *ts.Node, source []byte) []tokens.ColorToken {
	nameNode := declarator.ChildByFieldName("name")
	value := unwrapExpression(declarator.ChildByFieldName("value"))
	if nameNode == nil || value == nil || value.Kind() != "object" {
		return nil
	}
	ident := nameNode.Utf8Text(source)

	props := objectProps(value, source)
	if tok, ok := tokenFromProps(ident, props.strings); ok {
		return []tokens.ColorToken{tok}
	}

	var out []tokens.ColorToken
	for _, child := range props.objects {
		childProps := objectProps(child.node, source)
		tok, ok := tokenFromProps(child.key, childProps.strings)
		if !ok {
			continue
		}
		if tok.Category == "" {
			tok.Category = ident
		}
		out = append(out, tok)
	}
	return out
}

func tokenFromProps(ident string, props map[string]string) (tokens.ColorToken, bool) {
	light, ok := normalizeColor(props["light"])
	if !ok {
		return tokens.ColorToken{}, false
	}
	dark, ok := normalizeColor(props["dark"])
	if !ok {
		dark = light
	}
	name := props["name"]
	if name == "" {
		name = displayName(ident)
	}
	return tokens.ColorToken{Name: name, Light: light, Dark: dark, Category: props["category"]}, true
}

type keyedNode struct {
	key  string
	node *ts.Node
}

type objectValues struct {
	strings map[string]string
	objects []keyedNode
}

// objectProps collects string-valued and object-valued pairs of an object literal.
func objectProps(obj *ts.Node, source []byte) objectValues {
	vals := objectValues{strings: make(map[string]string)}
	for i := uint(0); i < obj.NamedChildCount(); i++ {
		pair := obj.NamedChild(i)
		if pair.Kind() != "pair" {
			continue
		}
		key := propertyKey(pair.ChildByFieldName("key"), source)
		value := unwrapExpression(pair.ChildByFieldName("value"))
		if key == "" || value == nil {
			continue
		}
		switch value.Kind() {
		case "string":
			vals.strings[key] = stringLiteral(value, source)
		case "object":
			vals.objects = append(vals.objects, keyedNode{key: key, node: value})
		}
	}
	return vals
}

func propertyKey(node *ts.Node, source []byte) string {
	if node == nil {
		return ""
	}
	if node.Kind() == "string" {
		return stringLiteral(node, source)
	}
	return node.Utf8Text(source)
}

// stringLiteral returns the content of a string node without quotes.
func stringLiteral(node *ts.Node, source []byte) string {
	var b strings.Builder
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == "string_fragment" {
			b.WriteString(child.Utf8Text(source))
		}
	}
	return b.String()
}

// unwrapExpression strips `as const`, `satisfies T` and parentheses.
func unwrapExpression(node *ts.Node) *ts.Node {
	for node != nil {
		switch node.Kind() {
		case "as_expression", "satisfies_expression", "parenthesized_expression", "non_null_expression":
			if node.NamedChildCount() == 0 {
				return nil
			}
			node = node.NamedChild(0)
		default:
			return node
		}
	}
	return nil
}
