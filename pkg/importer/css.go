package importer

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	cssparser "github.com/aymerick/douceur/parser"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// cssMode says which side of a token a rule assigns.
type cssMode int

const (
	modeNone cssMode = iota
	modeLight
	modeDark
)

// ParseCSS reads colour custom properties from a stylesheet. Light values come
// from :root (or html), dark values from .dark, [data-theme="dark"] or a
// prefers-color-scheme: dark media block. Non-colour properties are skipped.
// A token defined on only one side uses that value for both.
func ParseCSS(data []byte) (tokens.ColorSet, error) {
	sheet, err := cssparser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tokens.ErrMalformedImport, err)
	}

	c := &cssCollector{index: make(map[string]int)}
	c.walk(sheet.Rules, false)
	return c.result(), nil
}

type cssCollector struct {
	order []cssToken
	index map[string]int
}

type cssToken struct {
	name, light, dark string
}

func (c *cssCollector) walk(rules []*css.Rule, darkMedia bool) {
	for _, rule := range rules {
		if rule.Kind == css.AtRule {
			if rule.Name == "@media" || rule.Name == "@layer" || rule.Name == "@supports" {
				c.walk(rule.Rules, darkMedia || isDarkMedia(rule.Prelude))
			}
			continue
		}
		mode := selectorMode(rule.Selectors, darkMedia)
		if mode == modeNone {
			continue
		}
		for _, decl := range rule.Declarations {
			if !strings.HasPrefix(decl.Property, "--") {
				continue
			}
			value, ok := normalizeColor(decl.Value)
			if !ok {
				continue
			}
			c.set(strings.TrimPrefix(decl.Property, "--"), value, mode)
		}
	}
}

func (c *cssCollector) set(prop, value string, mode cssMode) {
	i, ok := c.index[prop]
	if !ok {
		i = len(c.order)
		c.index[prop] = i
		c.order = append(c.order, cssToken{name: prop})
	}
	if mode == modeDark {
		c.order[i].dark = value
	} else {
		c.order[i].light = value
	}
}

func (c *cssCollector) result() tokens.ColorSet {
	set := make(tokens.ColorSet, 0, len(c.order))
	for _, t := range c.order {
		light, dark := t.light, t.dark
		if light == "" {
			light = dark
		}
		if dark == "" {
			dark = light
		}
		set = append(set, tokens.ColorToken{Name: displayName(t.name), Light: light, Dark: dark})
	}
	return set
}

func isDarkMedia(prelude string) bool {
	p := strings.ReplaceAll(strings.ToLower(prelude), " ", "")
	return strings.Contains(p, "prefers-color-scheme:dark")
}

func selectorMode(selectors []string, darkMedia bool) cssMode {
	mode := modeNone
	for _, sel := range selectors {
		s := strings.ToLower(strings.TrimSpace(sel))
		switch {
		case strings.Contains(s, ".dark") || strings.Contains(s, `data-theme="dark"`) || strings.Contains(s, "data-theme=dark"):
			return modeDark
		case s == ":root" || s == "html" || s == ":host":
			mode = modeLight
		}
	}
	if mode == modeLight && darkMedia {
		return modeDark
	}
	return mode
}
