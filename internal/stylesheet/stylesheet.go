// Package stylesheet reads the small CSS subset the overlay uses: class and id selectors
// (comma lists allowed) with plain declarations. At-rules and other selectors are ignored.
package stylesheet

import (
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"grain-scenes/internal/palette"
)

// Rule is one selector with its declarations (raw strings).
type Rule struct {
	Selector string            // ".panel" or "#stats"
	Props    map[string]string // "background" -> "#1a1a1a"
}

// Stylesheet keeps rules in source order; later rules win.
type Stylesheet struct {
	Rules []Rule
}

// Parse reads CSS from r.
func Parse(r io.Reader) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}
	var open []int // rule indexes of the current ruleset
	depth := 0     // nesting inside at-rules
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return sheet, err
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			depth--
		case css.BeginRulesetGrammar:
			open = open[:0]
			if depth > 0 {
				continue
			}
			for _, sel := range strings.Split(joinValues(p.Values()), ",") {
				sel = strings.TrimSpace(sel)
				if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') || strings.ContainsAny(sel, " >+~:[") {
					continue
				}
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
				open = append(open, len(sheet.Rules)-1)
			}
		case css.DeclarationGrammar:
			key := strings.ToLower(strings.TrimSpace(string(data)))
			val := strings.TrimSpace(joinValues(p.Values()))
			for _, i := range open {
				sheet.Rules[i].Props[key] = val
			}
		case css.EndRulesetGrammar:
			open = open[:0]
		}
	}
}

// ParseString is Parse over a string.
func ParseString(s string) (*Stylesheet, error) {
	return Parse(strings.NewReader(s))
}

func joinValues(vals []css.Token) string {
	var b strings.Builder
	for _, v := range vals {
		b.Write(v.Data)
	}
	return b.String()
}

// Lookup merges the props of every rule whose selector is in selectors, in sheet order.
func (s *Stylesheet) Lookup(selectors ...string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		for _, sel := range selectors {
			if rule.Selector == sel {
				for k, v := range rule.Props {
					merged[k] = v
				}
				break
			}
		}
	}
	return merged
}

// Color parses #RGB, #RRGGBB or #RRGGBBAA into RGBA bytes.
func Color(s string) ([4]uint8, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		r, g, b, ok := palette.ParseHex(s[:7])
		if !ok {
			return [4]uint8{}, false
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return [4]uint8{}, false
		}
		return [4]uint8{r, g, b, uint8(a)}, true
	}
	r, g, b, ok := palette.ParseHex(s)
	if !ok {
		return [4]uint8{}, false
	}
	return [4]uint8{r, g, b, 255}, true
}

// Px parses a number with an optional "px" suffix. Unitless is treated as pixels.
func Px(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Pct parses "N%" with N in [0, 100].
func Pct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
