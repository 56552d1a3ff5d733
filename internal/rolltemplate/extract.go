// Package rolltemplate pulls named fields out of roll20 roll template markup.
//
// Template content looks like
//
//	{{rname=[Longsword](~attack)}} {{mod=+5}} {{r1=$[[0]]}} {{r2=$[[1]]}}
//
// and differs between sheet versions, so every field is looked up with an
// ordered list of patterns and the first one that yields a value wins.
package rolltemplate

import (
	"regexp"
	"strings"
)

// Pattern is one way a field can be written. Groups selects which capture
// groups may hold the value, tried in order; nil means every group.
type Pattern struct {
	Expr   *regexp.Regexp
	Groups []int
}

// NewPattern compiles expr, selecting the given capture groups
func NewPattern(expr string, groups ...int) Pattern {
	return Pattern{Expr: regexp.MustCompile(expr), Groups: groups}
}

var (
	attackNamePatterns = []Pattern{
		NewPattern(`\{\{rname=\[(.+?)\]`),
		NewPattern(`\{\{rname=(.+?)\}\}`),
	}

	// ability checks wrap translated names as ^{name}
	abilityCheckNamePatterns = []Pattern{
		NewPattern(`\{\{rname=\^\{(.*?)\}\}\}`),
		NewPattern(`\{\{rname=(.+?)\}\}`),
	}

	abilityNamePatterns = []Pattern{
		NewPattern(`\{\{name=(.*?)\}\}`),
	}
)

// Extract returns the first non-empty capture of the first pattern that
// produces one. An empty string means the field is not present.
func Extract(content string, patterns []Pattern) string {
	for _, p := range patterns {
		m := p.Expr.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		groups := p.Groups
		if groups == nil {
			for i := 1; i < len(m); i++ {
				if m[i] != "" {
					return m[i]
				}
			}
			continue
		}
		for _, g := range groups {
			if g > 0 && g < len(m) && m[g] != "" {
				return m[g]
			}
		}
	}
	return ""
}

// AttackName returns the weapon or attack name of an atk, dmg or atkdmg template
func AttackName(content string) string {
	return Extract(content, attackNamePatterns)
}

// AbilityCheckName returns the check name of a simple template
func AbilityCheckName(content string) string {
	return Extract(content, abilityCheckNamePatterns)
}

// AbilityName returns the name of a spell or trait card
func AbilityName(content string) string {
	return strings.TrimSpace(Extract(content, abilityNamePatterns))
}
