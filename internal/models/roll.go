package models

import (
	"strconv"
	"strings"
)

// DiceGroup is a number of dice of the same size rolled together, e.g. 2d6
type DiceGroup struct {
	// Count is the number of dice rolled
	Count int

	// Sides is the number of faces on each die
	Sides int
}

// SimpleRoll represents one evaluated roll expression
type SimpleRoll struct {
	// Expression is the original roll text, e.g. "1d20+5". May be empty.
	Expression string

	// Total is the recorded result. Nil when the source omitted it.
	Total *int

	// Dice are the dice groups rolled, in source order
	Dice []DiceGroup

	// Modifier is the modifier expression, e.g. "+5"
	Modifier string

	// Comment is the free text attached to the roll
	Comment string
}

// AbilityRoll is a named check or attack with one or more attempts.
// Advantage and disadvantage repeats are kept in source order; which
// attempt counted is not recorded.
type AbilityRoll struct {
	// Name is the ability (e.g. Intimidation) or weapon (e.g. Longsword) used
	Name string

	// Attempts are the rolls made for the check
	Attempts []SimpleRoll
}

// DamageRoll is a named damage roll made of additive components
type DamageRoll struct {
	// Name is the attack the damage belongs to
	Name string

	// Components are the damage rolls, e.g. base + sneak attack
	Components []SimpleRoll
}

// Summary renders the roll as "rolling <expr>: <total>"
func (r *SimpleRoll) Summary() string {
	return "rolling " + r.Expression + ": " + r.TotalString()
}

// TotalString returns the total as text, or "?" when it is absent
func (r *SimpleRoll) TotalString() string {
	if r.Total == nil {
		return "?"
	}
	return strconv.Itoa(*r.Total)
}

// Summary renders the roll as "<name>: <a>|<b>"
func (r *AbilityRoll) Summary() string {
	return r.Name + ": " + joinTotals(r.Attempts, "|")
}

// Summary renders the roll as "<name>: damage <a>+<b>"
func (r *DamageRoll) Summary() string {
	return r.Name + ": damage " + joinTotals(r.Components, "+")
}

func joinTotals(rolls []SimpleRoll, sep string) string {
	totals := make([]string, len(rolls))
	for i := range rolls {
		totals[i] = rolls[i].TotalString()
	}
	return strings.Join(totals, sep)
}
