package rolltemplate

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ExtractTestSuite struct {
	suite.Suite
}

func TestExtractTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractTestSuite))
}

func (s *ExtractTestSuite) TestAttackName_PlainForm() {
	s.Equal("Longsword", AttackName("{{rname=Longsword}}"))
}

func (s *ExtractTestSuite) TestAttackName_BracketForm() {
	s.Equal("Shortbow", AttackName("{{rname=[Shortbow]}} {{mod=+5}}"))
}

func (s *ExtractTestSuite) TestAttackName_BracketFormWithLink() {
	content := "{{attack=1}} {{rname=[Rapier](~Vex|repeating_attack_-M1_attack)}} {{r1=$[[0]]}}"
	s.Equal("Rapier", AttackName(content))
}

func (s *ExtractTestSuite) TestAttackName_BracketPatternTriedFirst() {
	// the plain form appears earlier in the content but the bracket pattern is listed first
	content := "{{rname=Dagger}} {{rname=[Handaxe]}}"
	s.Equal("Handaxe", AttackName(content))
}

func (s *ExtractTestSuite) TestAttackName_NoMatch() {
	s.Equal("", AttackName("{{mod=+5}} {{r1=$[[0]]}}"))
	s.Equal("", AttackName(""))
}

func (s *ExtractTestSuite) TestAttackName_IgnoresCaretForm() {
	// the caret form is not special to attack names; the plain pattern captures it raw
	s.Equal("^{perception", AttackName("{{rname=^{perception}}}"))
}

func (s *ExtractTestSuite) TestAbilityCheckName_CaretForm() {
	s.Equal("insight", AbilityCheckName("{{rname=^{insight}}} {{mod=+3}}"))
}

func (s *ExtractTestSuite) TestAbilityCheckName_PlainForm() {
	s.Equal("Arcana", AbilityCheckName("{{rname=Arcana}} {{r1=$[[0]]}}"))
}

func (s *ExtractTestSuite) TestAbilityCheckName_EmptyCaretFallsThrough() {
	// an empty caret capture is not a value; the plain pattern is tried next
	s.Equal("^{", AbilityCheckName("{{rname=^{}}}"))
}

func (s *ExtractTestSuite) TestAbilityCheckName_NoMatch() {
	s.Equal("", AbilityCheckName("{{name=Fireball}}"))
}

func (s *ExtractTestSuite) TestAbilityName() {
	s.Equal("Fireball", AbilityName("{{level=evocation 3}} {{name= Fireball }} {{castingtime=1 action}}"))
	s.Equal("", AbilityName("{{rname=Longsword}}"))
}

func (s *ExtractTestSuite) TestExtract_GroupSelector() {
	patterns := []Pattern{
		NewPattern(`\{\{(\w+)=(\w+)\}\}`, 2),
	}
	s.Equal("value", Extract("{{key=value}}", patterns))
}

func (s *ExtractTestSuite) TestExtract_FirstNonEmptyGroup() {
	patterns := []Pattern{
		NewPattern(`(?:a=(\w*))|(?:b=(\w+))`),
	}
	s.Equal("two", Extract("b=two", patterns))
}

func (s *ExtractTestSuite) TestExtract_OrderedPatterns() {
	patterns := []Pattern{
		NewPattern(`first=(\w+)`),
		NewPattern(`second=(\w+)`),
	}
	s.Equal("y", Extract("second=y first=", patterns))
	s.Equal("x", Extract("second=y first=x", patterns))
}
