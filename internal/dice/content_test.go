package dice

import (
	"testing"

	"github.com/KirkDiggler/roll20log/internal/models"
	"github.com/stretchr/testify/suite"
)

type ContentTestSuite struct {
	suite.Suite
}

func TestContentTestSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func (s *ContentTestSuite) TestParseContent_HappyPath() {
	content := `{"type":"V","rolls":[{"type":"R","dice":2,"sides":6,"results":[{"v":3},{"v":4}]},{"type":"M","expr":"+5"},{"type":"C","text":" fire damage"}],"resultType":"sum","total":12}`

	roll, err := ParseContent("2d6+5 fire damage", content)
	s.Require().NoError(err)

	s.Equal("2d6+5 fire damage", roll.Expression)
	s.Require().NotNil(roll.Total)
	s.Equal(12, *roll.Total)
	s.Equal([]models.DiceGroup{{Count: 2, Sides: 6}}, roll.Dice)
	s.Equal("+5", roll.Modifier)
	s.Equal(" fire damage", roll.Comment)
}

func (s *ContentTestSuite) TestParseContent_TotalIsNotRecomputed() {
	content := `{"total": 17, "rolls":[{"type":"R","dice":2,"sides":6},{"type":"M","expr":"+5"}]}`

	roll, err := ParseContent("2d6+5", content)
	s.Require().NoError(err)

	s.Equal("rolling 2d6+5: 17", roll.Summary())
}

func (s *ContentTestSuite) TestParseContent_MissingTotal() {
	roll, err := ParseContent("1d20", `{"rolls":[{"type":"R","dice":1,"sides":20}]}`)
	s.Require().NoError(err)

	s.Nil(roll.Total)
	s.Equal("rolling 1d20: ?", roll.Summary())
}

func (s *ContentTestSuite) TestParseContent_KeepsDiceGroupOrder() {
	content := `{"total":9,"rolls":[{"type":"R","dice":1,"sides":8},{"type":"M","expr":"+"},{"type":"R","dice":2,"sides":4}]}`

	roll, err := ParseContent("1d8+2d4", content)
	s.Require().NoError(err)

	s.Equal([]models.DiceGroup{{Count: 1, Sides: 8}, {Count: 2, Sides: 4}}, roll.Dice)
}

func (s *ContentTestSuite) TestParseContent_LastCommentAndModifierWin() {
	content := `{"total":4,"rolls":[{"type":"C","text":"first"},{"type":"M","expr":"+1"},{"type":"C","text":"second"},{"type":"M","expr":"-2"}]}`

	roll, err := ParseContent("", content)
	s.Require().NoError(err)

	s.Equal("second", roll.Comment)
	s.Equal("-2", roll.Modifier)
}

func (s *ContentTestSuite) TestParseContent_IgnoresUnknownEntries() {
	content := `{"total":3,"rolls":[{"type":"G","rolls":[]},{"type":"L","text":"label"},{"type":"R","dice":1,"sides":4}]}`

	roll, err := ParseContent("1d4", content)
	s.Require().NoError(err)

	s.Len(roll.Dice, 1)
	s.Empty(roll.Comment)
	s.Empty(roll.Modifier)
}

func (s *ContentTestSuite) TestParseContent_UnknownEntryWithOtherFieldTypes() {
	content := `{"total":9,"rolls":[{"type":"R","dice":1,"sides":6},{"type":"G","rolls":[[{"type":"R","dice":1,"sides":4}]],"text":3,"dice":"many"}]}`

	roll, err := ParseContent("1d6+1d4", content)
	s.Require().NoError(err)

	s.Require().NotNil(roll.Total)
	s.Equal(9, *roll.Total)
	s.Equal([]models.DiceGroup{{Count: 1, Sides: 6}}, roll.Dice)
	s.Empty(roll.Comment)
}

func (s *ContentTestSuite) TestParseContent_MalformedKnownEntry() {
	_, err := ParseContent("1d6", `{"total":3,"rolls":[{"type":"R","dice":"one","sides":6}]}`)
	s.ErrorIs(err, ErrDecode)
}

func (s *ContentTestSuite) TestParseContent_NoEntries() {
	roll, err := ParseContent("5", `{"total":5}`)
	s.Require().NoError(err)

	s.Empty(roll.Dice)
	s.Equal(5, *roll.Total)
}

func (s *ContentTestSuite) TestParseContent_MalformedJSON() {
	roll, err := ParseContent("1d20", `{"total":`)
	s.Require().Error(err)
	s.ErrorIs(err, ErrDecode)
	s.Nil(roll)
}

func (s *ContentTestSuite) TestParseContent_PlainTextContent() {
	_, err := ParseContent("1d20", "rolled a 20!")
	s.ErrorIs(err, ErrDecode)
}
