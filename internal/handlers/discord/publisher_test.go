package discord

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KirkDiggler/roll20log/internal/handlers/discord/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublisherTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSender *mocks.MockSender
	publisher  *Publisher
	ctx        context.Context

	testChannelID string
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSender = mocks.NewMockSender(s.mockCtrl)
	s.ctx = context.Background()
	s.testChannelID = "test-channel-id"

	publisher, err := NewPublisher(&Config{
		Sender:           s.mockSender,
		MaxMessageLength: 40,
	})
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *PublisherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PublisherTestSuite) TestNewPublisher_InvalidConfig() {
	_, err := NewPublisher(nil)
	s.Error(err)

	_, err = NewPublisher(&Config{})
	s.Error(err)
}

func (s *PublisherTestSuite) TestNewPublisher_DefaultLength() {
	publisher, err := NewPublisher(&Config{Sender: s.mockSender, MaxMessageLength: 5000})
	s.Require().NoError(err)
	s.Equal(MaxMessageLength, publisher.maxLength)
}

func (s *PublisherTestSuite) TestPublish_PacksLines() {
	lines := []string{
		"(12:00) Alice: hi",
		"(12:01) Bob: rolling 1d20: 4",
		"(12:02) Vex: Rapier: 15|18",
	}

	gomock.InOrder(
		s.mockSender.EXPECT().
			ChannelMessageSend(s.testChannelID, lines[0], gomock.Any()).
			Return(&discordgo.Message{ID: "1"}, nil),
		s.mockSender.EXPECT().
			ChannelMessageSend(s.testChannelID, lines[1], gomock.Any()).
			Return(&discordgo.Message{ID: "2"}, nil),
		s.mockSender.EXPECT().
			ChannelMessageSend(s.testChannelID, lines[2], gomock.Any()).
			Return(&discordgo.Message{ID: "3"}, nil),
	)

	output, err := s.publisher.Publish(s.ctx, &PublishInput{
		ChannelID: s.testChannelID,
		Lines:     lines,
	})
	s.Require().NoError(err)
	s.Equal(3, output.MessagesSent)
}

func (s *PublisherTestSuite) TestPublish_JoinsShortLines() {
	s.mockSender.EXPECT().
		ChannelMessageSend(s.testChannelID, "a: 1\nb: 2\nc: 3", gomock.Any()).
		Return(&discordgo.Message{}, nil)

	output, err := s.publisher.Publish(s.ctx, &PublishInput{
		ChannelID: s.testChannelID,
		Lines:     []string{"a: 1", "b: 2", "c: 3"},
	})
	s.Require().NoError(err)
	s.Equal(1, output.MessagesSent)
}

func (s *PublisherTestSuite) TestPublish_SendError() {
	s.mockSender.EXPECT().
		ChannelMessageSend(s.testChannelID, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("missing access"))

	output, err := s.publisher.Publish(s.ctx, &PublishInput{
		ChannelID: s.testChannelID,
		Lines:     []string{"a: 1"},
	})
	s.Error(err)
	s.Equal(0, output.MessagesSent)
}

func (s *PublisherTestSuite) TestPublish_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	output, err := s.publisher.Publish(ctx, &PublishInput{
		ChannelID: s.testChannelID,
		Lines:     []string{"a: 1"},
	})
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, output.MessagesSent)
}

func (s *PublisherTestSuite) TestPublish_MissingChannel() {
	_, err := s.publisher.Publish(s.ctx, &PublishInput{Lines: []string{"a"}})
	s.Error(err)

	_, err = s.publisher.Publish(s.ctx, nil)
	s.Error(err)
}

func (s *PublisherTestSuite) TestPublish_NoLines() {
	output, err := s.publisher.Publish(s.ctx, &PublishInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(0, output.MessagesSent)
}

func (s *PublisherTestSuite) TestChunkLines_SplitsLongLine() {
	long := strings.Repeat("x", 25)
	chunks := chunkLines([]string{"ab", long}, 10)

	s.Equal([]string{"ab", "xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, chunks)
}

func (s *PublisherTestSuite) TestChunkLines_KeepsRunesWhole() {
	// each é is two bytes
	chunks := chunkLines([]string{"ééééé"}, 3)

	for _, c := range chunks {
		s.LessOrEqual(len(c), 3)
		s.True(strings.Count(c, "é")*2 == len(c), c)
	}
	s.Equal("ééééé", strings.Join(chunks, ""))
}

func (s *PublisherTestSuite) TestChunkLines_ExactFit() {
	chunks := chunkLines([]string{"abcd", "efghi"}, 10)
	s.Equal([]string{"abcd\nefghi"}, chunks)
}
