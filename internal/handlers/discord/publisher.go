package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/roll20log/internal/common/log"
	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/roll20log/internal/handlers/discord Sender

// MaxMessageLength is the longest message Discord accepts
const MaxMessageLength = 2000

// Sender posts a message to a channel. *discordgo.Session implements it.
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the configuration for the publisher
type Config struct {
	// Sender posts messages, usually a *discordgo.Session
	Sender Sender

	// MaxMessageLength caps the size of each posted message.
	// Defaults to MaxMessageLength.
	MaxMessageLength int
}

// PublishInput contains parameters for publishing a transcript
type PublishInput struct {
	// ChannelID is the Discord channel to post to
	ChannelID string

	// Lines are the rendered transcript lines
	Lines []string
}

// PublishOutput contains the result of publishing
type PublishOutput struct {
	// MessagesSent is the number of Discord messages posted
	MessagesSent int
}

// Publisher posts rendered transcripts to a Discord channel
type Publisher struct {
	sender    Sender
	maxLength int
}

// NewSession creates a Discord session for a bot token. Posting messages
// only uses the REST API so the session does not need to be opened.
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return session, nil
}

// NewPublisher creates a new publisher
func NewPublisher(cfg *Config) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	maxLength := cfg.MaxMessageLength
	if maxLength <= 0 || maxLength > MaxMessageLength {
		maxLength = MaxMessageLength
	}

	return &Publisher{
		sender:    cfg.Sender,
		maxLength: maxLength,
	}, nil
}

// Publish posts the lines to the channel, packing as many whole lines into
// each message as fit
func (p *Publisher) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	logger := log.Ctx(ctx)
	output := &PublishOutput{}

	for _, chunk := range chunkLines(input.Lines, p.maxLength) {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		if _, err := p.sender.ChannelMessageSend(input.ChannelID, chunk, discordgo.WithContext(ctx)); err != nil {
			return output, fmt.Errorf("failed to send message %d: %w", output.MessagesSent+1, err)
		}
		output.MessagesSent++
	}

	logger.Info().
		Str(log.FieldChannelID, input.ChannelID).
		Int("messages_sent", output.MessagesSent).
		Msg("published transcript")

	return output, nil
}

// chunkLines joins lines with newlines into chunks of at most maxLength
// bytes. A line longer than maxLength is split on rune boundaries.
func chunkLines(lines []string, maxLength int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, line := range lines {
		if line == "" {
			continue
		}

		for len(line) > maxLength {
			flush()
			cut := maxLength
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = maxLength
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}

		needed := len(line)
		if current.Len() > 0 {
			needed++
		}
		if current.Len()+needed > maxLength {
			flush()
		}

		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	flush()

	return chunks
}
