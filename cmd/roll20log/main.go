package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/KirkDiggler/roll20log/internal/common/clock"
	"github.com/KirkDiggler/roll20log/internal/common/log"
	"github.com/KirkDiggler/roll20log/internal/common/uuid"
	"github.com/KirkDiggler/roll20log/internal/config"
	"github.com/KirkDiggler/roll20log/internal/handlers/discord"
	"github.com/KirkDiggler/roll20log/internal/models"
	archiveRepo "github.com/KirkDiggler/roll20log/internal/repositories/archive"
	"github.com/KirkDiggler/roll20log/internal/roll20"
	archiveService "github.com/KirkDiggler/roll20log/internal/services/archive"
	"github.com/KirkDiggler/roll20log/internal/services/transcript"
	"github.com/redis/go-redis/v9"
)

const usage = `usage: roll20log [flags] <chat-archive.html>
       roll20log -list-archives
       roll20log -show-archive <id>
       roll20log -delete-archive <id>

Converts an exported roll20 chat archive into a plain text log.

`

type options struct {
	input         string
	output        string
	rollsOnly     bool
	limit         int
	archive       bool
	publish       bool
	listArchives  bool
	showArchive   string
	deleteArchive string
}

// archiveCommand reports whether the run only works on stored archives
func (o *options) archiveCommand() bool {
	return o.listArchives || o.showArchive != "" || o.deleteArchive != ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "roll20log: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("roll20log", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.output, "o", "", "write the log to this file instead of stdout")
	fs.BoolVar(&opts.rollsOnly, "rolls-only", false, "only write dice roll messages")
	fs.IntVar(&opts.limit, "limit", 0, "only write the first N messages (overrides MESSAGE_LIMIT)")
	fs.BoolVar(&opts.archive, "archive", false, "store the log in Redis (needs REDIS_ADDR)")
	fs.BoolVar(&opts.publish, "publish", false, "post the log to Discord (needs DISCORD_TOKEN and DISCORD_CHANNEL_ID)")
	fs.BoolVar(&opts.listArchives, "list-archives", false, "list archived logs, newest first")
	fs.StringVar(&opts.showArchive, "show-archive", "", "print an archived log")
	fs.StringVar(&opts.deleteArchive, "delete-archive", "", "remove an archived log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.limit < 0 {
		return nil, errors.New("-limit cannot be negative")
	}

	if opts.archiveCommand() {
		return opts, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one input file")
	}
	opts.input = fs.Arg(0)

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	log.Init(log.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: stderr})
	logger := log.L()
	ctx = log.WithLogger(ctx, logger)

	if opts.archiveCommand() {
		archives, closeFn, err := newArchiveService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		switch {
		case opts.listArchives:
			return listArchives(ctx, archives, stdout)
		case opts.deleteArchive != "":
			return archives.DeleteArchive(ctx, &archiveService.DeleteArchiveInput{ArchiveID: opts.deleteArchive})
		}
		return showArchive(ctx, archives, opts.showArchive, stdout)
	}

	pages, err := readExport(opts.input)
	if err != nil {
		return err
	}

	transcriptSvc, err := transcript.New(&transcript.Config{
		DefaultLimit: cfg.MessageLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create transcript service: %w", err)
	}

	input := &transcript.BuildLogInput{
		Pages: pages,
		Limit: opts.limit,
	}
	if opts.rollsOnly {
		input.Kinds = []models.MessageKind{
			models.MessageKindRoll,
			models.MessageKindAttack,
			models.MessageKindDamage,
			models.MessageKindAbilityCheck,
		}
	}

	built, err := transcriptSvc.BuildLog(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to build log: %w", err)
	}

	logger.Info().
		Str(log.FieldSource, opts.input).
		Int("messages", len(built.Messages)).
		Int("skipped", len(built.Skipped)).
		Int("dropped", built.Dropped).
		Msg("parsed chat archive")

	lines := make([]string, len(built.Messages))
	for i, m := range built.Messages {
		lines[i] = m.Render()
	}

	if err := writeLines(opts.output, lines, stdout); err != nil {
		return err
	}

	if opts.archive {
		archives, closeFn, err := newArchiveService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		created, err := archives.CreateArchive(ctx, &archiveService.CreateArchiveInput{
			SourceName: filepath.Base(opts.input),
			Messages:   built.Messages,
		})
		if err != nil {
			return fmt.Errorf("failed to archive log: %w", err)
		}
		fmt.Fprintf(stderr, "archived as %s\n", created.Archive.ID)
	}

	if opts.publish {
		if !cfg.PublishEnabled() {
			return errors.New("-publish needs DISCORD_TOKEN and DISCORD_CHANNEL_ID")
		}

		session, err := discord.NewSession(cfg.Discord.Token)
		if err != nil {
			return err
		}

		publisher, err := discord.NewPublisher(&discord.Config{Sender: session})
		if err != nil {
			return err
		}

		if _, err := publisher.Publish(ctx, &discord.PublishInput{
			ChannelID: cfg.Discord.ChannelID,
			Lines:     lines,
		}); err != nil {
			return fmt.Errorf("failed to publish log: %w", err)
		}
	}

	return nil
}

func readExport(path string) ([]roll20.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pages, err := roll20.DecodeExport(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pages, nil
}

func writeLines(path string, lines []string, stdout io.Writer) error {
	out := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write log: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}

	if f, ok := out.(*os.File); ok && path != "" {
		return f.Sync()
	}
	return nil
}

func newArchiveService(cfg *config.Config) (archiveService.Service, func(), error) {
	if !cfg.ArchiveEnabled() {
		return nil, nil, errors.New("archiving needs REDIS_ADDR")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	repo, err := archiveRepo.NewRedis(&archiveRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.Redis.ArchiveTTL,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create archive repository: %w", err)
	}

	svc, err := archiveService.New(&archiveService.Config{
		ArchiveRepo:   repo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create archive service: %w", err)
	}

	return svc, func() { redisClient.Close() }, nil
}

func listArchives(ctx context.Context, archives archiveService.Service, stdout io.Writer) error {
	output, err := archives.ListArchives(ctx, &archiveService.ListArchivesInput{})
	if err != nil {
		return err
	}

	for _, a := range output.Archives {
		fmt.Fprintf(stdout, "%s\t%s\t%d messages\t%s\n",
			a.ID, a.CreatedAt.Format(time.RFC3339), a.MessageCount, a.SourceName)
	}
	return nil
}

func showArchive(ctx context.Context, archives archiveService.Service, id string, stdout io.Writer) error {
	output, err := archives.GetArchive(ctx, &archiveService.GetArchiveInput{ArchiveID: id})
	if err != nil {
		return err
	}

	for _, line := range output.Archive.Lines {
		fmt.Fprintln(stdout, line)
	}
	return nil
}
