package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/newsdesk/pkg/auth"
	"github.com/umputun/newsdesk/pkg/config"
	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/feed"
	"github.com/umputun/newsdesk/pkg/repository"
	"github.com/umputun/newsdesk/pkg/seed"
	"github.com/umputun/newsdesk/pkg/summary"
	"github.com/umputun/newsdesk/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DSN    string `long:"dsn" env:"DB_DSN" description:"database connection string, overrides config"`
	Seed   bool   `long:"seed" env:"SEED" description:"load demo content on start"`

	Import struct {
		Feeds []string `long:"feed" env:"FEED" env-delim:"," description:"import articles from external feed url"`
		Only  bool     `long:"only" env:"ONLY" description:"exit after seeding and import"`
	} `group:"seed" namespace:"seed" env-namespace:"SEED"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("can't load .env: %v\n", err)
	}

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)
	log.Printf("[INFO] starting newsdesk version %s", revision)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called above
	}
	log.Print("[INFO] shutdown complete")
}

// run loads the configuration, prepares the database and serves the API until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DSN != "" {
		cfg.Database.DSN = opts.DSN
	}
	setupLog(opts.Debug, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] close database: %v", err)
		}
	}()

	processor := content.NewProcessor(content.ProcessorOpts{
		ExcerptLength:  cfg.Content.ExcerptLength,
		WordsPerMinute: cfg.Content.WordsPerMinute,
		AllowIframes:   cfg.Content.AllowIframes,
	})

	if opts.Seed {
		res, err := seed.New(repos, processor).Run(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		log.Printf("[INFO] seeded %+v", res)
	}

	if len(opts.Import.Feeds) > 0 {
		importer := newImporter(cfg, repos, processor)
		for _, url := range opts.Import.Feeds {
			if _, err := importer.Import(ctx, url); err != nil {
				log.Printf("[WARN] import %s failed: %v", url, err)
			}
		}
	}

	if opts.Import.Only {
		return nil
	}

	srv := server.New(cfg, server.NewStores(repos), server.Services{
		Tokens:    auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer),
		Processor: processor,
		RSS: feed.NewGenerator(feed.GeneratorOpts{
			BaseURL:     cfg.Server.BaseURL,
			SiteName:    cfg.Server.SiteName,
			Description: cfg.RSS.Description,
			Language:    cfg.RSS.Language,
		}),
	}, server.Opts{
		Version:  revision,
		Debug:    opts.Debug,
		SiteName: cfg.Server.SiteName,
		BaseURL:  cfg.Server.BaseURL,
		Throttle: cfg.Server.Throttle,
		RSSItems: cfg.RSS.MaxItems,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// newImporter makes a feed importer, extraction and summaries are added only when configured
func newImporter(cfg *config.Config, repos *repository.Repositories, processor *content.Processor) *seed.Importer {
	im := &seed.Importer{
		Repos:     repos,
		Parser:    feed.NewParser(cfg.Import.Timeout, cfg.Import.UserAgent),
		Processor: processor,
		Opts: seed.ImportOpts{
			AuthorEmail: cfg.Import.AuthorEmail,
			Category:    cfg.Import.Category,
			Publish:     cfg.Import.Publish,
			MaxItems:    cfg.Import.MaxItems,
			Workers:     4,
		},
	}
	if cfg.Import.Extract {
		im.Extractor = content.NewHTTPExtractor(cfg.Import.Timeout, cfg.Import.UserAgent, cfg.Import.MinTextLength)
	}
	if cfg.LLM.Enabled() {
		im.Summarizer = summary.New(cfg.LLM)
	}
	return im
}

// secrets returns configured values the logger should mask
func secrets(cfg *config.Config) []string {
	res := []string{}
	for _, s := range []string{cfg.Auth.JWTSecret, cfg.LLM.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
