package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"wikifeet-go/internal/components/entropy"
	"wikifeet-go/internal/components/fetch"
	"wikifeet-go/internal/components/telemetry"
	"wikifeet-go/internal/history"
	"wikifeet-go/internal/scrapers/wikifeet"
	"wikifeet-go/lib/restyutil"
	"wikifeet-go/lib/serviceutil"
	libtelemetry "wikifeet-go/lib/telemetry"
)

type appOptions struct {
	configPath string
	verbose    bool
	seeded     bool
	seed       uint64
	record     bool
	dumpDir    string
}

// app holds everything a command needs, it is built once per invocation.
type app struct {
	config  Config
	client  wikifeet.Client
	history *history.Store
	otel    libtelemetry.Telemetry
	tel     telemetry.API
}

var current *app

func newApp(ctx context.Context, opts appOptions) (*app, error) {
	libtelemetry.InitSlog(os.Stderr, opts.verbose)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	otel, err := libtelemetry.SetupFromEnv(ctx, "wikifeet-cli")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	tel := telemetry.NewSlogAPI(slog.Default())

	fetchOpts := cfg.fetchOptions()
	if opts.dumpDir != "" {
		out, err := restyutil.NewFilesystemOutput(opts.dumpDir)
		if err != nil {
			return nil, fmt.Errorf("dump directory: %w", err)
		}
		fetchOpts.Dump = out
	}
	fetcher := fetch.NewResty(fetchOpts, tel)

	var rand entropy.API = entropy.NewStandardRandom()
	if opts.seeded {
		rand = entropy.NewSeededRandom(opts.seed)
	}

	a := &app{
		config: cfg,
		client: wikifeet.NewClient(fetcher, rand, tel),
		otel:   otel,
		tel:    tel,
	}

	if opts.record {
		store, err := a.openHistory()
		if err != nil {
			return nil, err
		}
		a.history = store
	}
	return a, nil
}

func (a *app) openHistory() (*history.Store, error) {
	if !a.config.History.Enabled() {
		return nil, fmt.Errorf("no history store is configured, set history.file or history.url in the config")
	}
	database, err := a.config.History.OpenDB()
	if err != nil {
		return nil, err
	}
	store := history.NewStore(database)
	return &store, nil
}

func (a *app) close(ctx context.Context) {
	if a.history != nil {
		err := a.history.Close()
		if err != nil {
			slog.Warn("failed to close history store", "err", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second*5)
	defer cancel()
	err := a.otel.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
}

// lookupOf builds the history entry of a lookup, the kind is the origin of the model
// so rank and search lookups are logged the same way by every command.
func lookupOf(query string, model wikifeet.Model, err error) history.Lookup {
	lookup := history.Lookup{
		Time:    time.Now(),
		Kind:    model.Origin().String(),
		Query:   query,
		Outcome: outcomeOf(err),
	}
	if record, ok := model.Record(); ok {
		lookup.Name = record.Name
		lookup.Username = record.Username
		lookup.PageURL = record.PageURL
	}
	return lookup
}

// recordLookup writes the lookup to the history store when --record is set.
func (a *app) recordLookup(ctx context.Context, query string, model wikifeet.Model, err error) {
	if a.history == nil {
		return
	}

	lookup := lookupOf(query, model, err)
	recordErr := a.history.Record(ctx, lookup)
	if recordErr != nil {
		a.tel.ReportWarning("cli.record-lookup", recordErr, lookup.Kind, query)
	}
}

func outcomeOf(err error) history.Outcome {
	switch {
	case err == nil:
		return history.OutcomeFound
	case wikifeet.IsAdultContent(err):
		return history.OutcomeGated
	case errors.Is(err, wikifeet.ErrNotFound):
		return history.OutcomeNotFound
	}
	return history.OutcomeFailed
}

// fail logs the error and exits, the app is closed first so telemetry is flushed.
func fail(ctx context.Context, message string, err error) {
	if current != nil {
		current.close(ctx)
	}
	serviceutil.Fatal(message, err)
}
