// Package main is the entry point for the nuzlocke battle planner.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/nuzlocke/internal/entity"
	"github.com/samdwyer/nuzlocke/internal/game"
	"github.com/samdwyer/nuzlocke/internal/gamedata"
	"github.com/samdwyer/nuzlocke/internal/stats"
	"github.com/samdwyer/nuzlocke/internal/telemetry"
	"github.com/samdwyer/nuzlocke/internal/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Not fatal: variables may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Info().Err(err).Msg(".env file not loaded")
	}

	cfg, err := game.ParseEnv()
	if err != nil {
		return err
	}

	var (
		attacker stats.AttackerStages
		defender entity.Defender
	)
	flag.StringVar(&cfg.DefenderSpecies, "defender", cfg.DefenderSpecies, "defending species")
	flag.IntVar(&cfg.DefenderLevel, "level", cfg.DefenderLevel, "defender level")
	flag.StringVar(&cfg.RosterFile, "roster", cfg.RosterFile, "roster YAML file")
	flag.IntVar(&attacker.Attack, "attack-stage", 0, "attack stage applied to every attacker")
	flag.IntVar(&attacker.Special, "special-stage", 0, "special stage applied to every attacker")
	flag.IntVar(&attacker.Speed, "speed-stage", 0, "speed stage applied to every attacker")
	flag.IntVar(&defender.Stages.Defense, "defender-defense-stage", 0, "defender defense stage")
	flag.IntVar(&defender.Stages.Special, "defender-special-stage", 0, "defender special stage")
	flag.BoolVar(&defender.Reflect, "reflect", false, "defender has Reflect up")
	flag.BoolVar(&defender.LightScreen, "light-screen", false, "defender has Light Screen up")
	filter := flag.String("filter", "", "offensive coverage type filter")
	once := flag.Bool("once", false, "print a report and exit instead of starting the planner")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defender.Species = cfg.DefenderSpecies
	defender.Level = cfg.DefenderLevel
	if err := defender.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	if err := (entity.Attacker{Stages: attacker}).Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	level, _ := cfg.ZerologLevel()
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: cfg.OTLPEndpoint,
			Headers:  cfg.OTLPHeaders,
		})
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	tables, err := loadTables(cfg)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}

	party, err := entity.LoadRoster(cfg.RosterFile)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	for _, m := range party.Members {
		if err := m.ValidateAgainst(tables); err != nil {
			log.Warn().Err(err).Msg("roster member will be skipped")
		}
	}
	log.Info().
		Int("members", len(party.Members)).
		Int("active", party.ActiveCount()).
		Str("roster", cfg.RosterFile).
		Msg("roster loaded")

	if *once {
		report, err := game.Plan(ctx, tables, party, defender, attacker)
		if err != nil {
			return fmt.Errorf("plan: %w", err)
		}
		report.Filter = gamedata.Type(*filter)
		if err := ui.NewFormatter(cfg.Locale).WriteReport(os.Stdout, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	closeLog := redirectLogs(cfg.LogFile)
	defer closeLog()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	planner := game.New(cfg, tables, party, screen)
	planner.SetStages(defender, attacker)
	if err := planner.Run(ctx); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	return nil
}

func loadTables(cfg game.Config) (*gamedata.Tables, error) {
	if cfg.DataDir != "" {
		return gamedata.LoadTablesFromDir(cfg.DataDir, cfg.Generation)
	}
	return gamedata.LoadTables(cfg.Generation)
}

// redirectLogs sends logs to path, or discards them, while the planner owns
// the terminal.
func redirectLogs(path string) func() {
	if path == "" {
		log.Logger = log.Output(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot open log file, discarding logs")
		log.Logger = log.Output(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}
