package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/config"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/models"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/interview-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole("info")

	input := flag.String("input", "", "Input JSONL file ('-' for stdin)")
	output := flag.String("output", "", "Output file (default: stdout)")
	format := flag.String("format", batch.FormatJSONL, "Output format. Supported formats: 'jsonl', 'summary'")
	workers := flag.Int("workers", 5, "Concurrent generation workers")
	continueOnError := flag.Bool("continue-on-error", true, "Keep processing after a record fails")
	dryRun := flag.Bool("dry-run", false, "Validate input without calling the model")
	smoke := flag.Bool("smoke", false, "Run one built-in record per round instead of reading input")

	flag.Parse()

	if *input == "" && !*smoke {
		log.Fatal().Msg("required flag -input not provided (or use -smoke)")
	}
	formatValidator(*format)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	// stdout may carry results, so JSON logs go to stderr
	log.Logger = logger.FromFormat(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	records := loadRecords(ctx, *input, *smoke)
	log.Info().Int("total", len(records)).Msg("Input parsed")

	if *dryRun {
		dryRunAndExit(cfg, records)
	}

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Open output file
	var outputFile io.Writer
	if *output == "" {
		outputFile = os.Stdout
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		outputFile = f
		log.Info().Str("file", *output).Msg("Writing to output file")
	}

	writer, err := batch.NewWriter(outputFile, *format, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create writer")
	}

	processor := batch.NewProcessor(deps.Executor, *workers, !*continueOnError, &log.Logger)
	for result := range processor.Process(ctx, records) {
		if err := writer.Write(result); err != nil {
			log.Error().Err(err).Str("id", result.ID).Msg("Failed to write result")
		}
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to finish output")
	}

	summary := writer.Summary()
	log.Info().
		Int("success", summary.Succeeded).
		Int("errors", summary.Failed).
		Dur("duration", time.Since(startTime)).
		Msg("Batch processing complete")

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func loadRecords(ctx context.Context, input string, smoke bool) []batch.InputRecord {
	if smoke {
		log.Info().Msg("Using built-in smoke records")
		return batch.SmokeRecords()
	}

	var inputFile io.Reader
	if input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(input)
		if err != nil {
			log.Fatal().Err(err).Str("file", input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", input).Msg("Reading input file")
	}

	var records []batch.InputRecord
	for record := range batch.NewReader(inputFile, &log.Logger).ReadAll(ctx) {
		records = append(records, record)
	}
	return records
}

func formatValidator(format string) {
	if format != batch.FormatJSONL && format != batch.FormatSummary {
		log.Fatal().
			Str("format", format).
			Msg("Invalid format. Supported: jsonl, summary")
	}
}

// dryRunAndExit checks every record against the catalogue. No model client
// is created.
func dryRunAndExit(cfg *setup.Config, records []batch.InputRecord) {
	roundsConfig, err := config.LoadRoundsConfigFrom(cfg.RoundsConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load rounds config")
	}

	var rounds []models.RoundInfo
	for _, def := range roundsConfig.Rounds.Definitions {
		if def.IsEnabled() {
			rounds = append(rounds, models.RoundInfo{Name: def.Name, Path: def.Path, Input: models.InputKind(def.Input)})
		}
	}
	validator := batch.NewValidator(rounds)

	errorCount := 0
	for _, record := range records {
		err := record.Error
		if err == nil {
			_, _, err = validator.Prepare(record.Request)
		}
		if err != nil {
			log.Error().
				Int("line", record.LineNumber).
				Str("id", record.Request.ID).
				Err(err).
				Msg("Validation error")
			errorCount++
		}
	}

	if errorCount > 0 {
		log.Fatal().Int("errors", errorCount).Msg("Validation failed")
	}

	log.Info().Msg("Validation successful")
	os.Exit(0)
}
