package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/wordrank/internal/config"
	wrlog "github.com/nao1215/wordrank/internal/log"
	"github.com/nao1215/wordrank/internal/model"
	"github.com/nao1215/wordrank/internal/pipeline"
	"github.com/nao1215/wordrank/internal/report"
	"github.com/nao1215/wordrank/internal/source"
	"github.com/nao1215/wordrank/internal/wordfreq"
	"github.com/spf13/cobra"
)

// errNoEncodingGiven is returned when the encoding prompt hits end of input.
var errNoEncodingGiven = errors.New("no alternative encoding given")

// streams groups the I/O endpoints of one run.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// addRankFlags registers the ranking flags on cmd.
func addRankFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("filter", "f", "",
		"Word filter file, one word per line (matched exactly against lowercase words)")
	cmd.Flags().StringP("format", "F", config.DefaultFormat,
		"Output format: "+strings.Join(report.Formats(), ", "))
	cmd.Flags().IntP("top", "n", 0,
		"Only list the N most frequent words (0 lists all)")
	cmd.Flags().StringP("encoding", "e", config.DefaultEncoding,
		"Text encoding of the input file")
	cmd.Flags().StringP("output", "o", "",
		"Write the result to the specified file instead of stdout")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of goroutines used for counting")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wordrank.yaml, XDG config dir, or home directory)")
	cmd.Flags().String("filter-error", config.DefaultFilterErrorPolicy,
		"What to do when the filter file cannot be read: abort or skip")
	cmd.Flags().Bool("fold-filter-case", false,
		"Lowercase filter entries before matching")
	cmd.Flags().Bool("timing", false,
		"Print the elapsed time to stderr")
	cmd.Flags().Bool("log-json", false,
		"Write log messages to stderr as JSON")
}

// runRankCmd executes the ranking.
func runRankCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoInput) {
			return fmt.Errorf("usage error: %w (see %s --help)", err, cmd.Root().Name())
		}
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := wrlog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.LogJSON {
		logger = wrlog.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRank(ctx, cfg, streams{
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra command flags.
// Flags override config file values only when they were set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently use defaults when no file is found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(cf)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("filter") {
		if cfg.FilterFile, err = flags.GetString("filter"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("top") {
		if cfg.Top, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("filter-error") {
		if cfg.FilterErrorPolicy, err = flags.GetString("filter-error"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("fold-filter-case") {
		if cfg.FoldFilterCase, err = flags.GetBool("fold-filter-case"); err != nil {
			return nil, err
		}
	}

	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Timing, err = flags.GetBool("timing"); err != nil {
		return nil, err
	}
	if cfg.LogJSON, err = flags.GetBool("log-json"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.PromptEncoding = isTerminal(os.Stdin)

	if len(args) > 0 {
		cfg.InputFile = args[0]
	}

	return cfg, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runRank loads the filter, reads the input, runs the pipeline and writes
// the report. Nothing is written to s.out unless every step succeeded.
func runRank(ctx context.Context, cfg *config.Config, s streams, logger *slog.Logger) error {
	startTime := time.Now()

	filter, err := loadFilter(cfg, logger)
	if err != nil {
		return err
	}

	lines, encoding, err := readInput(ctx, cfg, newEncodingPrompter(s.in, s.errOut), logger)
	if err != nil {
		return err
	}

	analysis := pipeline.NewAnalysis(cfg.InputFile, encoding, lines)
	analysis.Filter = filter

	p := pipeline.DefaultPipeline(cfg.Workers, cfg.Top, logger)
	if err := p.Execute(ctx, analysis); err != nil {
		return err
	}

	if err := outputReport(cfg, analysis.Ranking, s.out); err != nil {
		return err
	}

	logger.Debug("ranking complete",
		"source", cfg.InputFile,
		"encoding", encoding,
		"words", len(analysis.Ranking.Entries),
	)

	if cfg.Timing {
		fmt.Fprintf(s.errOut, "Completed in %s\n", time.Since(startTime).Round(time.Millisecond))
	}
	return nil
}

// loadFilter loads the filter file according to the configured policy.
// A nil set with a nil error means no filtering.
func loadFilter(cfg *config.Config, logger *slog.Logger) (wordfreq.FilterSet, error) {
	if cfg.FilterFile == "" {
		return nil, nil
	}

	set, err := source.LoadFilterSet(cfg.FilterFile)
	if err != nil {
		if cfg.FilterErrorPolicy == config.FilterErrorSkip {
			logger.Warn("filter file unavailable, showing unfiltered results",
				"filter", cfg.FilterFile,
				"error", err,
			)
			return nil, nil
		}
		return nil, err
	}

	if cfg.FoldFilterCase {
		set = set.Fold()
	}

	logger.Debug("filter loaded", "filter", cfg.FilterFile, "entries", set.Len())
	return set, nil
}

// readInput reads the input file, asking for another encoding each time
// decoding fails while prompting is enabled. Each attempt re-reads the
// whole file.
func readInput(ctx context.Context, cfg *config.Config, prompt *encodingPrompter, logger *slog.Logger) ([]string, string, error) {
	encoding := cfg.Encoding
	for {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		logger.Debug("reading input", "source", cfg.InputFile, "encoding", encoding)
		lines, err := source.ReadLines(cfg.InputFile, encoding)
		if err == nil {
			return lines, encoding, nil
		}
		if !source.IsDecodingFailure(err) || !cfg.PromptEncoding {
			return nil, "", err
		}

		logger.Debug("decoding failed", "encoding", encoding, "error", err)
		next, perr := prompt.Ask(encoding)
		if perr != nil {
			return nil, "", fmt.Errorf("%w: %w", err, perr)
		}
		encoding = next
	}
}

// encodingPrompter asks the user for an alternative encoding.
type encodingPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// newEncodingPrompter creates a prompter reading answers from in and
// writing questions to out.
func newEncodingPrompter(in io.Reader, out io.Writer) *encodingPrompter {
	return &encodingPrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the prompt for the failed encoding and returns the next
// non-blank answer. It returns errNoEncodingGiven at end of input.
func (p *encodingPrompter) Ask(failed string) (string, error) {
	for {
		fmt.Fprintf(p.out, "Decoding error: %s can't decode. Please specify encoding: ", failed)

		line, err := p.in.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", errNoEncodingGiven
		}
		if err != nil {
			return "", err
		}
	}
}

// outputReport writes the ranking in the configured format.
func outputReport(cfg *config.Config, ranking *model.Ranking, stdout io.Writer) error {
	output := stdout
	if cfg.OutputFile != "" {
		dir := filepath.Dir(cfg.OutputFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // Output path is user-provided
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	writer, err := report.NewWriter(cfg.Format, output)
	if err != nil {
		return err
	}
	if _, err := writer.Write(ranking); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
