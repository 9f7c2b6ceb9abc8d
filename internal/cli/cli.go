package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"locstring/internal/config"
	"locstring/internal/fileio"
	"locstring/internal/filewalker"
	"locstring/internal/merge"
	"locstring/internal/parser"
	"locstring/internal/report"
	"locstring/internal/section"
	"locstring/internal/validate"
	"locstring/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errFindings is returned when a check or diff produced findings.
var errFindings = errors.New("validation findings reported")

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	fs := fileio.NewFS("")

	if err := NewRootCmd(cfg, fs, fs).Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around the given configuration and
// file collaborators.
func NewRootCmd(cfg *config.Config, loader fileio.Loader, writer fileio.Writer) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "locstring",
		Short:         "Maintain tagged localization string tables",
		Long:          "Parse, merge, convert and validate localization files in the section/TXT/<LANG> tagged format.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(cfg.LogLevel, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(mergeCmd(cfg, loader, writer))
	rootCmd.AddCommand(convertCmd(cfg, loader, writer))
	rootCmd.AddCommand(incompleteCmd(cfg, loader, writer))
	rootCmd.AddCommand(checkCmd(cfg, loader))
	rootCmd.AddCommand(diffCmd(cfg, loader))
	rootCmd.AddCommand(languagesCmd())

	return rootCmd
}

func setLogLevel(level string, verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// argOr returns args[i] when present, otherwise fallback.
func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

func mergeCmd(cfg *config.Config, loader fileio.Loader, writer fileio.Writer) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "merge [current] [newer] [output]",
		Short: "Overlay newer translations onto the current file",
		Long: `Merges the sections of the newer file onto the current file.
Matching labels take the newer translations; unknown labels are appended.
Missing arguments fall back to the configured file names.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(loader, writer,
				argOr(args, 0, cfg.CurrentFile),
				argOr(args, 1, cfg.NewerFile),
				argOr(args, 2, cfg.OutputFile),
				strict,
			)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "validate the merged document and refuse to write it on the first problem")

	return cmd
}

func convertCmd(cfg *config.Config, loader fileio.Loader, writer fileio.Writer) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "convert [old] [output]",
		Short: "Convert a legacy label/text pair file into the tagged format",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := section.ParseLanguage(lang)
			if err != nil {
				return err
			}
			return runConvert(loader, writer,
				argOr(args, 0, cfg.LegacyFile),
				argOr(args, 1, cfg.OutputFile),
				l,
			)
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", section.PL.String(), "language of the legacy file")

	return cmd
}

func incompleteCmd(cfg *config.Config, loader fileio.Loader, writer fileio.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "incomplete [file] [output]",
		Short: "Write the labels of sections missing a translation, one per line",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncomplete(loader, writer,
				argOr(args, 0, cfg.CurrentFile),
				argOr(args, 1, cfg.IncompleteFile),
			)
		},
	}
}

func checkCmd(cfg *config.Config, loader fileio.Loader) *cobra.Command {
	var format string
	var extensions []string

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate tagged files: labels, completeness, arguments and untranslated text",
		Long: `Checks every given file, and every matching file under given directories.
Exits with status 1 when any finding is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{cfg.CurrentFile}
			}
			files, err := filewalker.NewWalker(extensions...).Expand(args)
			if err != nil {
				return err
			}

			ctx, cancel := setupContext(cmd.Context())
			defer cancel()

			reports, err := runCheck(ctx, loader, files, cfg.WorkerCount)
			if err != nil {
				return err
			}
			return writeReports(cmd, format, reports)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cfg.ReportFormat, "report format: text, tsv or json")
	cmd.Flags().StringSliceVar(&extensions, "ext", filewalker.DefaultExtensions, "file extensions searched in directories")

	return cmd
}

func diffCmd(cfg *config.Config, loader fileio.Loader) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "diff <first> <second>",
		Short: "Compare two clientside label/text files",
		Long: `Reports labels of the first file missing from the second, labels whose
placeholder counts differ and labels whose text is identical in both files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runDiff(loader, args[0], args[1])
			if err != nil {
				return err
			}
			return writeReports(cmd, format, []*report.Report{r})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cfg.ReportFormat, "report format: text, tsv or json")

	return cmd
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages in serialization order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range section.Languages() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", l, l.Tag(), l.DisplayName()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// loadDocument reads and parses one tagged file.
func loadDocument(loader fileio.Loader, name string) (section.Document, error) {
	data, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	doc, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	log.Debug().Str("file", name).Int("sections", len(doc)).Msg("Parsed file")
	return doc, nil
}

// runMerge handles the `merge` command.
func runMerge(loader fileio.Loader, writer fileio.Writer, current, newer, output string, strict bool) error {
	base, err := loadDocument(loader, current)
	if err != nil {
		return err
	}
	incoming, err := loadDocument(loader, newer)
	if err != nil {
		return err
	}

	merged := merge.Sections(base, incoming)

	if strict {
		if err := validate.Document(merged); err != nil {
			return fmt.Errorf("validate merged document: %w", err)
		}
	}

	text, err := section.GenerateDocument(merged)
	if err != nil {
		return fmt.Errorf("generate merged document: %w", err)
	}
	if err := writer.Write(output, text); err != nil {
		return err
	}

	log.Info().
		Str("current", current).
		Str("newer", newer).
		Str("output", output).
		Int("base", len(base)).
		Int("appended", len(merged)-len(base)).
		Msg("Merge complete")

	return nil
}

// runConvert handles the `convert` command.
func runConvert(loader fileio.Loader, writer fileio.Writer, old, output string, lang section.Language) error {
	data, err := loader.Load(old)
	if err != nil {
		return err
	}
	doc, err := parser.ParseLegacy(data, lang)
	if err != nil {
		return fmt.Errorf("convert %s: %w", old, err)
	}

	text, err := section.GenerateDocument(doc)
	if err != nil {
		return fmt.Errorf("generate %s: %w", output, err)
	}
	if err := writer.Write(output, text); err != nil {
		return err
	}

	log.Info().
		Str("input", old).
		Str("output", output).
		Str("language", lang.String()).
		Int("sections", len(doc)).
		Msg("Conversion complete")

	return nil
}

// runIncomplete handles the `incomplete` command.
func runIncomplete(loader fileio.Loader, writer fileio.Writer, file, output string) error {
	doc, err := loadDocument(loader, file)
	if err != nil {
		return err
	}

	var sb strings.Builder
	labels := validate.FindIncompleteSections(doc)
	for _, label := range labels {
		sb.WriteString(label)
		sb.WriteString("\n")
	}

	if err := writer.Write(output, sb.String()); err != nil {
		return err
	}

	log.Info().
		Str("input", file).
		Str("output", output).
		Int("sections", len(doc)).
		Int("incomplete", len(labels)).
		Msg("Incomplete sections written")

	return nil
}

// runCheck parses every file in turn, then validates the documents in
// parallel. A parse error aborts the whole run.
func runCheck(ctx context.Context, loader fileio.Loader, files []string, workers int) ([]*report.Report, error) {
	type parsedFile struct {
		name string
		doc  section.Document
	}

	if len(files) == 0 {
		log.Warn().Msg("No locale files found to check")
	}

	parsed := make([]parsedFile, 0, len(files))
	for _, f := range files {
		doc, err := loadDocument(loader, f)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, parsedFile{name: f, doc: doc})
	}

	log.Info().Int("files", len(parsed)).Int("workers", workers).Msg("Validating documents")

	pool := worker.NewPool[parsedFile, *report.Report](workers, func(ctx context.Context, p parsedFile) (*report.Report, error) {
		return report.ForDocument(p.name, p.doc), nil
	})

	reports := make([]*report.Report, 0, len(parsed))
	for _, task := range pool.Execute(ctx, parsed) {
		if task.Err != nil {
			return nil, fmt.Errorf("validate %s: %w", task.Input.name, task.Err)
		}
		reports = append(reports, task.Result)
	}

	return reports, nil
}

// runDiff handles the `diff` command.
func runDiff(loader fileio.Loader, first, second string) (*report.Report, error) {
	maps := make([]map[string]string, 0, 2)
	for _, name := range []string{first, second} {
		data, err := loader.Load(name)
		if err != nil {
			return nil, err
		}
		m, err := parser.ParseClientside(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		maps = append(maps, m)
	}

	return report.ForClientside(first, second, maps[0], maps[1]), nil
}

func writeReports(cmd *cobra.Command, format string, reports []*report.Report) error {
	if err := report.Write(cmd.OutOrStdout(), format, reports); err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		if !r.OK() {
			failed++
			log.Warn().Str("file", r.File).Int("findings", len(r.Findings)).Msg("Validation findings")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d reports: %w", failed, len(reports), errFindings)
	}
	return nil
}
