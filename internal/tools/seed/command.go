package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/semantic-product-search/internal/app"
	"github.com/semantic-product-search/internal/catalog"
	"github.com/semantic-product-search/internal/config"
	"github.com/semantic-product-search/internal/repository"
	schemaconfig "github.com/semantic-product-search/pkg/schema/config"
)

type opener func(ctx context.Context, cfg *config.Config, schemaCfg *schemaconfig.Config, logger zerolog.Logger) (repository.ProductRepository, error)

type options struct {
	envFile string
	ci      bool
	open    opener
}

// Result is the machine-readable outcome printed with --ci
type Result struct {
	OK      bool     `json:"ok"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(app.OpenRepository)
}

func newRootCommand(open opener) *cobra.Command {
	opts := &options{open: open}
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Sample catalog seed tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts), newExportCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Create the collection and insert the sample catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := apply(cmd.Context(), opts, cmd.ErrOrStderr())
			printResult(cmd.OutOrStdout(), opts.ci, "seed apply", details, err)
			return err
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show what seeding would do",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := dryRun(opts)
			printResult(cmd.OutOrStdout(), opts.ci, "seed dry-run", details, err)
			return err
		},
	}
}

func newExportCommand(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the sample catalog as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := export(output)
			printResult(cmd.OutOrStdout(), opts.ci, "seed export", details, err)
			return err
		},
	}
	cmd.Flags().StringVar(&output, "output", "products.jsonl", "output JSONL file path")
	return cmd
}

func apply(ctx context.Context, opts *options, logOut io.Writer) ([]string, error) {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return nil, err
	}
	logger := config.NewLoggerWithWriter(logOut, cfg.LogLevel, cfg.LogFormat)

	repo, err := opts.open(ctx, cfg, schemaconfig.GetConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("open %s repository: %w", cfg.VectorBackend, err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing repository")
		}
	}()

	count, err := catalog.NewSeeder(repo, logger).Run(ctx)
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("ensured %s collection %s", cfg.VectorBackend, cfg.CollectionName),
		fmt.Sprintf("inserted %d products", count),
	}, nil
}

func dryRun(opts *options) ([]string, error) {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return nil, err
	}

	details := []string{fmt.Sprintf("would ensure %s collection %s", cfg.VectorBackend, cfg.CollectionName)}
	total := 0
	for _, c := range catalog.Summary() {
		details = append(details, fmt.Sprintf("would insert %d %s products", c.Count, c.Category))
		total += c.Count
	}
	details = append(details, fmt.Sprintf("would insert %d products in total", total))
	return details, nil
}

// export writes one product per line, in catalog order
func export(output string) ([]string, error) {
	f, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	products := catalog.SampleProducts()
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return nil, fmt.Errorf("encode product %s: %w", p.Name, err)
		}
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close output file: %w", err)
	}

	return []string{fmt.Sprintf("exported %d products to %s", len(products), output)}, nil
}

// loadConfig loads envFile into the environment, keeping variables already set,
// then reads and validates the configuration
func loadConfig(envFile string) (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func printResult(w io.Writer, ci bool, title string, details []string, err error) {
	if ci {
		result := Result{OK: err == nil, Title: title, Details: details}
		if err != nil {
			result.Error = err.Error()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
		return
	}

	for _, d := range details {
		fmt.Fprintln(w, d)
	}
	if err != nil {
		fmt.Fprintf(w, "%s failed: %v\n", title, err)
	}
}
