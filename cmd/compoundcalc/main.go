// Command compoundcalc computes compound-interest growth projections and
// renders them as a console summary and table, CSV, JSON, an SVG line chart
// or an HTML report, either as a one-shot CLI run or behind an HTTP API.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cigo/compound-calculator/internal/api"
	"github.com/cigo/compound-calculator/internal/calculation"
	"github.com/cigo/compound-calculator/internal/config"
	"github.com/cigo/compound-calculator/internal/domain"
	"github.com/cigo/compound-calculator/internal/output"
	"github.com/cigo/compound-calculator/pkg/money"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "compoundcalc",
		Short:         "Compound-interest growth projections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalculateCmd(), newServeCmd(), newExampleCmd())
	return root
}

func newCalculateCmd() *cobra.Command {
	var (
		configPath   string
		principal    string
		rate         string
		years        float64
		compounds    float64
		contribution string
		frequency    string
		format       string
		outputPath   string
		locale       string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run a projection from a config file or flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfiguration(configPath, principal, rate, years, compounds, contribution, frequency)
			if err != nil {
				return err
			}
			if locale != "" {
				cfg.Report.Locale = locale
			}
			if format != "" {
				cfg.Report.Format = format
			}
			if cfg.Report.Format == "" {
				cfg.Report.Format = "console"
			}

			engine := calculation.NewEngine()
			if verbose {
				engine.SetLogger(calculation.PrintfLogger{Printf: func(f string, a ...any) {
					fmt.Fprintf(cmd.ErrOrStderr(), f, a...)
				}})
			}

			report, err := engine.RunReport(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			data, err := output.GenerateReport(report, cfg.Report.Format)
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file with scenarios")
	cmd.Flags().StringVar(&principal, "principal", "0", "starting balance (e.g. 10000 or $10,000)")
	cmd.Flags().StringVar(&rate, "rate", "", "nominal annual rate as a percentage (5 means 5%)")
	cmd.Flags().Float64Var(&years, "years", 0, "projection horizon in years (fractional allowed)")
	cmd.Flags().Float64Var(&compounds, "compounds", 12, "compounding periods per year")
	cmd.Flags().StringVar(&contribution, "contribution", "0", "amount added per contribution event")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "contribution frequency: monthly or annual")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: console, csv, json, svg, html")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&locale, "locale", "", "report locale (en-US, de-DE, es-ES, fr-FR)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine details")

	return cmd
}

// buildConfiguration loads the config file when given, otherwise assembles a
// single ad-hoc scenario from the flags. Either path ends in validation.
func buildConfiguration(configPath, principal, rate string, years, compounds float64, contribution, frequency string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if configPath != "" {
		return parser.LoadFromFile(configPath)
	}

	if rate == "" {
		return nil, fmt.Errorf("either --config or --rate and --years are required")
	}

	principalAmount, err := money.Parse(principal)
	if err != nil {
		return nil, fmt.Errorf("invalid --principal %q: %w", principal, err)
	}
	contributionAmount, err := money.Parse(contribution)
	if err != nil {
		return nil, fmt.Errorf("invalid --contribution %q: %w", contribution, err)
	}
	annualRate, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid --rate %q: %w", rate, err)
	}

	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{{
			Name: "projection",
			Input: domain.CalculationInput{
				Principal:             principalAmount.Decimal,
				AnnualRatePercent:     annualRate,
				Years:                 years,
				CompoundsPerYear:      compounds,
				ContributionAmount:    contributionAmount.Decimal,
				ContributionFrequency: domain.Frequency(frequency),
			},
		}},
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (configured via CC_* environment variables)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(calculation.PrintfLogger{Printf: func(f string, a ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), f, a...)
			}})

			router := api.NewRouter(api.NewHandler(engine), cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", cfg.ListenAddr)
			return http.ListenAndServe(cfg.ListenAddr, router)
		},
	}
	return cmd
}

func newExampleCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example YAML configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "compoundcalc.example.yaml", "destination file")
	return cmd
}
