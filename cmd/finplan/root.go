package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/businessthis/finplan/internal/calculation"
	"github.com/businessthis/finplan/internal/config"
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/internal/logging"
	"github.com/businessthis/finplan/internal/output"
)

// app carries the state shared by every subcommand
type app struct {
	out    io.Writer
	errOut io.Writer

	rulesFile   string
	format      string
	outFile     string
	logLevel    string
	assumptions bool

	rules  *domain.PlanningRules
	engine *calculation.PlanningEngine
	log    *logrus.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "finplan",
		Short:        "Personal financial planning calculations",
		Long:         "finplan computes safe-to-spend limits, health scores, retirement needs, tax estimates,\nasset allocations, what-if scenarios and investment recommendations.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.rulesFile, "rules", "", "planning rules YAML (default: built-in rules, or $FINPLAN_RULES)")
	flags.StringVarP(&a.format, "format", "f", "console", "output format: console, json, yaml, csv")
	flags.StringVarP(&a.outFile, "out", "o", "", "write the report to a file instead of stdout")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (default: $LOG_LEVEL or warn)")
	flags.BoolVar(&a.assumptions, "assumptions", false, "append the rule assumptions to console output")

	root.AddCommand(
		newSafeSpendCmd(a),
		newHealthCmd(a),
		newRetirementCmd(a),
		newGrowthCmd(a),
		newTaxCmd(a),
		newAllocationCmd(a),
		newWhatIfCmd(a),
		newInvestCmd(a),
		newRulesCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads .env, the logger and the rule set, then builds the engine
func (a *app) setup() error {
	config.LoadEnvFile()

	level := a.logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "warn"
	}
	a.log = logging.New(a.errOut, level, logging.FormatText)

	rulesFile := a.rulesFile
	if rulesFile == "" {
		rulesFile = os.Getenv("FINPLAN_RULES")
	}
	rules, err := config.NewRulesParser().LoadOrDefault(rulesFile)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}
	a.rules = rules

	a.engine = calculation.NewPlanningEngineWithRules(*rules)
	a.engine.SetLogger(logging.ForEngine(a.log))
	a.log.WithField("rules_version", rules.Version).Debug("engine ready")
	return nil
}

// render writes one result with the selected formatter
func (a *app) render(title string, result any) error {
	report := &output.Report{Title: title, Result: result}
	if a.assumptions {
		report.Assumptions = a.rules.GenerateAssumptions()
	}

	if a.outFile != "" {
		f := output.GetFormatterByName(a.format)
		if f == nil {
			return output.Render(io.Discard, a.format, report)
		}
		if err := output.WriteFormatted(f, report, a.outFile); err != nil {
			return err
		}
		fmt.Fprintf(a.errOut, "Report written to %s\n", a.outFile)
		return nil
	}
	return output.Render(a.out, a.format, report)
}

func loadPlan(filename string) (*domain.PlanInput, error) {
	return config.NewInputParser().LoadFromFile(filename)
}

func planTitle(plan *domain.PlanInput, section string) string {
	if plan.Name == "" {
		return section
	}
	return plan.Name + ": " + section
}
