// Package cmd provides the root command and CLI setup for synmut.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"synmut.dev/pkg/synmut/internal/adapter"
	"synmut.dev/pkg/synmut/internal/controller"
	"synmut.dev/pkg/synmut/internal/domain"
	"synmut.dev/pkg/synmut/internal/domain/mutagens"
	"synmut.dev/pkg/synmut/internal/fixtures"
	m "synmut.dev/pkg/synmut/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var linter adapter.LinterAdapter
var orchestrator domain.Orchestrator
var mutagen domain.Mutagen
var workflow domain.Workflow
var ui controller.UI

// linterErr holds the configuration error of the selected engine, reported
// when a command needs the linter.
var linterErr error

// operatorNames is a root-level flag restricting the mutation operators.
var operatorNames []string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()

	opts := linterOptionsFromConfig()
	opts.FS = fsAdapter

	linter, linterErr = adapter.NewLinterAdapter(opts)
	if linterErr != nil {
		linter = adapter.NewTreeSitterLinter(opts.Rules, fsAdapter)
	}

	mutagen = domain.NewMutagen()
	orchestrator = domain.NewOrchestrator(linter, fsAdapter, ui, mutagen)
	workflow = domain.NewWorkflow(ui, orchestrator, mutagen)
}

const operatorsHelp = `Mutation operators (repeat --operator to select several, default: all):
  - remove-semicolons, assignment-to-equality, remove-return,
    remove-function-name, remove-open-parens, remove-closing-braces,
    remove-colons, double-to-single-quotes`

const rootLongDescription = `Synmut tests a JavaScript lint configuration. It lints a suite of valid
snippets, known-bad snippets and mutants generated from the valid ones, then
checks that every snippet was accepted or rejected as expected.

Run without a subcommand to execute the full suite.

` + operatorsHelp

const runLongDescription = `Run the lint suite, then lint the given files (default: the "files" config list).

` + operatorsHelp

const listLongDescription = `List the mutations generated from the seed snippets without linting them.

` + operatorsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "synmut",
		Short:             "Syntax-based lint testing for JavaScript",
		Long:              rootLongDescription,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupObservability,
		RunE:              runSuite,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&operatorNames, operatorFlagName, "m", viper.GetStringSlice(operatorsConfigKey), "mutation operator to apply (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(operatorFlagName), operatorsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func setupObservability(_ *cobra.Command, _ []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if configReadErr != nil {
		slog.Error("Failed to read config file", "file", configFileName, "error", configReadErr)
	}

	if !viper.GetBool(traceEnabledConfigKey) {
		return nil
	}

	shutdown, err := configureTracing(logWriter)
	if err != nil {
		return err
	}

	shutdownTracing = shutdown

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if shutdownErr := shutdownTracing(context.Background()); shutdownErr != nil {
		slog.Error("Failed to flush traces", "error", shutdownErr)
	}

	if err != nil {
		os.Exit(1)
	}
}

// runSuite runs the fixture suite and lints the target files in args, or the
// configured files when args is empty.
func runSuite(cmd *cobra.Command, args []string) error {
	if linterErr != nil {
		return linterErr
	}

	store, err := loadFixtures()
	if err != nil {
		return err
	}

	operators, err := mutagens.Resolve(viper.GetStringSlice(operatorsConfigKey)...)
	if err != nil {
		return err
	}

	files := parsePaths(args)
	if len(files) == 0 {
		files = parsePaths(viper.GetStringSlice(filesConfigKey))
	}

	return workflow.Run(cmd.Context(), domain.RunArgs{
		Fixtures:  store,
		Files:     files,
		Operators: operators,
	})
}

// loadFixtures returns the fixture file named in config, or the embedded set.
func loadFixtures() (*fixtures.Store, error) {
	path := viper.GetString(fixturesFileKey)
	if path == "" {
		return fixtures.Load()
	}

	store, err := fixtures.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	return store, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
