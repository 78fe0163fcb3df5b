package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agbru/arraysum/internal/cli"
	"github.com/agbru/arraysum/internal/config"
	apperrors "github.com/agbru/arraysum/internal/errors"
	"github.com/agbru/arraysum/internal/logging"
	"github.com/agbru/arraysum/internal/ui"
)

// Application represents the arraysum application instance.
type Application struct {
	Config config.AppConfig
	// RunID identifies this invocation in logs and metrics.
	RunID     string
	In        io.Reader
	Out       io.Writer
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader the interactive prompt reads from.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithOutput sets the writer used for help and version output.
func WithOutput(w io.Writer) AppOption {
	return func(a *Application) { a.Out = w }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name. When --help or --version was handled, the
// returned error satisfies IsHelpError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{In: os.Stdin, Out: os.Stdout, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "arraysum"
	cmdArgs := []string{}
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	ran := false
	cmd := newRootCommand(programName, func(cfg config.AppConfig) {
		app.Config = cfg
		ran = true
	})
	cmd.SetArgs(cmdArgs)
	cmd.SetIn(app.In)
	cmd.SetOut(app.Out)
	cmd.SetErr(errWriter)

	if err := cmd.Execute(); err != nil {
		var configErr apperrors.ConfigError
		if !errors.As(err, &configErr) {
			err = apperrors.NewConfigError("%v", err)
		}
		return nil, err
	}
	if !ran {
		return nil, pflag.ErrHelp
	}
	app.RunID = uuid.NewString()
	return app, nil
}

// newRootCommand builds the cobra command carrying every configuration flag.
// onResolved receives the configuration once flags, environment and config
// file have been merged and validated.
func newRootCommand(name string, onResolved func(config.AppConfig)) *cobra.Command {
	cfg := config.Default()
	cmd := &cobra.Command{
		Use:   name,
		Short: "Compare sequential and parallel summation of two random arrays",
		Long: "arraysum fills two arrays with random values, adds them element by element\n" +
			"once sequentially and once in parallel, and reports both durations\n" +
			"together with a sample of the results.",
		Version:       VersionString(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := config.Resolve(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			onResolved(resolved)
			return nil
		},
	}
	cmd.SetVersionTemplate("arraysum {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	config.BindFlags(cmd.Flags(), &cfg)
	return cmd
}

// IsHelpError checks if the error is a help flag error (--help or --version was used).
func IsHelpError(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

// Run executes the benchmark and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	logger := a.newLogger()

	if !a.Config.Quiet {
		if a.Config.Verbose {
			fmt.Fprintln(out, ui.Banner("arraysum "+Version))
		}
		fmt.Fprint(out, "This program will sum two arrays.\n\n")
	}

	n := a.Config.N
	if n == 0 {
		var err error
		n, err = cli.NewPrompter(a.In, out, a.Config.Chunks).ReadElementCount(ctx)
		if err != nil {
			logger.Warn("no element count", logging.Err(err))
			return apperrors.HandleError(err, out)
		}
	}

	// Signals are trapped only once the prompt is answered, so that an
	// interrupt while waiting for input still ends the process at once.
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return a.runBenchmark(ctx, n, logger, out)
}

// newLogger builds the stderr logger in the configured format. The level
// defaults to warn, --verbose raises it to info and --log-level overrides both.
func (a *Application) newLogger() *logging.ZerologAdapter {
	level := zerolog.WarnLevel
	if a.Config.Verbose {
		level = zerolog.InfoLevel
	}
	level = logging.ParseLevel(a.Config.LogLevel, level)

	var logger *logging.ZerologAdapter
	if a.Config.LogFormat == config.LogFormatJSON {
		logger = logging.NewLogger(a.ErrWriter, level, "arraysum")
	} else {
		logger = logging.NewConsoleLogger(a.ErrWriter, level, a.Config.NoColor)
	}
	return logger.With(logging.String("run_id", a.RunID))
}
