package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/faultline/pkg/fault"
	"github.com/ib-77/faultline/pkg/resource"
)

var (
	version = "dev"
	commit  = "none"
)

type app struct {
	configPath string
	panicMode  string
	debug      bool

	cfg    Config
	files  *resource.Files
	logger *zap.Logger
}

// NewRootCmd builds the faultline command tree.
func NewRootCmd() *cobra.Command {
	a := &app{files: resource.New(resource.OSFS{}), cfg: defaultConfig(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "faultline",
		Short: "Recoverable failures and faults on the command line",
		Long: `faultline exercises the two failure channels:
- recoverable failures carried as result values with an error kind
- faults that end the current unit of work and run scope cleanups`,
		Version:           fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup(cmd) },
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.panicMode, "panic-mode", "unwind", "Fault mode: unwind or abort")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newOpenCmd(a),
		newCatCmd(a),
		newKVCmd(a),
		newKindsCmd(a),
		newFaultCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = loadConfig(a.files, a.configPath).Expect("cannot load config")

	flags := cmd.Flags()
	if flags.Changed("panic-mode") {
		a.cfg.PanicMode = a.panicMode
	}
	if flags.Changed("debug") {
		a.cfg.Debug = a.debug
	}

	mode, err := fault.ParseMode(a.cfg.PanicMode)
	if err != nil {
		return err
	}
	if err := fault.SetMode(mode); err != nil {
		return fmt.Errorf("set panic mode: %w", err)
	}

	logger, err := newConsoleLogger(a.cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	a.logger = logger
	fault.SetLogger(logger)

	a.logger.Debug("configured",
		zap.String("panic_mode", mode.String()),
		zap.Duration("kv_timeout", a.cfg.KV.Timeout),
		zap.Bool("kv_read_only", a.cfg.KV.ReadOnly))
	return nil
}

// newConsoleLogger logs at Debug level when debug is set, Error level otherwise.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
