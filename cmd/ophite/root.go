package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite"
	"github.com/dmitrymomot/ophite/pkg/config"
	"github.com/dmitrymomot/ophite/pkg/logger"
	"github.com/dmitrymomot/ophite/pkg/random"
	"github.com/dmitrymomot/ophite/pkg/regex"
)

var (
	version = ophite.Version
	commit  = "none"
)

// app carries what every command needs once settings are loaded.
type app struct {
	// environ replaces the process environment when set; tests use it.
	environ map[string]string

	settings config.Settings
	log      *slog.Logger
	engine   *regex.Engine
	rnd      *random.Source
	verbose  bool
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.environ != nil {
		err = config.Parse(&a.settings, a.environ)
		if err == nil {
			err = a.settings.Validate()
		}
	} else {
		a.settings, err = config.LoadSettings()
	}
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	format, err := logger.ParseFormat(a.settings.LogFormat)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithComponent("cli"),
	)

	a.engine = regex.New(
		regex.WithCacheSize(a.settings.RegexCacheSize),
		regex.WithDefaultTimeout(a.settings.RegexTimeout),
	)

	if a.settings.Seed != 0 {
		a.rnd = random.New(a.settings.Seed)
	} else {
		a.rnd = random.NewFromTime()
	}

	a.log.Debug("settings loaded",
		slog.String("log_level", level.String()),
		slog.Bool("hex_upper", a.settings.HexUpper),
		slog.Int("regex_cache_size", a.settings.RegexCacheSize),
		slog.Duration("regex_timeout", a.settings.RegexTimeout),
	)
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ophite",
		Short: "Conversion, encoding, regex and math utilities",
		Long: `ophite converts numbers to and from bytes, encodes hex, base64 and text,
matches and rewrites text with predefined regular expression templates, and
runs a handful of integer and geometry routines.

Settings are read from OPHITE_* environment variables and an optional .env file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("ophite {{.Version}} (%s)\n", commit))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newHexCmd(a),
		newBase64Cmd(a),
		newMatchCmd(a),
		newModifyCmd(a),
		newExtractCmd(a),
		newMathCmd(a),
		newBytesCmd(a),
		newShuffleCmd(a),
		newPromptCmd(a),
		newSerialCmd(a),
		newQRCmd(a),
		newUUIDCmd(a),
	)
	return root
}

func execute() {
	a := &app{}
	root := newRootCmd(a)
	if cmd, err := root.ExecuteC(); err != nil {
		if a.log != nil {
			a.log.Debug("command failed", logger.Operation(cmd.CommandPath()), logger.Kind(err))
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func writeln(w io.Writer, v any) {
	fmt.Fprintln(w, v)
}
