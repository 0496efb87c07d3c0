package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adammathes/webattr/pkg/webns"
)

const version = "0.1.0"

// Exit codes: 0=ok, 1=findings or invalid input, 2=fatal.
const (
	exitOK       = 0
	exitFindings = 1
	exitFatal    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	log    *logrus.Entry
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// exit is raised by commands that finish but report findings.
	exit int
}

func (a *app) fail(code int) {
	if code > a.exit {
		a.exit = code
	}
}

// namespace returns the configured schema, or def when none is set.
func (a *app) namespace(def webns.Schema) (webns.Schema, error) {
	name := a.v.GetString("namespace")
	if name == "" {
		return def, nil
	}
	return webns.ParseSchema(name)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, a := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Fatal: %v\n", err)
		return exitFatal
	}
	return a.exit
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) (*cobra.Command, *app) {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	a := &app{
		v:      viper.New(),
		log:    logger.WithField("subsys", "webattr"),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:           "webattr",
		Short:         "HTML5 and SVG attribute metadata",
		Long:          "webattr - resolve, parse, list and check HTML5 and SVG attributes",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is webattr.yaml in . or $HOME)")
	flags.BoolP("debug", "D", false, "Enable debug messages")
	flags.String("ns", "", "Namespace: "+webns.SchemaNames)

	root.AddCommand(
		newResolveCmd(a),
		newParseCmd(a),
		newListCmd(a),
		newCheckCmd(a),
		newNormalizeCmd(a),
		newVersionCmd(a),
	)
	return root, a
}

// rootKeys are bound from the persistent flags of every command, keyed by
// flag name.
var rootKeys = map[string]string{
	"config": "config",
	"debug":  "debug",
	"ns":     "namespace",
}

// configKeys are the settings a command may take from its own flags, the
// environment or the config file, keyed by flag name.
var configKeys = map[string]string{
	"output":  "output",
	"charset": "charset",
	"strict":  "strict",
}

// bindFlags binds the command's flags to their viper keys.
func (a *app) bindFlags(cmd *cobra.Command) error {
	for flag, key := range rootKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("binding %s: no --%s flag", key, flag)
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	for flag, key := range configKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding %s: %w", key, err)
			}
		}
	}
	return nil
}

// initConfig reads in the config file and environment for the command
// about to run.
func (a *app) initConfig(cmd *cobra.Command) error {
	if err := a.bindFlags(cmd); err != nil {
		return err
	}

	a.v.SetEnvPrefix("webattr")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
	} else {
		a.v.SetConfigName("webattr")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if a.v.GetBool("debug") {
		a.log.Logger.SetLevel(logrus.DebugLevel)
	} else {
		a.log.Logger.SetLevel(logrus.InfoLevel)
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("Using config file")
	}
	return nil
}
