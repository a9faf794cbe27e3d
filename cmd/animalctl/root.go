package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"animal-tracker/internal/client/store"
	"animal-tracker/internal/platform/logger"
)

const (
	configName = ".animalctl"
	configType = "yaml"
	envPrefix  = "ANIMALCTL"

	cfgKeyServer  = "server"
	cfgKeyTimeout = "timeout"

	defaultServer = "http://localhost:8000"
)

// app junta lo que comparten los subcomandos.
type app struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	v          *viper.Viper
	configFile string
	verbose    bool

	log *zap.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		v:      viper.New(),
		log:    zap.NewNop(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "animalctl",
		Short:         "Manage shelter animal records",
		Long:          `animalctl lists, shows, adds, updates, deletes and exports animal records stored by the animal tracker API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ~/.animalctl.yaml)")
	pf.String("server", defaultServer, "API base URL")
	pf.Duration("timeout", store.DefaultTimeout, "per-request timeout")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	_ = a.v.BindPFlag(cfgKeyServer, pf.Lookup("server"))
	_ = a.v.BindPFlag(cfgKeyTimeout, pf.Lookup("timeout"))

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newPhotoCmd(a),
	)
	return root
}

// init lee config: flag > ANIMALCTL_* > archivo > default.
// Un ~/.animalctl.yaml ausente no es error; un --config ausente sí.
func (a *app) init() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType(configType)
		a.v.AddConfigPath("$HOME")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := zapcore.WarnLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}
	log, err := logger.New(logger.Options{Level: level, Format: logger.FormatText, App: "animalctl", Output: "stderr"})
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) server() string {
	return strings.TrimSpace(a.v.GetString(cfgKeyServer))
}

func (a *app) timeout() time.Duration {
	return a.v.GetDuration(cfgKeyTimeout)
}

// openStore crea el store y trae la lista actual.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	api, err := store.NewHTTPAPI(a.server(), a.timeout())
	if err != nil {
		return nil, err
	}
	s := store.New(api, store.Options{Timeout: a.timeout(), Logger: a.log})
	a.log.Debug("loading animals", zap.String("server", a.server()))
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// confirm pregunta y/N. Con yes=true no pregunta.
func (a *app) confirm(yes bool, format string, args ...any) (bool, error) {
	if yes {
		return true, nil
	}
	fmt.Fprintf(a.out, format+" [y/N]: ", args...)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (a *app) aborted(err error) {
	if err == nil {
		a.printf("aborted\n")
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
