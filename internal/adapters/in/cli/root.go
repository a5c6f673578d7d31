// Package cli implements the CLI adapter for boxkeep.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bnema/boxkeep/internal/app"
	"github.com/bnema/boxkeep/internal/boundaries/in"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ControlPlane gives commands access to the controller. The local
// implementation runs the services in-process.
type ControlPlane interface {
	Bindings() in.BindingService
	Close() error
}

// deps are the seams commands are built on.
type deps struct {
	loadConfig func(path string) (app.Config, error)
	serve      func(ctx context.Context, cfg app.Config) error
	open       func(ctx context.Context, cfg app.Config) (ControlPlane, error)
	confirm    func(message string) (bool, error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: app.LoadConfig,
		serve:      app.Run,
		open: func(ctx context.Context, cfg app.Config) (ControlPlane, error) {
			return app.NewKernel(ctx, cfg, app.SetupLogger(cfg))
		},
		confirm: func(message string) (bool, error) {
			ok := false
			err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok)
			return ok, err
		},
	}
}

// rootOptions are the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command for the boxkeep CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "boxkeep",
		Short: "boxkeep - one container per chat user",
		Long: `boxkeep provisions, tracks and destroys one long-lived Docker container
per chat user. Every command is checked against an allowlist of operators.

Run 'boxkeep serve' to expose the HTTP API used by chat front-ends, or use
the container commands to operate on the same store directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCmd(d, opts))
	rootCmd.AddCommand(newCreateCmd(d, opts))
	rootCmd.AddCommand(newDestroyCmd(d, opts))
	rootCmd.AddCommand(newStatusCmd(d, opts))
	rootCmd.AddCommand(newListCmd(d, opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// config loads the configuration and applies flag overrides.
func (o *rootOptions) config(d deps) (app.Config, error) {
	cfg, err := d.loadConfig(o.configPath)
	if err != nil {
		return app.Config{}, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// withControlPlane runs fn against a freshly opened control plane.
func (o *rootOptions) withControlPlane(cmd *cobra.Command, d deps, fn func(ctx context.Context, cp ControlPlane) error) (err error) {
	cfg, err := o.config(d)
	if err != nil {
		return err
	}
	// Local commands only log warnings unless asked otherwise.
	if o.logLevel == "" {
		cfg.Log.Level = log.WarnLevel.String()
	}

	ctx := commandContext(cmd)
	cp, err := d.open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, cp.Close())
	}()

	return fn(ctx, cp)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("boxkeep %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}
