package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/config"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/engine"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/platform/logger"
	"github.com/spf13/cobra"
)

// RootOptions is the state shared by every subcommand. It is populated
// before a subcommand runs.
type RootOptions struct {
	ConfigPath string

	Config *config.Config
	Logger *slog.Logger

	Out    io.Writer
	ErrOut io.Writer
}

// NewRootCmd returns the quantity command with all subcommands attached.
// Logs go to errout so out carries only command output.
func NewRootCmd(out, errout io.Writer) *cobra.Command {
	o := &RootOptions{Out: out, ErrOut: errout}

	cmd := &cobra.Command{
		Use:           "quantity",
		Short:         "Parse, convert and render particle physics quantities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return o.Complete()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errout)

	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		"configuration file. Defaults to config.yaml in the working directory when present.")

	cmd.AddCommand(NewCmdRender("quantity", o))
	cmd.AddCommand(NewCmdCatalog("quantity", o))

	return cmd
}

// Complete loads configuration and sets up logging.
func (o *RootOptions) Complete() error {
	cfg, err := config.LoadFromFile(o.ConfigPath)
	if err != nil {
		return err
	}

	l, err := logger.SetupWriter(o.ErrOut, cfg.Server)
	if err != nil {
		return err
	}

	o.Config = cfg
	o.Logger = l
	return nil
}

// Engine builds a quantity engine from the loaded configuration.
func (o *RootOptions) Engine() (*engine.Engine, error) {
	e, err := engine.New(o.Config.Engine, o.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create quantity engine: %w", err)
	}
	return e, nil
}
