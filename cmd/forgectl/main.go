/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// forgectl drives the fabric8 forge wizard REST API and follows the
// Jenkins builds the resulting projects trigger.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikeb26/forgectl/internal/config"
	"github.com/mikeb26/forgectl/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliContext holds the state shared by every subcommand of one
// invocation.
type cliContext struct {
	configPath string
	verbose    bool
	forgeURL   string
	namespace  string
	lenient    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	cliCtx := &cliContext{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   config.CommandName,
		Short: "Drive fabric8 forge wizards and follow the builds they trigger",
		Long: `forgectl talks to the fabric8 forge command service to run wizard
commands (such as creating a quickstart project), then follows the
Jenkins pipeline builds of the resulting project, pushing changes to
its git repository to check that they build too.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cliCtx.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = cliCtx.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cliCtx.configPath, "config", "",
		"Config file (default ~/.config/forgectl/config.yaml)")
	flags.BoolVarP(&cliCtx.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&cliCtx.forgeURL, "forge-url", "",
		"Forge service URL (default: looked up in the cluster)")
	flags.StringVarP(&cliCtx.namespace, "namespace", "n", "",
		"User namespace (default: the kubeconfig's)")
	flags.BoolVar(&cliCtx.lenient, "lenient", false,
		"Only log wizard state check failures instead of failing")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCommandsCmd(cliCtx))
	rootCmd.AddCommand(newDescribeCmd(cliCtx))
	rootCmd.AddCommand(newRunCmd(cliCtx))
	rootCmd.AddCommand(newConfigureGitAccountCmd(cliCtx))
	rootCmd.AddCommand(newQuickstartCmd(cliCtx))
	rootCmd.AddCommand(newPushChangeCmd(cliCtx))
	rootCmd.AddCommand(newProjectsCmd(cliCtx))
	rootCmd.AddCommand(newJenkinsCmd(cliCtx))
	rootCmd.AddCommand(newConfigCmd(cliCtx))

	return rootCmd
}

// init loads the config, applies command line overrides and builds the
// logger.
func (cliCtx *cliContext) init() error {
	cfg, err := config.Load(cliCtx.configPath)
	if err != nil {
		return err
	}
	if cliCtx.forgeURL != "" {
		cfg.ForgeURL = cliCtx.forgeURL
	}
	if cliCtx.namespace != "" {
		cfg.Namespace = cliCtx.namespace
	}
	if cliCtx.lenient {
		cfg.Strict = false
	}
	cliCtx.cfg = cfg

	logger, err := logging.New(cfg.Log, cliCtx.verbose)
	if err != nil {
		return err
	}
	cliCtx.logger = logger
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", config.CommandName, err)
		stop()
		os.Exit(1)
	}
}
