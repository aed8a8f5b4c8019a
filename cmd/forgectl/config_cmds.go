/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mikeb26/forgectl/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const redacted = "xxxxx"

func newConfigCmd(cliCtx *cliContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the forgectl config file",
	}
	configCmd.AddCommand(newConfigShowCmd(cliCtx))
	configCmd.AddCommand(newConfigInitCmd(cliCtx))
	return configCmd
}

func newConfigShowCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *cliCtx.cfg
			if cfg.Git.Password != "" {
				cfg.Git.Password = redacted
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(&cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newConfigInitCmd(cliCtx *cliContext) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective config, without the git password, to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cliCtx.configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			_, err := os.Stat(path)
			switch {
			case err == nil && !force:
				return fmt.Errorf("%w: %v", ErrConfigExists, path)
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return err
			}

			cfg := *cliCtx.cfg
			cfg.Git.Password = ""
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %v\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return initCmd
}
