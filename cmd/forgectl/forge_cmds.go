/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"fmt"
	"sort"

	"github.com/mikeb26/forgectl/internal/config"
	"github.com/mikeb26/forgectl/internal/wizard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCommandsCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the forge offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := cliCtx.forgeAPI(cmd.Context())
			if err != nil {
				return err
			}
			ver, err := api.Version(cmd.Context())
			if err != nil {
				return err
			}
			names, err := api.CommandNames(cmd.Context())
			if err != nil {
				return err
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "forge: %v\n", ver)
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newDescribeCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <command>",
		Short: "Show the first page of a forge command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := cliCtx.forgeAPI(cmd.Context())
			if err != nil {
				return err
			}
			info, err := api.CommandInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if info.Metadata != nil {
				fmt.Fprintf(out, "%v: %v\n", info.Metadata.Name, info.Metadata.Description)
			}
			for _, prop := range info.Inputs {
				required := ""
				if prop.Required {
					required = " (required)"
				}
				fmt.Fprintf(out, "  %v%v: %v\n", prop.Name, required, prop.Label)
				if len(prop.ValueChoices) > 0 {
					fmt.Fprintf(out, "    choices: %v\n", prop.ValueChoices)
				}
			}
			return nil
		},
	}
}

func newRunCmd(cliCtx *cliContext) *cobra.Command {
	var answersPath string
	var pages int

	runCmd := &cobra.Command{
		Use:   "run <command>",
		Short: "Run a forge wizard command with answers from a file",
		Long: `Runs a forge wizard command page by page, answering each property
from an answers file:

  commands:
    obsidian-new-quickstart:
      pages: 4
      values:
        named: demo
      choose:
        type: vertx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := args[0]
			if answersPath == "" {
				var err error
				answersPath, err = config.AnswersPath()
				if err != nil {
					return err
				}
			}
			answers, err := wizard.LoadAnswers(answersPath)
			if err != nil {
				return err
			}
			vp, filePages, err := answers.Provider(command)
			if err != nil {
				return err
			}
			if pages <= 0 {
				pages = filePages
			}

			runner, err := cliCtx.forgeRunner(cmd.Context())
			if err != nil {
				return err
			}
			result, err := runner.Execute(cmd.Context(), command, vp, pages)
			if err != nil {
				return err
			}
			return printResult(cmd, result.Status, result.Entity, result.JSON)
		},
	}
	runCmd.Flags().StringVar(&answersPath, "answers", "",
		"Answers file (default ~/.config/forgectl/answers.yaml)")
	runCmd.Flags().IntVar(&pages, "pages", 0,
		"Number of wizard pages (default: from the answers file)")

	return runCmd
}

// printResult writes an execution result, re-encoding a JSON entity as
// YAML for readability.
func printResult(cmd *cobra.Command, status int, entity string, jsonEntity []byte) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status: %v\n", status)
	if len(jsonEntity) == 0 {
		if entity != "" {
			fmt.Fprintln(out, entity)
		}
		return nil
	}
	var doc any
	if err := yaml.Unmarshal(jsonEntity, &doc); err != nil {
		fmt.Fprintln(out, entity)
		return nil
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
