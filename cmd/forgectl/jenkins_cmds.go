/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mikeb26/forgectl/internal/jenkins"
	"github.com/spf13/cobra"
)

func newJenkinsCmd(cliCtx *cliContext) *cobra.Command {
	jenkinsCmd := &cobra.Command{
		Use:   "jenkins",
		Short: "Inspect the jenkins serving a namespace",
	}
	jenkinsCmd.AddCommand(newJenkinsJobsCmd(cliCtx))
	jenkinsCmd.AddCommand(newJenkinsTailCmd(cliCtx))
	return jenkinsCmd
}

func newJenkinsJobsCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs [namespace]",
		Short: "List jenkins views and jobs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := ""
			if len(args) > 0 {
				namespace = args[0]
			}
			waiter, err := cliCtx.jenkinsWaiter(cmd.Context(), namespace)
			if err != nil {
				return err
			}
			views, jobs, err := jenkins.Inventory(cmd.Context(), waiter.Server)
			if err != nil {
				return err
			}
			return printInventory(cmd.OutOrStdout(), views, jobs)
		},
	}
}

func printInventory(out io.Writer, views []jenkins.Item, jobs []jenkins.Item) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintf(w, "view\t%v\t%v\n", v.Name, v.URL)
	}
	for _, j := range jobs {
		fmt.Fprintf(w, "job\t%v\t%v\n", j.Name, j.URL)
	}
	return w.Flush()
}

func newJenkinsTailCmd(cliCtx *cliContext) *cobra.Command {
	var build int64
	var namespace string

	tailCmd := &cobra.Command{
		Use:   "tail <job>",
		Short: "Follow the console log of a job's build until it completes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := args[0]
			waiter, err := cliCtx.jenkinsWaiter(cmd.Context(), namespace)
			if err != nil {
				return err
			}
			waiter.Out = cmd.OutOrStdout()
			result, err := waiter.Tail(cmd.Context(), job, build,
				cliCtx.cfg.Jenkins.BuildTimeout)
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", result, result.Result)
			}
			return err
		},
	}
	tailCmd.Flags().Int64Var(&build, "build", 0, "Build number (default: the last build)")
	tailCmd.Flags().StringVar(&namespace, "jenkins-namespace", "",
		"Namespace jenkins runs in (default: from config)")

	return tailCmd
}
