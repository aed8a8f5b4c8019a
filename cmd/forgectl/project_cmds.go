/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mikeb26/forgectl/internal/config"
	"github.com/mikeb26/forgectl/internal/e2e"
	"github.com/mikeb26/forgectl/internal/forge"
	"github.com/mikeb26/forgectl/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConfigureGitAccountCmd(cliCtx *cliContext) *cobra.Command {
	var account e2e.Account

	gitCmd := &cobra.Command{
		Use:   "configure-git-account",
		Short: "Register a git account with the forge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged := e2e.AccountFromConfig(cliCtx.cfg)
			if account.Provider != "" {
				merged.Provider = account.Provider
			}
			if account.UserName != "" {
				merged.UserName = account.UserName
			}
			if account.Email != "" {
				merged.Email = account.Email
			}
			if account.Password != "" {
				merged.Password = account.Password
			}
			if merged.Password == "" {
				password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(),
					merged.UserName)
				if err != nil {
					return err
				}
				merged.Password = password
			}

			s, err := cliCtx.support(cmd.Context(), false)
			if err != nil {
				return err
			}
			result, err := s.ConfigureGitAccount(cmd.Context(), merged)
			if err != nil {
				return err
			}
			return printResult(cmd, result.Status, result.Entity, result.JSON)
		},
	}
	flags := gitCmd.Flags()
	flags.StringVar(&account.Provider, "provider", "", "Git provider (default gogs)")
	flags.StringVar(&account.UserName, "user", "", "Git user name")
	flags.StringVar(&account.Email, "email", "", "Git email")
	flags.StringVar(&account.Password, "password", "",
		"Git password (default: $GIT_PASSWORD, else prompted)")

	return gitCmd
}

// readPassword prompts for a password when in is a terminal.
func readPassword(in io.Reader, prompt io.Writer, user string) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", ErrPasswordRequired
	}
	fmt.Fprintf(prompt, "git password for %v: ", user)
	password, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", err
	}
	if len(password) == 0 {
		return "", ErrPasswordRequired
	}
	return string(password), nil
}

func newQuickstartCmd(cliCtx *cliContext) *cobra.Command {
	var projectType string
	var pipeline string

	quickstartCmd := &cobra.Command{
		Use:   "quickstart <prefix>",
		Short: "Create a quickstart project and check that it and a pushed change build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(forge.Pipelines, pipeline) {
				return fmt.Errorf("%w %q; choose one of %q", ErrUnknownPipeline, pipeline,
					forge.Pipelines)
			}
			s, err := cliCtx.support(cmd.Context(), true)
			if err != nil {
				return err
			}
			s.Pipeline = pipeline
			project, err := s.CreateAndBuildProject(cmd.Context(), args[0], projectType)
			if project != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "project %v last build %v\n",
					project.Key(), project.LastBuild)
			}
			return err
		},
	}
	quickstartCmd.Flags().StringVar(&projectType, "type", "vertx",
		"Quickstart type, e.g. vertx or spring-boot")
	quickstartCmd.Flags().StringVar(&pipeline, "pipeline", forge.PipelineCanaryReleaseAndStage,
		"Jenkins pipeline for the project")

	return quickstartCmd
}

func newPushChangeCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "push-change <project>",
		Short: "Push a change to a project and wait for it to build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cliCtx.support(cmd.Context(), true)
			if err != nil {
				return err
			}
			build, err := s.PushChange(cmd.Context(), args[0])
			if build != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", build, build.Result)
			}
			return err
		},
	}
}

func newProjectsCmd(cliCtx *cliContext) *cobra.Command {
	var storePath string

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects forgectl has created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if storePath == "" {
				var err error
				storePath, err = config.ProjectsPath()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrNoProjectStore, err)
				}
			}
			projects, err := store.NewJSONProjectStore(storePath)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrNoProjectStore, err)
			}
			list, err := projects.List()
			if err != nil {
				return err
			}
			return printProjects(cmd.OutOrStdout(), list)
		},
	}
	projectsCmd.Flags().StringVar(&storePath, "store", "",
		"Project history file (default ~/.config/forgectl/projects.json)")

	return projectsCmd
}

func printProjects(out io.Writer, projects []store.Project) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAMESPACE\tNAME\tTYPE\tLAST BUILD\tCREATED")
	for _, p := range projects {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", p.Namespace, p.Name,
			orDash(p.Type), p.LastBuild, p.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
