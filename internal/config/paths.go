/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigFile   = "config.yaml"
	ProjectsFile = "projects.json"
	AnswersFile  = "answers.yaml"
)

func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}
	return filepath.Join(homeDir, ".config", CommandName), nil
}

func DefaultPath() (string, error) {
	return inConfigDir(ConfigFile)
}

func ProjectsPath() (string, error) {
	return inConfigDir(ProjectsFile)
}

func AnswersPath() (string, error) {
	return inConfigDir(AnswersFile)
}

func inConfigDir(name string) (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, name), nil
}

// ProjectDir is where a generated project is cloned to.
func (c *Config) ProjectDir(project string) string {
	return filepath.Join(c.BaseDir, "target", "projects", project)
}
