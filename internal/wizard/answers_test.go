/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikeb26/forgectl/internal/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answersYAML = `
commands:
  fabric8-configure-git-account:
    pages: 2
    values:
      gitProvider: gogs
      gitUserName: gogsadmin
  obsidian-new-quickstart:
    values:
      named: demo
    choose:
      type: vertx
`

func TestLoadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(answersYAML), 0o600))

	answers, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Len(t, answers.Commands, 2)

	vp, pages, err := answers.Provider(forge.CommandConfigureGitAccount)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	v, err := vp.Value("gitUserName", forge.PropertyDTO{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "gogsadmin", v)

	vp, pages, err = answers.Provider(forge.CommandNewQuickstart)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	_, err = vp.Value("type", forge.PropertyDTO{ValueChoices: []any{"rest"}}, 0)
	assert.ErrorIs(t, err, ErrChoiceNotAvailable)
}

func TestAnswersUnknownCommand(t *testing.T) {
	answers, err := ParseAnswers([]byte("{}"))
	require.NoError(t, err)
	_, _, err = answers.Provider("missing")
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestLoadAnswersMissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseAnswersInvalid(t *testing.T) {
	_, err := ParseAnswers([]byte("commands: [unclosed"))
	assert.Error(t, err)
}
