/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Answers is a file of canned wizard answers, e.g.:
//
//	commands:
//	  fabric8-configure-git-account:
//	    pages: 2
//	    values:
//	      gitProvider: gogs
//	      gitUserName: gogsadmin
//	  obsidian-new-quickstart:
//	    pages: 4
//	    values:
//	      named: demo
//	    choose:
//	      type: vertx
type Answers struct {
	Commands map[string]CommandAnswers `yaml:"commands"`
}

type CommandAnswers struct {
	Pages  int               `yaml:"pages"`
	Values map[string]any    `yaml:"values"`
	Choose map[string]string `yaml:"choose"`
}

func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers %v: %w", path, err)
	}
	return ParseAnswers(data)
}

func ParseAnswers(data []byte) (*Answers, error) {
	ret := &Answers{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	if ret.Commands == nil {
		ret.Commands = make(map[string]CommandAnswers)
	}
	return ret, nil
}

// Provider returns the value provider and page count for command. A page
// count of zero in the file means a single page wizard.
func (a *Answers) Provider(command string) (ValueProvider, int, error) {
	ca, ok := a.Commands[command]
	if !ok {
		return nil, 0, fmt.Errorf("%w %v", ErrNoAnswers, command)
	}
	pages := ca.Pages
	if pages <= 0 {
		pages = 1
	}
	return MapValueProvider{Values: ca.Values, Choose: ca.Choose}, pages, nil
}
