/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package wizard walks a forge command through its pages: it merges the
// property definitions returned by the server with caller supplied values
// and drives validate -> next -> execute.
package wizard

import (
	"sort"

	"github.com/mikeb26/forgectl/internal/forge"
)

// Page is a set of property values keyed by property name.
type Page map[string]any

// LastPage flattens every input of the request into a single page.
func LastPage(req *forge.ExecutionRequest) Page {
	page := make(Page)
	if req == nil {
		return page
	}
	for _, in := range req.Inputs {
		page[in.Name] = in.Value
	}
	return page
}

func InputsAsMap(inputs []forge.PropertyDTO) map[string]forge.PropertyDTO {
	props := make(map[string]forge.PropertyDTO, len(inputs))
	for _, in := range inputs {
		props[in.Name] = in
	}
	return props
}

// CommandProperties returns the properties described by a command input,
// a validation result or a next step result. A wizard state carries no
// property definitions so it always yields an empty map.
func CommandProperties(source any) map[string]forge.PropertyDTO {
	switch s := source.(type) {
	case *forge.CommandInputDTO:
		if s != nil {
			return InputsAsMap(s.Inputs)
		}
	case *forge.ValidationResult:
		if s != nil {
			return InputsAsMap(s.Inputs)
		}
	case *forge.NextStepResult:
		if s != nil {
			return InputsAsMap(s.Inputs)
		}
	}
	return map[string]forge.PropertyDTO{}
}

// AddPage asks vp for a value for every property and merges the answers
// into inputs.
func AddPage(inputs *[]forge.InputValueDTO, props map[string]forge.PropertyDTO,
	vp ValueProvider, pageNumber int) (Page, error) {

	page, err := CreatePage(props, vp, pageNumber)
	if err != nil {
		return nil, err
	}
	AddPageValues(inputs, page)
	return page, nil
}

// AddPageValues replaces the value of inputs that already exist and appends
// the rest. New inputs are appended in name order so requests are stable.
func AddPageValues(inputs *[]forge.InputValueDTO, page Page) {
	for _, name := range sortedKeys(page) {
		setInputValue(inputs, name, page[name])
	}
}

func setInputValue(inputs *[]forge.InputValueDTO, name string, value any) {
	for i := range *inputs {
		if (*inputs)[i].Name == name {
			(*inputs)[i].Value = value
			return
		}
	}
	*inputs = append(*inputs, forge.InputValueDTO{Name: name, Value: value})
}

func CreatePage(props map[string]forge.PropertyDTO, vp ValueProvider,
	pageNumber int) (Page, error) {

	page := make(Page)
	if err := UpdatePageValues(props, vp, pageNumber, page); err != nil {
		return nil, err
	}
	return page, nil
}

// UpdatePageValues stores every non-nil value vp returns for props into
// page.
func UpdatePageValues(props map[string]forge.PropertyDTO, vp ValueProvider,
	pageNumber int, page Page) error {

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, err := vp.Value(name, props[name], pageNumber)
		if err != nil {
			return err
		}
		if value != nil {
			page[name] = value
		}
	}
	return nil
}

func sortedKeys(page Page) []string {
	keys := make([]string, 0, len(page))
	for k := range page {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
