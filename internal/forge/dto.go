/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package forge

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ExecutionRequest is the body posted to validate, next and execute. Inputs
// accumulate across wizard pages; StepIndex names the page being worked on.
type ExecutionRequest struct {
	Resource    string          `json:"resource,omitempty"`
	ProjectName string          `json:"projectName,omitempty"`
	Namespace   string          `json:"namespace,omitempty"`
	Inputs      []InputValueDTO `json:"inputs"`
	StepIndex   *int            `json:"stepIndex,omitempty"`
}

// StepNumber returns the wizard step number or 0 if one is not defined.
func (r *ExecutionRequest) StepNumber() int {
	if r == nil || r.StepIndex == nil {
		return 0
	}
	return *r.StepIndex
}

func (r *ExecutionRequest) SetStepIndex(step int) {
	r.StepIndex = &step
}

func (r ExecutionRequest) String() string {
	return fmt.Sprintf("ExecutionRequest{resource=%q, namespace=%q, step=%v, inputs=%v}",
		r.Resource, r.Namespace, r.StepNumber(), r.Inputs)
}

type InputValueDTO struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

func (v InputValueDTO) String() string {
	return fmt.Sprintf("%v=%v", v.Name, v.Value)
}

// TextValue renders the value the way it is sent in a form post. ok is
// false when there is no value.
func (v InputValueDTO) TextValue() (text string, ok bool) {
	if v.Value == nil {
		return "", false
	}
	if s, isStr := v.Value.(string); isStr {
		return s, true
	}
	return fmt.Sprintf("%v", v.Value), true
}

// AddToForm adds the input to form unless it has no value.
func (v InputValueDTO) AddToForm(form url.Values) {
	text, ok := v.TextValue()
	if !ok {
		return
	}
	form.Add(v.Name, text)
}

// FormFromInputs builds the form-encoded equivalent of a JSON execution
// request's inputs.
func FormFromInputs(inputs []InputValueDTO) url.Values {
	form := url.Values{}
	for _, in := range inputs {
		in.AddToForm(form)
	}
	return form
}

type UIMessageDTO struct {
	Description string `json:"description,omitempty"`
	Input       string `json:"input,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

func (m UIMessageDTO) ValidationMessage() string {
	if m.Description == "" {
		return m.Input
	}
	return m.Input + ": " + m.Description
}

type WizardState struct {
	Valid                 bool     `json:"valid,omitempty"`
	CanMoveToPreviousStep bool     `json:"canMoveToPreviousStep,omitempty"`
	CanMoveToNextStep     bool     `json:"canMoveToNextStep,omitempty"`
	CanExecute            bool     `json:"canExecute,omitempty"`
	Wizard                bool     `json:"wizard,omitempty"`
	Steps                 []string `json:"steps,omitempty"`
}

// ValidationResult is returned by validate. The convenience accessors all
// report false when the server omitted the state.
type ValidationResult struct {
	State    *WizardState   `json:"state,omitempty"`
	Inputs   []PropertyDTO  `json:"inputs"`
	Messages []UIMessageDTO `json:"messages,omitempty"`
}

func (r *ValidationResult) Valid() bool {
	return r != nil && r.State != nil && r.State.Valid
}

func (r *ValidationResult) CanMoveToNextStep() bool {
	return r != nil && r.State != nil && r.State.CanMoveToNextStep
}

func (r *ValidationResult) CanMoveToPreviousStep() bool {
	return r != nil && r.State != nil && r.State.CanMoveToPreviousStep
}

func (r *ValidationResult) CanExecute() bool {
	return r != nil && r.State != nil && r.State.CanExecute
}

// ValidationMessage joins every server message into one line.
func (r *ValidationResult) ValidationMessage() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		msgs = append(msgs, m.ValidationMessage())
	}
	return strings.Join(msgs, ", ")
}

func (r ValidationResult) String() string {
	return fmt.Sprintf("ValidationResult{valid=%v, canMoveToNextStep=%v, canExecute=%v, inputs=%v, messages=%q}",
		r.Valid(), r.CanMoveToNextStep(), r.CanExecute(), propertyNames(r.Inputs),
		r.ValidationMessage())
}

// NextStepResult is returned by next; it describes the page that was just
// moved to.
type NextStepResult struct {
	ValidationResult
}

type WizardResultsDTO struct {
	StepInputs      []CommandInputDTO  `json:"stepInputs,omitempty"`
	StepValidations []ValidationResult `json:"stepValidations,omitempty"`
	StepResults     []WizardState      `json:"stepResults,omitempty"`
}

type VersionDTO struct {
	BackendVersion string `json:"backendVersion,omitempty"`
	ForgeVersion   string `json:"forgeVersion,omitempty"`
}

func (v VersionDTO) String() string {
	return fmt.Sprintf("backend=%v forge=%v", v.BackendVersion, v.ForgeVersion)
}

type CommandInfoDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	DocLocation string `json:"docLocation,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// CommandInputDTO describes a command and the properties of its first page.
type CommandInputDTO struct {
	Metadata *CommandInfoDTO `json:"metadata,omitempty"`
	State    *WizardState    `json:"state,omitempty"`
	Inputs   []PropertyDTO   `json:"inputs"`
}

func (c CommandInputDTO) String() string {
	name := "<nil>"
	if c.Metadata != nil {
		name = c.Metadata.Name
	}
	return fmt.Sprintf("CommandInputDTO{name=%v, inputs=%v}", name,
		propertyNames(c.Inputs))
}

// PropertyDTO is a single input field of a wizard page. Choices are left
// untyped since the server sends either plain strings or objects carrying
// value/id/name keys.
type PropertyDTO struct {
	Name            string `json:"name"`
	Label           string `json:"label,omitempty"`
	Description     string `json:"description,omitempty"`
	Note            string `json:"note,omitempty"`
	RequiredMessage string `json:"requiredMessage,omitempty"`
	ValueType       string `json:"valueType,omitempty"`
	JavaType        string `json:"javaType,omitempty"`
	InputType       string `json:"inputType,omitempty"`
	Value           any    `json:"value,omitempty"`
	Enabled         bool   `json:"enabled"`
	Required        bool   `json:"required"`
	ValueChoices    []any  `json:"valueChoices,omitempty"`
	TypeaheadData   []any  `json:"typeaheadData,omitempty"`
}

func propertyNames(props []PropertyDTO) []string {
	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	return names
}

// ExecutionResult is the outcome of an execute call. Unlike the other calls
// a non-2xx status is not an error here; callers inspect Successful.
type ExecutionResult struct {
	Status int
	Entity string
	// JSON is only set when Entity parses as JSON.
	JSON json.RawMessage
}

func NewExecutionResult(status int, entity []byte) *ExecutionResult {
	ret := &ExecutionResult{
		Status: status,
		Entity: string(entity),
	}
	if len(entity) > 0 && json.Valid(entity) {
		ret.JSON = json.RawMessage(entity)
	}
	return ret
}

func (r *ExecutionResult) Successful() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

func (r ExecutionResult) String() string {
	return fmt.Sprintf("ExecutionResult{status=%v, entity=%q}", r.Status,
		summarizeBody(r.Entity))
}
