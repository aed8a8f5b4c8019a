/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"fmt"

	"github.com/mikeb26/forgectl/internal/forge"
)

// ValueProvider supplies the value for a property on a given page. A nil
// value leaves the property alone so the server side default applies.
type ValueProvider interface {
	Value(name string, prop forge.PropertyDTO, pageNumber int) (any, error)
}

type ValueProviderFunc func(name string, prop forge.PropertyDTO, pageNumber int) (any, error)

func (f ValueProviderFunc) Value(name string, prop forge.PropertyDTO, pageNumber int) (any, error) {
	return f(name, prop, pageNumber)
}

// DefaultValueProvider never supplies a value.
type DefaultValueProvider struct{}

func (DefaultValueProvider) Value(string, forge.PropertyDTO, int) (any, error) {
	return nil, nil
}

// MapValueProvider answers from Values first, then from Choose (which must
// be one of the property's choices), then from Fallback.
type MapValueProvider struct {
	Values   map[string]any
	Choose   map[string]string
	Fallback ValueProvider
}

func (p MapValueProvider) Value(name string, prop forge.PropertyDTO, pageNumber int) (any, error) {
	if v, ok := p.Values[name]; ok {
		return v, nil
	}
	if want, ok := p.Choose[name]; ok {
		return ChooseValue(name, prop, pageNumber, want)
	}
	if p.Fallback != nil {
		return p.Fallback.Value(name, prop, pageNumber)
	}
	return nil, nil
}

// ChooseValue checks that value is among the choices the server offers for
// prop. When the server has not sent any choices yet (typically the initial
// request, before validate populates them) it returns nil.
func ChooseValue(name string, prop forge.PropertyDTO, pageNumber int, value string) (any, error) {
	choices := prop.ValueChoices
	if len(choices) == 0 {
		choices = prop.TypeaheadData
	}
	if len(choices) == 0 {
		return nil, nil
	}

	for _, choice := range choices {
		switch c := choice.(type) {
		case string:
			if c == value {
				return value, nil
			}
		case map[string]any:
			if text := choiceText(c); text != nil && fmt.Sprint(text) == value {
				return text, nil
			}
		default:
			if fmt.Sprint(c) == value {
				return value, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: choices for property %v on page %v are %v; wanted %v",
		ErrChoiceNotAvailable, name, pageNumber, choices, value)
}

func choiceText(choice map[string]any) any {
	for _, key := range []string{"value", "id", "name"} {
		if v, ok := choice[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
