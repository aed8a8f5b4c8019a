/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"testing"

	"github.com/mikeb26/forgectl/internal/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseValue(t *testing.T) {
	tests := []struct {
		name    string
		prop    forge.PropertyDTO
		value   string
		want    any
		wantErr bool
	}{
		{
			name:  "no choices yet",
			prop:  forge.PropertyDTO{Name: "type"},
			value: "vertx",
			want:  nil,
		},
		{
			name:  "plain string choice",
			prop:  forge.PropertyDTO{ValueChoices: []any{"rest", "vertx"}},
			value: "vertx",
			want:  "vertx",
		},
		{
			name:  "typeahead used when no value choices",
			prop:  forge.PropertyDTO{TypeaheadData: []any{"Canary Release and Stage"}},
			value: "Canary Release and Stage",
			want:  "Canary Release and Stage",
		},
		{
			name: "map choice matched on value key",
			prop: forge.PropertyDTO{ValueChoices: []any{
				map[string]any{"value": "vertx", "name": "Vert.x"},
			}},
			value: "vertx",
			want:  "vertx",
		},
		{
			name: "map choice falls back to id then name",
			prop: forge.PropertyDTO{ValueChoices: []any{
				map[string]any{"id": "spring-boot"},
				map[string]any{"name": "wildfly-swarm"},
			}},
			value: "wildfly-swarm",
			want:  "wildfly-swarm",
		},
		{
			name: "map value key wins over name",
			prop: forge.PropertyDTO{ValueChoices: []any{
				map[string]any{"value": "v1", "name": "vertx"},
			}},
			value:   "vertx",
			wantErr: true,
		},
		{
			name:    "not available",
			prop:    forge.PropertyDTO{ValueChoices: []any{"rest"}},
			value:   "vertx",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChooseValue("type", tt.prop, 1, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrChoiceNotAvailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapValueProviderOrder(t *testing.T) {
	fallbackCalls := 0
	vp := MapValueProvider{
		Values: map[string]any{"named": "demo"},
		Choose: map[string]string{"type": "vertx"},
		Fallback: ValueProviderFunc(func(name string, prop forge.PropertyDTO, page int) (any, error) {
			fallbackCalls++
			return "fallback", nil
		}),
	}

	v, err := vp.Value("named", forge.PropertyDTO{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "demo", v)

	v, err = vp.Value("type", forge.PropertyDTO{ValueChoices: []any{"vertx"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, "vertx", v)

	v, err = vp.Value("other", forge.PropertyDTO{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
	assert.Equal(t, 1, fallbackCalls)
}

func TestDefaultValueProvider(t *testing.T) {
	v, err := DefaultValueProvider{}.Value("anything", forge.PropertyDTO{Value: "x"}, 2)
	assert.NoError(t, err)
	assert.Nil(t, v)
}
