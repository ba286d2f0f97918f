package ui

import (
	"strings"
	"testing"
)

var styleFuncs = []struct {
	name string
	fn   func(string) string
}{
	{"Header", Header},
	{"Success", Success},
	{"ErrorMsg", ErrorMsg},
	{"Warning", Warning},
	{"Muted", Muted},
	{"Bold", Bold},
	{"Keyword", Keyword},
	{"Value", Value},
	{"Box", Box},
}

func TestStyleFunctions(t *testing.T) {
	for _, tc := range styleFuncs {
		t.Run(tc.name, func(t *testing.T) {
			input := "mlx-community/Mistral-7B-Instruct-v0.2-4bit"
			result := tc.fn(input)

			if result == "" {
				t.Errorf("%s() returned empty string", tc.name)
			}

			if !strings.Contains(result, input) {
				t.Errorf("%s() result does not contain input text", tc.name)
			}
		})
	}
}

func TestStyleFunctionsEmptyInput(t *testing.T) {
	for _, tc := range styleFuncs {
		t.Run(tc.name+"_empty", func(t *testing.T) {
			// Should not panic on empty input
			result := tc.fn("")
			_ = result
		})
	}
}
