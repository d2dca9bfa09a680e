package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases ascii",
			input:    "Warszawa",
			expected: "warszawa",
		},
		{
			name:     "strips polish diacritics",
			input:    "Kraków",
			expected: "krakow",
		},
		{
			name:     "handles stroked l",
			input:    "Łódź",
			expected: "lodz",
		},
		{
			name:     "full diacritic set",
			input:    "Śródmieście Ząbkowice Żoliborz",
			expected: "srodmiescie zabkowice zoliborz",
		},
		{
			name:     "trims whitespace",
			input:    "  Gdańsk  ",
			expected: "gdansk",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "internal spacing kept",
			input:    "Bielsko-Biała",
			expected: "bielsko-biala",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.input))
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{"Warszawa", "Kraków", "Łódź", "Śródmieście", "unknown"}
	for _, in := range inputs {
		once := Name(in)
		assert.Equal(t, once, Name(once), "normalizing %q twice should be stable", in)
	}
}
