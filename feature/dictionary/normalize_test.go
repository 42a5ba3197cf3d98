package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"macrons folded", "Māori", "maori"},
		{"acute e folded", "café", "cafe"},
		{"uppercase macron folded via lowercasing", "Āwhina", "awhina"},
		{"plain ascii lowercased", "Cat", "cat"},
		{"empty string", "", ""},
		{"unlisted accents pass through", "naïve", "naïve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	once := NormalizeText("Wēllington café")
	assert.Equal(t, once, NormalizeText(once))
}

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hyphens and inner periods folded", "My-Sign.V2.PNG", "my_sign_v2.png"},
		{"single period kept as extension", "Cat-Pic.PNG", "cat_pic.png"},
		{"no periods", "SignFile", "signfile"},
		{"no periods with hyphen", "sign-file", "sign_file"},
		{"three periods keeps only the last", "a.b.c.png", "a_b_c.png"},
		{"already normalized", "my_sign.png", "my_sign.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFilename(tt.input))
		})
	}
}
