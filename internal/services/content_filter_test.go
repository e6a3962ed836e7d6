package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilter_Check(t *testing.T) {
	f := NewContentFilter()

	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"clean", "Muy rico, le puse más canela", true},
		{"numbers are fine", "Costó 100000 pesos la fiesta", true},
		{"blocked word", "esto es una mierda", false},
		{"blocked word uppercase", "MIERDA total", false},
		{"word inside another word", "shitake no es palabra", true},
		{"link", "mira https://example.com", true},
		{"repeated letters", "siiiiii", true},
		{"repeated punctuation", "wow!!!!!", true},
		{"mentions spam", "no es spam", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Check("comment", tt.text)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestContentFilter_CustomWords(t *testing.T) {
	f := NewContentFilter("cilantro", " ")

	assert.Error(t, f.Check("comment", "odio el cilantro"))
	assert.NoError(t, f.Check("comment", "esto es una mierda"))
}
