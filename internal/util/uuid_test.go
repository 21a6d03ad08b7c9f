package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssessmentIDAcceptsCanonicalForm(t *testing.T) {
	id, err := ParseAssessmentID("7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a")
	require.NoError(t, err)
	assert.Equal(t, "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a", id)
}

func TestParseAssessmentIDLowercasesInput(t *testing.T) {
	id, err := ParseAssessmentID("7F2D3A44-9C1B-4E5F-8A6D-0B1C2D3E4F5A")
	require.NoError(t, err)
	assert.Equal(t, "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a", id)
}

func TestParseAssessmentIDRejectsNonCanonicalForms(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"not a uuid", "not-a-uuid"},
		{"too short", "7f2d3a44-9c1b-4e5f-8a6d"},
		{"unhyphenated", "7f2d3a449c1b4e5f8a6d0b1c2d3e4f5a"},
		{"braced", "{7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a}"},
		{"urn prefixed", "urn:uuid:7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a"},
		{"bad hex", "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4g5a"},
		{"trailing space", "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5 "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAssessmentID(tc.raw)
			require.Error(t, err)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "id", invalid.Field)
			assert.Equal(t, "uuid", invalid.Rule)
		})
	}
}
