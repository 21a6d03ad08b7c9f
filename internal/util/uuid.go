package util

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ParseAssessmentID validates that raw is a canonical hyphen-grouped UUID and
// returns it lowercased, so lookups behave the same regardless of the input
// casing. It runs before any storage access.
func ParseAssessmentID(raw string) (string, error) {
	id, err := parseCanonicalUUID(raw)
	if err != nil {
		return "", NewInvalidInputError("id", "uuid", "assessment id must be a valid identifier")
	}
	return id, nil
}

func parseCanonicalUUID(raw string) (string, error) {
	// uuid.Parse also accepts urn-prefixed, braced and unhyphenated forms;
	// only the 36-char canonical layout is allowed here.
	if len(raw) != 36 {
		return "", errors.New("uuid must be 36 characters")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", err
	}
	return strings.ToLower(parsed.String()), nil
}
