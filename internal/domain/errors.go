package domain

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports which required fields were absent when an
// operation needed a complete record. The lead flow shows the field list
// to the user instead of submitting a partial lead.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
