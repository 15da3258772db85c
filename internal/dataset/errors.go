package dataset

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the input header.
// It is fatal: the service does not start against a malformed table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: required columns missing from header: %s",
		strings.Join(e.Missing, ", "))
}

// checkSchema returns a *SchemaError if any required column is absent.
func checkSchema(colIdx map[string]int, required []string) error {
	var missing []string
	for _, col := range required {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
