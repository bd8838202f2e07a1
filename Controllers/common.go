package Controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BulkDeleteRequest carries the id set for bulk soft deletes.
type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

// ValidIDs filters the request down to positive integer ids.
func (r BulkDeleteRequest) ValidIDs() []int {
	var clean []int
	for _, id := range r.IDs {
		if id > 0 {
			clean = append(clean, id)
		}
	}
	return clean
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

// fallback keeps a trimmed value, or the default when it is blank.
func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}
