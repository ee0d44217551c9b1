package handlers

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// isDuplicate reports whether err is a unique-constraint violation.
// TranslateError covers the MySQL driver; the string checks cover
// sqlite in tests and older driver versions.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// parseDate accepts either a bare calendar date or a full RFC3339
// timestamp, which is what the dashboard sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
