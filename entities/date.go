package entities

import "time"

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is empty or a YYYY-MM-DD date.
func ValidDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
