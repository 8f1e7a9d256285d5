package response

import "time"

// isoTime renders optional timestamps the way the mobile client expects:
// RFC 3339 or JSON null.
func isoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
