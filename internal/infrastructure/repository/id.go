package repository

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newID returns an id unique within a process lifetime, in the format
// <prefix>_<unix_millis>_<8 hex chars>.
func newID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: nanosecond timestamp alone
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%d_%x", prefix, time.Now().UnixMilli(), b)
}
