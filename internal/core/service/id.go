package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newSubID mints ids for checklist items and comments, which are embedded in
// their parent task rather than assigned by a repository.
func newSubID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s_%d_%x", prefix, time.Now().UnixMilli(), time.Now().UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("%s_%d_%x", prefix, time.Now().UnixMilli(), b)
}
