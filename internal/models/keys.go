package models

import "github.com/google/uuid"

// NewKey returns a fresh unique record key. The original tool used the
// wall-clock timestamp, which can collide under rapid successive creates.
func NewKey() string {
	return uuid.NewString()
}
