package board

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDSource produces note ids. The board does not check for collisions.
type IDSource func() string

// TimeID returns a time-ordered UUIDv7, or the current nanosecond timestamp
// when the random source fails.
func TimeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}
