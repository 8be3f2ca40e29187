package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID produces an opaque unique identifier: a millisecond timestamp in
// base 36 followed by a random suffix. Identifiers sort roughly by creation
// time but nothing in the core depends on that; once assigned they are
// stable and never reused. Uniqueness is not re-checked against the
// document.
func NewID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return prefix + "-" + suffix
}
