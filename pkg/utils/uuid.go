package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderID returns a unique order identifier. A full UUID is used so
// two finalizes in the same millisecond cannot collide.
func GenerateOrderID() string {
	return "OBJ-" + strings.ToUpper(uuid.New().String())
}
