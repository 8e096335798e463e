package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewDocName generates a record name in the host's naming-series style:
// an uppercase prefix joined to a short random suffix, e.g. "PROJ-3f2a1b9c".
func NewDocName(prefix string) string {
	id := uuid.New().String()
	return fmt.Sprintf("%s-%s", strings.ToUpper(prefix), id[:8])
}
