package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID kind prefixes.
const (
	PrefixUser   = "usr_"
	PrefixItem   = "itm_"
	PrefixClaim  = "clm_"
	PrefixReview = "rev_"
)

// NewID generates an opaque identifier: kind prefix, a random component, and
// a hex timestamp component. Uniqueness is overwhelming-probability within an
// installation, not cryptographic or global.
func NewID(prefix string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return prefix + random + strconv.FormatInt(time.Now().UnixMilli(), 16)
}
