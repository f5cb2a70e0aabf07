// Package identity derives stable identity keys for arbitrary values so set
// algorithms (unique, duplicates, diff, intersect) can bucket values whose
// dynamic types are not comparable.
package identity

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key hashes a canonical rendering of v. Two values share a key when their
// dynamic types and printed representations agree.
func Key(v any) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%T|%#v", v, v))
}
