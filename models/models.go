// models.go - Shared helpers for the storefront entities

package models // Declares the package name

import (
	"time" // Timestamps for defaults

	"github.com/google/uuid"        // Server-assigned identities
	"github.com/shopspring/decimal" // Money values
)

func init() {
	// Money goes over the wire as 49.99, not "49.99"
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is implemented by every entity. Prepare assigns identity and defaults
// before the first write.
type Record interface {
	Prepare(now time.Time)
}

// NewID returns a fresh identity for a record.
func NewID() string { return uuid.NewString() }

// Prepare assigns defaults to rec and validates the result. Both store backends
// call it before inserting.
func Prepare(rec Record, now time.Time) error {
	rec.Prepare(now)
	return Validate(rec)
}

// Patch is a partial update. Fields returns the supplied values keyed by storage
// field name; nothing else is touched.
type Patch interface {
	Fields() map[string]any
}

// Columns lists the storage names a patch touches.
func Columns(p Patch) []string {
	fields := p.Fields()
	cols := make([]string, 0, len(fields))
	for name := range fields {
		cols = append(cols, name)
	}
	return cols
}
