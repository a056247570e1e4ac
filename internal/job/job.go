// Package job provides the Job document type and the repository port used to
// persist jobs, with MongoDB and in-memory implementations.
// Jobs are opaque documents: apart from the storage-assigned identifier under
// the "_id" key, no field is interpreted.
package job

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maauso/jobboard-api/internal/job/id"
)

// IDField is the document key holding the storage-assigned identifier.
const IDField = "_id"

// PageSize is the maximum number of jobs returned by a single List call.
const PageSize = 2

// ErrInvalidID is returned when a job identifier is not well formed.
var ErrInvalidID = id.ErrInvalid

// Document is a job as stored: an arbitrary mapping of fields.
type Document map[string]any

// InsertResult is the outcome of inserting a new job.
type InsertResult struct {
	// Acknowledged reports whether storage confirmed the write.
	Acknowledged bool `json:"acknowledged"`
	// InsertedID is the identifier assigned to the new job.
	InsertedID any `json:"insertedId"`
}

// ParseID validates a client supplied identifier.
// Returns ErrInvalidID if s is not a well-formed ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	return id.Parse(s)
}

// PageOffset returns how many jobs List skips for the given page.
// Negative pages are treated as page 0.
func PageOffset(page int) int64 {
	if page < 0 {
		page = 0
	}
	return int64(page) * PageSize
}

// Clone creates a deep copy of the document.
// Nested documents and arrays are copied; scalar values are shared.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Document:
		return val.Clone()
	case map[string]any:
		return map[string]any(Document(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
