package job

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maauso/jobboard-api/internal/job/id"
)

// Compile-time check that MemoryRepository implements Repository.
var _ Repository = (*MemoryRepository)(nil)

var (
	// ErrUnsupportedID is returned when a document carries an _id that is
	// not an ObjectID.
	ErrUnsupportedID = errors.New("memory repository: _id must be an ObjectID")
	// ErrDuplicateID is returned when inserting a document whose _id is taken.
	ErrDuplicateID = errors.New("memory repository: duplicate _id")
	// ErrImmutableID is returned when an update tries to change _id.
	ErrImmutableID = errors.New("memory repository: _id is immutable")
)

// MemoryRepository is an in-memory implementation of Repository.
// It uses a map with RWMutex for thread-safe access and keeps insertion order
// for pagination. Suitable for development and testing.
type MemoryRepository struct {
	mu    sync.RWMutex
	jobs  map[primitive.ObjectID]Document
	order []primitive.ObjectID
}

// NewMemoryRepository creates a new in-memory job repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		jobs: make(map[primitive.ObjectID]Document),
	}
}

// List returns one page of jobs in insertion order.
// Returns clones to prevent external mutations.
func (r *MemoryRepository) List(_ context.Context, page int) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Document, 0, PageSize)
	offset := PageOffset(page)
	if offset >= int64(len(r.order)) {
		return result, nil
	}
	for _, oid := range r.order[offset:] {
		if len(result) == PageSize {
			break
		}
		result = append(result, r.jobs[oid].Clone())
	}
	return result, nil
}

// FindByID retrieves a job by its ID.
// Returns a clone to prevent external mutations.
func (r *MemoryRepository) FindByID(_ context.Context, oid primitive.ObjectID) (Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.jobs[oid]
	if !ok {
		return nil, ErrJobNotFound
	}
	return doc.Clone(), nil
}

// Insert stores a clone of doc, generating an _id when absent.
func (r *MemoryRepository) Insert(_ context.Context, doc Document) (InsertResult, error) {
	stored := doc.Clone()
	if stored == nil {
		stored = Document{}
	}

	var oid primitive.ObjectID
	switch v := stored[IDField].(type) {
	case nil:
		oid = id.Generate()
		stored[IDField] = oid
	case primitive.ObjectID:
		oid = v
	default:
		return InsertResult{}, fmt.Errorf("%w: got %T", ErrUnsupportedID, v)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[oid]; exists {
		return InsertResult{}, ErrDuplicateID
	}
	r.jobs[oid] = stored
	r.order = append(r.order, oid)

	return InsertResult{Acknowledged: true, InsertedID: oid}, nil
}

// Delete removes a job from storage.
func (r *MemoryRepository) Delete(_ context.Context, oid primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[oid]; !ok {
		return ErrJobNotFound
	}
	delete(r.jobs, oid)
	for i, o := range r.order {
		if o == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Update merges updates into the stored job.
// Keys are taken literally; dotted paths are not expanded.
func (r *MemoryRepository) Update(_ context.Context, oid primitive.ObjectID, updates Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.jobs[oid]
	if !ok {
		return ErrJobNotFound
	}

	if v, ok := updates[IDField]; ok && !reflect.DeepEqual(v, oid) {
		return ErrImmutableID
	}

	modified := false
	for k, v := range updates {
		if old, exists := doc[k]; exists && reflect.DeepEqual(old, v) {
			continue
		}
		doc[k] = cloneValue(v)
		modified = true
	}
	if !modified {
		return ErrJobNotModified
	}
	return nil
}
