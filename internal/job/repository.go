package job

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrJobNotFound is returned when no job matches the given ID.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobNotModified is returned when an update matched a job but
	// changed none of its fields.
	ErrJobNotModified = errors.New("job not modified")
)

// Repository defines the interface for job persistence.
// It acts as a port in the hexagonal architecture pattern.
type Repository interface {
	// List returns at most PageSize jobs, skipping PageOffset(page) jobs.
	// The result is never nil.
	List(ctx context.Context, page int) ([]Document, error)

	// FindByID retrieves a job by its unique identifier.
	// Returns ErrJobNotFound if the job does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (Document, error)

	// Insert stores doc as a new job. The identifier is assigned by storage
	// unless doc already carries one.
	Insert(ctx context.Context, doc Document) (InsertResult, error)

	// Delete removes a job from storage.
	// Returns ErrJobNotFound unless exactly one job was removed.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Update overwrites every field present in updates, leaving other
	// fields untouched. Returns ErrJobNotFound if the job does not exist
	// and ErrJobNotModified if no field changed.
	Update(ctx context.Context, id primitive.ObjectID, updates Document) error
}
