// Package id provides identifier generation and parsing for jobs.
// Job identifiers are MongoDB ObjectIDs rendered as 24 hex characters.
package id

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalid is returned when a string is not a well-formed identifier.
var ErrInvalid = errors.New("invalid job ID format")

// Generate creates a new unique job ID.
// Example: 65a1f0c2e4b0a1b2c3d4e5f6
func Generate() primitive.ObjectID {
	return primitive.NewObjectID()
}

// Parse converts a hex string into an ObjectID.
// Returns ErrInvalid unless s is exactly 24 hex characters.
func Parse(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalid
	}
	return oid, nil
}

// IsValid reports whether s is a well-formed job ID.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
