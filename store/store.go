// Package store is the generic data-access facade every domain service
// talks to. Operations are parameterized by collection name so a single
// implementation serves users, foods, intakes and daily logs alike, and
// so the backing database never leaks into service code.
package store

import (
	"context"
	"errors"
)

// Collection names.
const (
	UserCollection     = "user"
	FoodCollection     = "food"
	IntakeCollection   = "intake"
	DailyLogCollection = "daystat"
)

// ErrNotFound is returned when a lookup, patch or delete matched no
// document. Callers branch on it with errors.Is.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert collides with a unique index.
// The check-then-create services do is racy; the index is what actually
// holds the line, and this is how the loser finds out.
var ErrDuplicate = errors.New("record already exists")

// Query is a field→value filter. GetManyByQuery always takes a slice of
// them, combined with logical OR; a single filter is a one-element
// slice. There is no overloading on input shape.
type Query map[string]any

// Store exposes one capability per operation so an alternative backing
// store can be substituted without touching service code.
type Store interface {
	// GetOneByID decodes the document with the given id into dest,
	// or returns ErrNotFound.
	GetOneByID(ctx context.Context, collection, id string, dest any) error

	// GetOneByQuery decodes the first document matching query into
	// dest, or returns ErrNotFound.
	GetOneByQuery(ctx context.Context, collection string, query Query, dest any) error

	// GetManyByQuery decodes every document matching any of the
	// queries into dest (a pointer to a slice). No matches is not an
	// error; dest holds an empty slice.
	GetManyByQuery(ctx context.Context, collection string, queries []Query, dest any) error

	// Insert writes a single document. Uniqueness beyond index
	// enforcement is the caller's responsibility.
	Insert(ctx context.Context, collection string, doc any) error

	// Patch applies the document as a $set update to the record with
	// the given id. ErrNotFound if nothing matched.
	Patch(ctx context.Context, collection, id string, doc any) error

	// Delete removes the record with the given id. ErrNotFound if
	// nothing was deleted.
	Delete(ctx context.Context, collection, id string) error

	// DeleteAll wipes the collection and reports how many documents
	// went. Reset tooling only, never production traffic.
	DeleteAll(ctx context.Context, collection string) (int64, error)
}
