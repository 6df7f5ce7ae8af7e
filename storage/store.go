package storage

import (
	"context"
	"errors"

	"medha-admin/models"
)

// ErrNotFound is returned by id-keyed operations when no registrant matches.
var ErrNotFound = errors.New("registrant not found")

// RegistrantStore is the persistence boundary for registrant documents.
// Registrants are created by the public registration flow, so the admin
// surface only lists, updates and deletes.
type RegistrantStore interface {
	// ListAll returns every registrant in store-native order.
	ListAll(ctx context.Context) ([]models.Registrant, error)

	// ListPage returns the page-th slice of size limit (1-based).
	ListPage(ctx context.Context, page, limit int) ([]models.Registrant, error)

	// UpdateByID patches the admin-editable fields of a registrant and
	// returns the post-update document. Empty scalar fields and a nil
	// EventDetails leave the stored values untouched.
	UpdateByID(ctx context.Context, id string, req models.UpdateRegistrantRequest) (models.Registrant, error)

	// DeleteByID removes a registrant, returning ErrNotFound when absent.
	DeleteByID(ctx context.Context, id string) error
}
