package database

import (
	"github.com/mdouchement/topbrands/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		// An entry without ID is inserted and gets a new ID.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		ItemInteraction
	}

	// An ItemInteraction defines all the methods used to interact with item record(s).
	ItemInteraction interface {
		// FindItem returns the item for the given id.
		FindItem(id uint64) (*model.Item, error)
		// FindItems returns all the items ordered by id (insertion order).
		FindItems() ([]*model.Item, error)
		// FindItemsByName returns all the items having exactly the given name.
		FindItemsByName(name string) ([]*model.Item, error)
	}
)
