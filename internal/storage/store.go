package storage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	// ModelDir is the table for trained network snapshots.
	ModelDir = "models"
)

var (
	// DefaultDir is the root of the file storage.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key of a stored value.
type Key struct {
	Hash  string `json:"hash"`
	Label string `json:"label"`
}

// NewKey creates a key with a unique hash for the given label.
func NewKey(label string) Key {
	return Key{
		Hash:  uuid.New().String(),
		Label: label,
	}
}

// Path returns the file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s", k.Label, k.Hash)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
