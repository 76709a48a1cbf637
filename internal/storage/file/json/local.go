package json

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/drakos74/porcino/internal/storage"
)

// LocalShard creates in-memory storages that keep the json encoding of the stored values.
func LocalShard() storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return newLocalStorage(), nil
	}
}

type LocalStorage struct {
	files map[storage.Key][]byte
	mutex *sync.RWMutex
}

func newLocalStorage() *LocalStorage {
	return &LocalStorage{
		files: make(map[storage.Key][]byte),
		mutex: new(sync.RWMutex),
	}
}

func (l *LocalStorage) Store(k storage.Key, value interface{}) error {
	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value: %w", err)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.files[k] = bb
	return nil
}

func (l *LocalStorage) Load(k storage.Key, value interface{}) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	v, ok := l.files[k]
	if !ok {
		return fmt.Errorf("file not found '%+v': %w", k, storage.NotFoundErr)
	}
	if err := json.Unmarshal(v, value); err != nil {
		return fmt.Errorf("could not unmarshal value: %s: %w", err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}
