package json

import (
	"path/filepath"

	"github.com/drakos74/porcino/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage stores every key as a json file under <path>/<table>/<shard>.
type BlobStorage struct {
	path  string
	table string
	shard string
}

// BlobShard creates json file storages for the given table under the default storage dir.
func BlobShard(table string) storage.Shard {
	return BlobShardAt(storage.DefaultDir, table)
}

// BlobShardAt creates json file storages for the given table under the given root.
func BlobShardAt(root, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(root, table, shard), nil
	}
}

// NewJsonBlob creates a new json file storage.
// table has the same schema, shard is a logical split
func NewJsonBlob(root, table, shard string) *BlobStorage {
	return &BlobStorage{
		path:  root,
		table: table,
		shard: shard,
	}
}

func (s BlobStorage) dir() string {
	return filepath.Join(s.path, s.table, s.shard)
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	err := Save(s.dir(), k.Path(), value)
	if err == nil {
		log.Debug().Str("path", s.dir()).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir(), k.Path(), value)
}
