package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {
	b, err := read(path, key, v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	return b
}

// Load loads the config for the given key out of the given directory.
func Load(dir, key string, v interface{}) error {
	_, err := read(dir, key, v)
	return err
}

func read(dir, key string, v interface{}) ([]byte, error) {
	b, err := ioutil.ReadFile(filepath.Join(dir, fmt.Sprintf("%s.json", key)))
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	log.Info().Str("config", key).Str("dir", dir).Msg("loaded config")

	return b, nil
}
