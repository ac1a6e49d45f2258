// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paramstore

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// YAMLStore is a file-backed KVStore persisted as a flat string map,
// for tooling (offline config editing) that wants a human-editable
// settings file rather than the engine's own store.
type YAMLStore struct {
	path   string
	values map[string]string
}

// LoadYAMLStore reads path into a YAMLStore. A missing file yields an
// empty store rather than an error, matching how a fresh world has no
// settings file yet.
func LoadYAMLStore(path string) (*YAMLStore, error) {
	s := &YAMLStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Save writes the store back to its path.
func (s *YAMLStore) Save() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *YAMLStore) GetString(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *YAMLStore) SetString(key, value string) {
	s.values[key] = value
}

func (s *YAMLStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
