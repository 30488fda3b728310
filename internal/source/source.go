// Package source loads character records from YAML exports.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/svstats/internal/model"
)

// ErrEmptyRecord is returned for documents with no content.
var ErrEmptyRecord = errors.New("empty character record")

// Load reads one character record and fills in its file metadata.
func Load(path string) (model.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.Record{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Record{}, err
	}
	rec, err := Decode(data)
	if err != nil {
		return model.Record{}, err
	}
	rec.Path = path
	rec.Player = filepath.Base(filepath.Dir(path))
	rec.FileSize = info.Size()
	rec.ModTime = info.ModTime()
	return rec, nil
}

// Decode parses a YAML character document.
func Decode(data []byte) (model.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Record{}, ErrEmptyRecord
	}
	var rec model.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		return model.Record{}, fmt.Errorf("decode character: %w", err)
	}
	return rec, nil
}
