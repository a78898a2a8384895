// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/transcat/catalogue"
)

// WriteTo saves db to w.
func WriteTo(w io.Writer, db *catalogue.Database, opts ...SaveOption) error {
	data, err := Save(db, opts...)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}

	return nil
}

// ReadFrom loads a snapshot from r, reading it to EOF.
func ReadFrom(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}

	return Load(data)
}

// SaveFile writes a snapshot of db to path, replacing any existing file.
func SaveFile(path string, db *catalogue.Database, opts ...SaveOption) error {
	data, err := Save(db, opts...)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: save %s: %w", path, err)
	}

	return nil
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", path, err)
	}

	return Load(data)
}
