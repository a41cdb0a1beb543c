// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/aura-portal/internal/logger"
)

// Store persists whole JSON documents as files in a single directory.
//
// One mutex serializes every file operation of the process. The lock covers
// a single read or a single write; a Load followed by a Save is two critical
// sections, so concurrent read-modify-write cycles on the same document may
// lose updates. Use [Update] when one critical section is required.
type Store struct {
	mu     sync.Mutex
	dir    string
	logger *logger.Logger
}

// NewStore returns a Store rooted at dir. The directory is created if
// missing.
func NewStore(dir string, logger *logger.Logger) (*Store, error) {
	logger.Debug().Str("dir", dir).Msg("creating json document store")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	return &Store{dir: dir, logger: logger}, nil
}

// Path returns the file path of document name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether document name is present on disk.
func (s *Store) Exists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load decodes document name into dst.
//
// found is false when the file does not exist. A file that exists but does
// not decode into dst yields found == false and an error wrapping
// [ErrCorruptDocument]; dst may be partially written in that case.
func (s *Store) Load(ctx context.Context, name string, dst any) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(name, dst)
}

// Save encodes v deterministically and atomically replaces document name.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(name, v); err != nil {
		logger.FromContext(ctx).Err(err).Str("document", name).Msg("error saving document")
		return err
	}
	return nil
}

func (s *Store) load(name string, dst any) (bool, error) {
	raw, err := os.ReadFile(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrCorruptDocument, name, err)
	}
	return true, nil
}

func (s *Store) save(name string, v any) error {
	data, err := EncodeDocument(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	return nil
}

// LoadOr returns document name decoded as T, or def when the file is absent
// or unreadable. Corruption is logged at warn level and never returned.
func LoadOr[T any](ctx context.Context, s *Store, name string, def T) T {
	var v T
	found, err := s.Load(ctx, name, &v)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("document", name).Msg("document unreadable, using default")
		return def
	}
	if !found {
		return def
	}
	return v
}

// Update loads document name as T (def when absent or corrupt), passes it
// to fn and saves the result, all inside one critical section. When fn
// returns save == false nothing is written. fn must not call back into s.
func Update[T any](ctx context.Context, s *Store, name string, def T, fn func(T) (T, bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current T
	found, err := s.load(name, &current)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("document", name).Msg("document unreadable, using default")
	}
	if err != nil || !found {
		current = def
	}

	next, save, err := fn(current)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	if err := s.save(name, next); err != nil {
		logger.FromContext(ctx).Err(err).Str("document", name).Msg("error saving document")
		return err
	}
	return nil
}
