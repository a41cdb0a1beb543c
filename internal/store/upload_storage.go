// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/utils"
)

var (
	// VideoExtensions are the accepted video file extensions (lower case).
	VideoExtensions = []string{".mp4", ".webm", ".ogg", ".mov"}

	// ImageExtensions are the accepted image file extensions (lower case).
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
)

// uploadStorage writes uploads into a flat directory under names of the
// form "<unix seconds>_<8 hex><ext>". The original file name only
// contributes its extension.
type uploadStorage struct {
	dir      string
	maxBytes int64
	now      func() time.Time
	logger   *logger.Logger
}

// NewUploadStorage creates the upload directory if needed and returns an
// [UploadStorage] enforcing cfg.MaxUploadBytes.
func NewUploadStorage(cfg config.Storage, logger *logger.Logger) (UploadStorage, error) {
	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating upload storage")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	return &uploadStorage{
		dir:      cfg.UploadDir,
		maxBytes: cfg.MaxUploadBytes,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// AllowedExtension reports whether filename carries an accepted video or
// image extension, case-insensitively.
func AllowedExtension(filename string) bool {
	ext := extension(filename)
	if ext == "" {
		return false
	}
	for _, allowed := range VideoExtensions {
		if ext == allowed {
			return true
		}
	}
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// extension returns the lower-cased extension of a base file name. A
// leading dot alone (".mov") is a hidden file name, not an extension.
func extension(base string) string {
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.ToLower(ext)
}

func (u *uploadStorage) Save(ctx context.Context, filename string, r io.Reader) (string, bool, error) {
	log := logger.FromContext(ctx)

	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if filename == "" || !AllowedExtension(base) {
		log.Debug().Str("filename", filename).Msg("upload rejected: extension not allowed")
		return "", false, nil
	}

	suffix, err := utils.RandomHex(4)
	if err != nil {
		return "", false, err
	}
	stored := strconv.FormatInt(u.now().Unix(), 10) + "_" + suffix + extension(base)
	dest := filepath.Join(u.dir, stored)

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrWritingUpload, err)
	}

	// one byte past the limit is enough to know the upload is too large
	written, copyErr := io.Copy(f, io.LimitReader(r, u.maxBytes+1))
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		os.Remove(dest)
		return "", false, fmt.Errorf("%w: %w", ErrWritingUpload, err)
	}

	if written > u.maxBytes {
		os.Remove(dest)
		log.Warn().Str("filename", filename).Int64("limit", u.maxBytes).Msg("upload rejected: too large")
		return "", false, nil
	}

	log.Info().Str("stored", stored).Int64("bytes", written).Msg("upload stored")
	return stored, true, nil
}

// Delete removes a stored file. Names are reduced to their base so that a
// record can never point outside the upload directory.
func (u *uploadStorage) Delete(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	path := filepath.Join(u.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("file", name).Msg("error deleting upload")
		return err
	}
	return nil
}

func (u *uploadStorage) Dir() string {
	return u.dir
}
