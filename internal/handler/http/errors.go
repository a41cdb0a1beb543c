// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrReadingForm is returned when the request body cannot be parsed as a
	// url-encoded or multipart form, including bodies over the upload limit.
	ErrReadingForm = errors.New("error reading form")

	// ErrReadingUpload is returned when the multipart file part cannot be
	// opened.
	ErrReadingUpload = errors.New("error reading uploaded file")
)
