package service

import "errors"

var (
	ErrMissingFields = errors.New("required fields are missing")

	// auth
	ErrMissingCredentials = errors.New("username and password are required")
	ErrAdminCredentials   = errors.New("wrong admin credentials")
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrAccountPending     = errors.New("account is not approved yet")
	ErrSessionCreation    = errors.New("error creating session")

	// membership
	ErrUsernameTaken       = errors.New("username already registered")
	ErrEmailTaken          = errors.New("email already registered")
	ErrApplicationNotFound = errors.New("application not found")

	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNoMedia            = errors.New("submission needs a file or a video url")
)
