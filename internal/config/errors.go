package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidNotifyConfigs  = errors.New("invalid notify configuration")
)
