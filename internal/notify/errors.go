package notify

import "errors"

var (
	ErrNoRecipient  = errors.New("no recipient address")
	ErrDialing      = errors.New("error connecting to smtp server")
	ErrStartTLS     = errors.New("error starting tls")
	ErrAuthenticate = errors.New("smtp authentication failed")
	ErrDelivery     = errors.New("error delivering message")
)
