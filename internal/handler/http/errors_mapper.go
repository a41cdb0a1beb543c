package http

import (
	"errors"

	"github.com/MKhiriev/aura-portal/internal/service"
)

// access statuses understood by the landing page, see accessAlert.
const (
	accessAdminOK       = "admin_ok"
	accessAdminError    = "admin_error"
	accessAdminLogout   = "admin_logout"
	accessUserOK        = "user_ok"
	accessUserError     = "user_error"
	accessUserPending   = "user_pending"
	accessUserMissing   = "user_missing"
	accessUserLogout    = "user_logout"
	accessUserSubmitOK  = "user_submit_ok"
	accessUserSubmitErr = "user_submit_error"
)

var loginStatusMap = map[error]string{
	service.ErrMissingCredentials: accessUserMissing,
	service.ErrAdminCredentials:   accessAdminError,
	service.ErrInvalidCredentials: accessUserError,
	service.ErrAccountPending:     accessUserPending,
}

// applyMessageMap holds the message shown under the application form.
var applyMessageMap = map[error]string{
	service.ErrMissingFields: "Faltan campos obligatorios",
	service.ErrUsernameTaken: "Usuario ya registrado",
	service.ErrEmailTaken:    "Email ya registrado",
}

const applyNotifyFailedMessage = "Error enviando email"

func statusFromError(err error, statuses map[error]string, fallback string) string {
	for target, status := range statuses {
		if errors.Is(err, target) {
			return status
		}
	}
	return fallback
}
