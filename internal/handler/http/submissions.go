package http

import (
	"net/http"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/models"
)

// addSubmission stores a member's progress video under the session user.
func (h *Handler) addSubmission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetSessionUserFromContext(r.Context())

	if err := h.parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid submission form")
		accessRedirect(w, r, accessUserSubmitErr)
		return
	}

	upload, file, err := formUpload(r)
	if err != nil {
		log.Err(err).Msg("error opening uploaded file")
		accessRedirect(w, r, accessUserSubmitErr)
		return
	}
	if file != nil {
		defer file.Close()
	}

	_, err = h.services.SubmissionService.Add(r.Context(), user, models.SubmissionForm{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		VideoURL:    formValue(r, "video_url"),
		File:        upload,
	})
	if err != nil {
		log.Info().Err(err).Str("user", user).Msg("submission rejected")
		accessRedirect(w, r, accessUserSubmitErr)
		return
	}

	accessRedirect(w, r, accessUserSubmitOK)
}

func (h *Handler) commentSubmission(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "comment_added", func(r *http.Request) error {
		return h.services.SubmissionService.Comment(r.Context(), models.CommentForm{
			SubmissionID: formValue(r, "id"),
			Text:         formValue(r, "comment"),
		})
	})
}

func (h *Handler) deleteSubmission(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "submission_deleted", func(r *http.Request) error {
		return h.services.SubmissionService.Delete(r.Context(), formValue(r, "id"))
	})
}
