package http

import (
	"net/http"

	"github.com/MKhiriev/aura-portal/models"
)

func (h *Handler) addEvent(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "event_added", func(r *http.Request) error {
		_, err := h.services.ContentService.AddEvent(r.Context(), eventForm(r))
		return err
	})
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "event_deleted", func(r *http.Request) error {
		return h.services.ContentService.DeleteEvent(r.Context(), formValue(r, "id"))
	})
}

func (h *Handler) addVideo(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "video_added", func(r *http.Request) error {
		upload, file, err := formUpload(r)
		if err != nil {
			return err
		}
		if file != nil {
			defer file.Close()
		}

		_, err = h.services.ContentService.AddVideo(r.Context(), models.VideoForm{
			Title:       formValue(r, "title"),
			Tag:         formValue(r, "tag"),
			Description: formValue(r, "description"),
			Layout:      formValue(r, "layout"),
			VideoURL:    formValue(r, "video_url"),
			File:        upload,
		})
		return err
	})
}

func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "video_deleted", func(r *http.Request) error {
		return h.services.ContentService.DeleteVideo(r.Context(), formValue(r, "id"))
	})
}

func (h *Handler) updateSMTP(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "smtp_saved", func(r *http.Request) error {
		return h.services.SettingsService.UpdateSMTP(r.Context(), smtpForm(r))
	})
}
