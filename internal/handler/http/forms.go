package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/MKhiriev/aura-portal/models"
)

const (
	uploadField = "video_file"

	// formMemory is how much of a multipart body is kept in memory before
	// parts spill to temporary files.
	formMemory = 8 << 20

	// formOverhead is allowed on top of the upload limit for the other
	// fields and multipart framing.
	formOverhead = 1 << 20
)

// parseForm parses a url-encoded or multipart body into r.PostForm.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if h.maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+formOverhead)
		}
		if err := r.ParseMultipartForm(formMemory); err != nil {
			return fmt.Errorf("%w: %w", ErrReadingForm, err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadingForm, err)
	}
	return nil
}

// formValue returns the trimmed value of key.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

// formChecked reports whether a checkbox named key was submitted.
func formChecked(r *http.Request, key string) bool {
	_, ok := r.PostForm[key]
	return ok
}

// formUpload opens the uploaded video_file part. It returns nil when the
// form carries no file; the caller closes the returned file.
func formUpload(r *http.Request) (*models.Upload, multipart.File, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	file, header, err := r.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrReadingUpload, err)
	}

	return &models.Upload{Filename: header.Filename, Content: file}, file, nil
}

func loginForm(r *http.Request) models.LoginForm {
	return models.LoginForm{
		Username: formValue(r, "username"),
		Password: formValue(r, "password"),
	}
}

func applicationForm(r *http.Request) models.ApplicationForm {
	return models.ApplicationForm{
		Username: formValue(r, "username"),
		Password: formValue(r, "password"),
		Email:    formValue(r, "email"),
		Skill:    formValue(r, "skill"),
		Level:    formValue(r, "level"),
		Goal:     formValue(r, "goal"),
		Concerns: formValue(r, "concerns"),
	}
}

func eventForm(r *http.Request) models.EventForm {
	return models.EventForm{
		Title:       formValue(r, "title"),
		Date:        formValue(r, "date"),
		Location:    formValue(r, "location"),
		Description: formValue(r, "description"),
		Tag:         formValue(r, "tag"),
	}
}

// planUpdate keeps the week textareas untrimmed; blank lines are dropped
// by the membership service.
func planUpdate(r *http.Request) models.PlanUpdate {
	update := models.PlanUpdate{
		Username: formValue(r, "username"),
		Title:    formValue(r, "plan_title"),
	}
	for i := range update.Weeks {
		update.Weeks[i] = r.PostForm.Get(fmt.Sprintf("week%d", i+1))
	}
	return update
}

func smtpForm(r *http.Request) models.SMTPForm {
	return models.SMTPForm{
		Host:       formValue(r, "smtp_host"),
		Port:       formValue(r, "smtp_port"),
		Username:   formValue(r, "smtp_user"),
		Password:   formValue(r, "smtp_pass"),
		FromName:   formValue(r, "smtp_from"),
		AdminEmail: formValue(r, "smtp_admin"),
		Enabled:    formChecked(r, "smtp_enabled"),
		UseTLS:     formChecked(r, "smtp_tls"),
	}
}
