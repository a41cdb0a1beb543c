package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/aura-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplication() models.ApplicationForm {
	return models.ApplicationForm{
		Username: "ana",
		Password: "secret",
		Email:    "ana@example.com",
		Skill:    "Dominadas",
		Goal:     "primera dominada",
	}
}

func TestNewFormValidator(t *testing.T) {
	require.NotNil(t, NewFormValidator())
}

func TestValidate_ApplicationForm(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ApplicationForm)
		wantErr error
		field   string
	}{
		{name: "valid", mutate: func(*models.ApplicationForm) {}},
		{name: "level and concerns optional", mutate: func(f *models.ApplicationForm) { f.Level, f.Concerns = "", "" }},
		{name: "missing username", mutate: func(f *models.ApplicationForm) { f.Username = "" }, wantErr: ErrMissingField, field: "username"},
		{name: "blank password", mutate: func(f *models.ApplicationForm) { f.Password = "   " }, wantErr: ErrMissingField, field: "password"},
		{name: "missing email", mutate: func(f *models.ApplicationForm) { f.Email = "" }, wantErr: ErrMissingField, field: "email"},
		{name: "missing skill", mutate: func(f *models.ApplicationForm) { f.Skill = "" }, wantErr: ErrMissingField, field: "skill"},
		{name: "missing goal", mutate: func(f *models.ApplicationForm) { f.Goal = "" }, wantErr: ErrMissingField, field: "goal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validApplication()
			tt.mutate(&form)

			err := v.Validate(ctx, form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_PointerForm(t *testing.T) {
	form := validApplication()
	form.Goal = ""

	err := NewFormValidator().Validate(context.Background(), &form)

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestValidate_OtherForms(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		form    any
		wantErr error
	}{
		{name: "login ok", form: models.LoginForm{Username: "a", Password: "b"}},
		{name: "login missing password", form: models.LoginForm{Username: "a"}, wantErr: ErrMissingField},
		{name: "event ok", form: models.EventForm{Title: "t", Date: "d", Location: "l", Description: "x", Tag: "g"}},
		{name: "event missing tag", form: models.EventForm{Title: "t", Date: "d", Location: "l", Description: "x"}, wantErr: ErrMissingField},
		{name: "video ok without media", form: models.VideoForm{Title: "t", Tag: "g", Description: "d"}},
		{name: "video missing description", form: models.VideoForm{Title: "t", Tag: "g"}, wantErr: ErrMissingField},
		{name: "submission ok", form: models.SubmissionForm{Title: "t", Description: "d"}},
		{name: "submission missing title", form: models.SubmissionForm{Description: "d"}, wantErr: ErrMissingField},
		{name: "comment ok", form: models.CommentForm{SubmissionID: "sub_1", Text: "bien"}},
		{name: "comment missing text", form: models.CommentForm{SubmissionID: "sub_1"}, wantErr: ErrMissingField},
		{name: "plan update missing username", form: models.PlanUpdate{Title: "x"}, wantErr: ErrMissingField},
		{name: "unsupported", form: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewFormValidator()
	form := models.ApplicationForm{Username: "ana"}

	assert.NoError(t, v.Validate(context.Background(), form, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), form, FieldUsername, FieldEmail), ErrMissingField)
	assert.ErrorIs(t, v.Validate(context.Background(), form, "shoe_size"), ErrUnknownField)
}
