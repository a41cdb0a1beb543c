package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/aura-portal/models"
)

// Field names accepted by [FormValidator.Validate] for scoping. They match
// the HTML form input names.
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldEmail        = "email"
	FieldSkill        = "skill"
	FieldGoal         = "goal"
	FieldTitle        = "title"
	FieldDate         = "date"
	FieldLocation     = "location"
	FieldDescription  = "description"
	FieldTag          = "tag"
	FieldSubmissionID = "id"
	FieldComment      = "comment"
)

// FormValidator checks that the required inputs of portal forms are
// non-blank. Values are expected to be trimmed already; whitespace-only
// values still count as blank.
type FormValidator struct {
}

// NewFormValidator returns a [Validator] for the models.*Form types.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the form type. Without fields, every field the
// form requires is checked:
//
//	ApplicationForm  username, password, email, skill, goal
//	LoginForm        username, password
//	EventForm        title, date, location, description, tag
//	VideoForm        title, tag, description
//	SubmissionForm   title, description
//	CommentForm      id, comment
//	PlanUpdate       username
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch form := obj.(type) {
	case models.ApplicationForm:
		return check(fields, []string{FieldUsername, FieldPassword, FieldEmail, FieldSkill, FieldGoal}, map[string]string{
			FieldUsername: form.Username,
			FieldPassword: form.Password,
			FieldEmail:    form.Email,
			FieldSkill:    form.Skill,
			FieldGoal:     form.Goal,
		})
	case *models.ApplicationForm:
		return v.Validate(ctx, *form, fields...)
	case models.LoginForm:
		return check(fields, []string{FieldUsername, FieldPassword}, map[string]string{
			FieldUsername: form.Username,
			FieldPassword: form.Password,
		})
	case models.EventForm:
		return check(fields, []string{FieldTitle, FieldDate, FieldLocation, FieldDescription, FieldTag}, map[string]string{
			FieldTitle:       form.Title,
			FieldDate:        form.Date,
			FieldLocation:    form.Location,
			FieldDescription: form.Description,
			FieldTag:         form.Tag,
		})
	case models.VideoForm:
		return check(fields, []string{FieldTitle, FieldTag, FieldDescription}, map[string]string{
			FieldTitle:       form.Title,
			FieldTag:         form.Tag,
			FieldDescription: form.Description,
		})
	case models.SubmissionForm:
		return check(fields, []string{FieldTitle, FieldDescription}, map[string]string{
			FieldTitle:       form.Title,
			FieldDescription: form.Description,
		})
	case models.CommentForm:
		return check(fields, []string{FieldSubmissionID, FieldComment}, map[string]string{
			FieldSubmissionID: form.SubmissionID,
			FieldComment:      form.Text,
		})
	case models.PlanUpdate:
		return check(fields, []string{FieldUsername}, map[string]string{
			FieldUsername: form.Username,
		})
	default:
		return ErrUnsupportedType
	}
}

// check validates the requested fields, or defaults when none are given.
// Only fields present in values may be requested.
func check(fields, defaults []string, values map[string]string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		value, known := values[f]
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}
	return nil
}
