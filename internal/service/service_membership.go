// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/metrics"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/internal/validators"
	"github.com/MKhiriev/aura-portal/models"
)

// applicationIDBytes gives 12 hex characters.
const applicationIDBytes = 6

type membershipService struct {
	applicationRepository store.ApplicationRepository
	settingsRepository    store.SettingsRepository
	credentials           crypto.CredentialService
	notifier              Notifier
	validator             validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewMembershipService(
	applicationRepository store.ApplicationRepository,
	settingsRepository store.SettingsRepository,
	credentials crypto.CredentialService,
	notifier Notifier,
	validator validators.Validator,
	logger *logger.Logger,
) MembershipService {
	return &membershipService{
		applicationRepository: applicationRepository,
		settingsRepository:    settingsRepository,
		credentials:           credentials,
		notifier:              notifier,
		validator:             validator,
		now:                   time.Now,
		logger:                logger,
	}
}

// Apply stores a new, unapproved application with the default plan and
// then notifies about it. The stored record is kept whatever the
// notification outcome.
func (m *membershipService) Apply(ctx context.Context, form models.ApplicationForm) (NotifyStatus, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(ctx, form); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	apps := m.applicationRepository.Load(ctx)
	for _, app := range apps {
		if strings.EqualFold(app.Username, form.Username) {
			return 0, ErrUsernameTaken
		}
		if strings.EqualFold(app.Email, form.Email) {
			return 0, ErrEmailTaken
		}
	}

	salt, hash, err := m.credentials.Hash(form.Password, nil)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}
	id, err := utils.RandomHex(applicationIDBytes)
	if err != nil {
		return 0, err
	}

	app := models.Application{
		ID: id,
		Credential: models.Credential{
			Username: form.Username,
			Salt:     salt,
			Hash:     hash,
		},
		Email:     form.Email,
		Skill:     form.Skill,
		Level:     form.Level,
		Goal:      form.Goal,
		Concerns:  form.Concerns,
		Approved:  false,
		Plan:      models.DefaultPlan(),
		CreatedAt: m.now().Unix(),
	}

	if err = m.applicationRepository.Save(ctx, append(apps, app)); err != nil {
		log.Err(err).Str("username", form.Username).Msg("error saving application")
		return 0, fmt.Errorf("error saving application: %w", err)
	}
	metrics.RecordApplication()
	log.Info().Str("id", app.ID).Str("username", app.Username).Msg("application stored")

	// no store lock is held while the notifier talks to SMTP
	smtp := m.settingsRepository.Load(ctx).SMTP
	return m.notifier.NotifyApplication(ctx, app, smtp), nil
}

func (m *membershipService) Approve(ctx context.Context, id string) error {
	apps := m.applicationRepository.Load(ctx)
	for i := range apps {
		if apps[i].ID == id {
			apps[i].Approved = true
			return m.applicationRepository.Save(ctx, apps)
		}
	}
	return ErrApplicationNotFound
}

// Delete removes the application with id; the list is saved even when
// nothing matched.
func (m *membershipService) Delete(ctx context.Context, id string) error {
	apps := m.applicationRepository.Load(ctx)
	remaining := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.ID != id {
			remaining = append(remaining, app)
		}
	}
	return m.applicationRepository.Save(ctx, remaining)
}

func (m *membershipService) List(ctx context.Context) []models.Application {
	return m.applicationRepository.Load(ctx)
}

func (m *membershipService) Find(ctx context.Context, username string) (models.Application, bool) {
	app := models.FindApplication(m.applicationRepository.Load(ctx), username)
	if app == nil {
		return models.Application{}, false
	}
	return *app, true
}

// UpdatePlan edits the plan of update.Username. Week texts are read one day
// per line; blank lines are dropped, missing days are kept from the current
// plan and extra lines are cut. An empty week text leaves that week as is.
func (m *membershipService) UpdatePlan(ctx context.Context, update models.PlanUpdate) error {
	if err := m.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	apps := m.applicationRepository.Load(ctx)
	app := models.FindApplication(apps, update.Username)
	if app == nil {
		return ErrApplicationNotFound
	}

	plan := app.Plan.Normalize()
	if update.Title != "" {
		plan.Title = update.Title
	}
	for i, raw := range update.Weeks {
		if raw == "" {
			continue
		}
		plan.Weeks[i].Days = models.FillDays(planLines(raw), plan.Weeks[i].Days)
	}
	app.Plan = plan

	return m.applicationRepository.Save(ctx, apps)
}

// planLines splits raw on any line break and drops blank lines.
func planLines(raw string) []string {
	var lines []string
	for _, line := range strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
