// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/metrics"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/models"
)

// tokenBytes is the amount of randomness in a session token.
const tokenBytes = 32

// sessionService keeps the session table in a [store.SessionRepository].
//
// Expired entries are purged lazily: every Create and Resolve prunes the
// table before using it, and Resolve writes the pruned table back even when
// nothing was looked up successfully.
type sessionService struct {
	sessionRepository store.SessionRepository

	// ttl is added to the current time to compute a new session's expiry.
	ttl time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, ttl time.Duration, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ttl:               ttl,
		now:               time.Now,
		logger:            logger,
	}
}

// Create stores a new session for user and returns its token.
func (s *sessionService) Create(ctx context.Context, user string, role models.Role) (string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.RandomToken(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSessionCreation, err)
	}

	now := s.now()
	table := models.PruneSessions(s.sessionRepository.Load(ctx), now)
	table[token] = models.Session{
		User:    user,
		Role:    role,
		Expires: models.UnixSeconds(now.Add(s.ttl)),
	}

	if err = s.sessionRepository.Save(ctx, table); err != nil {
		log.Err(err).Str("user", user).Msg("error saving new session")
		return "", fmt.Errorf("%w: %w", ErrSessionCreation, err)
	}

	metrics.RecordSessionCreated(role.String())
	log.Debug().Str("user", user).Str("role", role.String()).Msg("session created")
	return token, nil
}

// Resolve returns the user behind the cookieName token in cookieHeader.
// An empty role accepts any role. Without a token the store is not touched.
func (s *sessionService) Resolve(ctx context.Context, cookieHeader, cookieName string, role models.Role) (string, bool) {
	token := utils.CookieValue(cookieHeader, cookieName)
	if token == "" {
		return "", false
	}

	table := models.PruneSessions(s.sessionRepository.Load(ctx), s.now())
	if err := s.sessionRepository.Save(ctx, table); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error persisting pruned sessions")
	}

	session, ok := table[token]
	if !ok {
		return "", false
	}
	if role != "" && session.Role != role {
		return "", false
	}
	return session.User, true
}

// Delete removes token from the table. Unknown tokens are a no-op.
func (s *sessionService) Delete(ctx context.Context, token string) error {
	table := s.sessionRepository.Load(ctx)
	if _, ok := table[token]; !ok {
		return nil
	}

	delete(table, token)
	return s.sessionRepository.Save(ctx, table)
}
