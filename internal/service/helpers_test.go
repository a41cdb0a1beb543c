package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/aura-portal/internal/config"
	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/models"
	"github.com/stretchr/testify/require"
)

// newTestStorages returns storages rooted in a fresh temp directory with
// every document seeded and admin/admin as the admin credential.
func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()

	root := t.TempDir()
	storages, err := store.NewStorages(config.Storage{
		DataDir:        filepath.Join(root, "data"),
		UploadDir:      filepath.Join(root, "uploads"),
		MaxUploadBytes: 1 << 20,
	}, logger.Nop())
	require.NoError(t, err)

	err = storages.EnsureDataFiles(context.Background(), crypto.NewCredentialService(), store.AdminSeed{Username: "admin", Password: "admin"})
	require.NoError(t, err)

	return storages
}

// fakeClock is a settable time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// stubNotifier records applications and returns a fixed status.
type stubNotifier struct {
	status NotifyStatus
	apps   []models.Application
}

func (n *stubNotifier) NotifyApplication(_ context.Context, app models.Application, _ models.SMTPSettings) NotifyStatus {
	n.apps = append(n.apps, app)
	return n.status
}
