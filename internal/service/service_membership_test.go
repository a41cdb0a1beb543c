package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/mock"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/validators"
	"github.com/MKhiriev/aura-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var anaForm = models.ApplicationForm{
	Username: "ana",
	Password: "pw1",
	Email:    "ana@example.com",
	Skill:    "dominada",
	Level:    "principiante",
	Goal:     "primera dominada",
}

func newTestMembership(t *testing.T, storages *store.Storages, notifier Notifier) *membershipService {
	t.Helper()
	svc := NewMembershipService(
		storages.ApplicationRepository,
		storages.SettingsRepository,
		crypto.NewCredentialService(),
		notifier,
		validators.NewFormValidator(),
		logger.Nop(),
	).(*membershipService)
	svc.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return svc
}

func TestMembership_ApplyApproveLogin(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	notifier := &stubNotifier{status: NotifySkipped}
	membership := newTestMembership(t, storages, notifier)
	sessions := NewSessionService(storages.SessionRepository, 12*time.Hour, logger.Nop())
	auth := NewAuthService(sessions, storages.SettingsRepository, storages.ApplicationRepository,
		crypto.NewCredentialService(), validators.NewFormValidator(), logger.Nop())

	status, err := membership.Apply(ctx, anaForm)
	require.NoError(t, err)
	assert.Equal(t, NotifySkipped, status)
	require.Len(t, notifier.apps, 1)

	apps := membership.List(ctx)
	require.Len(t, apps, 1)
	app := apps[0]
	assert.False(t, app.Approved)
	assert.Len(t, app.ID, 12)
	assert.Equal(t, models.DefaultPlan(), app.Plan)
	assert.Equal(t, int64(1_700_000_000), app.CreatedAt)
	assert.NotEqual(t, "pw1", app.Hash)

	_, err = auth.Login(ctx, models.LoginForm{Username: "ana", Password: "pw1"})
	assert.ErrorIs(t, err, ErrAccountPending)

	require.NoError(t, membership.Approve(ctx, app.ID))

	res, err := auth.Login(ctx, models.LoginForm{Username: "ana", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, res.Role)

	user, ok := sessions.Resolve(ctx, "aura_user_session="+res.Token, "aura_user_session", models.RoleUser)
	require.True(t, ok)
	assert.Equal(t, "ana", user)
}

func TestMembership_ApplyRejections(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	membership := newTestMembership(t, storages, &stubNotifier{})

	_, err := membership.Apply(ctx, anaForm)
	require.NoError(t, err)

	tests := []struct {
		name string
		form models.ApplicationForm
		err  error
	}{
		{"missing goal", func() models.ApplicationForm { f := anaForm; f.Username = "x"; f.Goal = ""; return f }(), ErrMissingFields},
		{"username taken, any case", func() models.ApplicationForm { f := anaForm; f.Username = "ANA"; f.Email = "other@example.com"; return f }(), ErrUsernameTaken},
		{"email taken, any case", func() models.ApplicationForm { f := anaForm; f.Username = "luis"; f.Email = "ANA@example.com"; return f }(), ErrEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := membership.Apply(ctx, tt.form)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.Len(t, membership.List(ctx), 1)
}

func TestMembership_ApplyKeepsRecordWhenNotificationFails(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	membership := newTestMembership(t, storages, &stubNotifier{status: NotifyFailed})

	status, err := membership.Apply(ctx, anaForm)
	require.NoError(t, err)
	assert.Equal(t, NotifyFailed, status)

	_, found := membership.Find(ctx, " Ana ")
	assert.True(t, found)
}

func TestMembership_ApproveAndDelete(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	membership := newTestMembership(t, storages, &stubNotifier{})

	assert.ErrorIs(t, membership.Approve(ctx, "missing"), ErrApplicationNotFound)

	_, err := membership.Apply(ctx, anaForm)
	require.NoError(t, err)
	id := membership.List(ctx)[0].ID

	require.NoError(t, membership.Delete(ctx, "unknown"))
	assert.Len(t, membership.List(ctx), 1)

	require.NoError(t, membership.Delete(ctx, id))
	assert.Empty(t, membership.List(ctx))
}

func TestMembership_UpdatePlan(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	membership := newTestMembership(t, storages, &stubNotifier{})

	_, err := membership.Apply(ctx, anaForm)
	require.NoError(t, err)

	t.Run("unknown or empty user", func(t *testing.T) {
		assert.ErrorIs(t, membership.UpdatePlan(ctx, models.PlanUpdate{Username: "nobody"}), ErrApplicationNotFound)
		assert.ErrorIs(t, membership.UpdatePlan(ctx, models.PlanUpdate{}), ErrMissingFields)
	})

	t.Run("edits weeks", func(t *testing.T) {
		update := models.PlanUpdate{Username: "ANA", Title: "Plan nuevo"}
		update.Weeks[0] = "a\r\n\n  b  \n"
		update.Weeks[2] = "1\n2\n3\n4\n5\n6\n7\n8\n9"

		require.NoError(t, membership.UpdatePlan(ctx, update))

		app, ok := membership.Find(ctx, "ana")
		require.True(t, ok)
		def := models.DefaultPlan()

		assert.Equal(t, "Plan nuevo", app.Plan.Title)
		assert.Equal(t, append([]string{"a", "b"}, def.Weeks[0].Days[2:]...), app.Plan.Weeks[0].Days)
		assert.Equal(t, def.Weeks[1].Days, app.Plan.Weeks[1].Days, "empty text keeps the week")
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, app.Plan.Weeks[2].Days)
		for _, w := range app.Plan.Weeks {
			assert.Len(t, w.Days, models.PlanDays)
		}
	})

	t.Run("empty title keeps title", func(t *testing.T) {
		require.NoError(t, membership.UpdatePlan(ctx, models.PlanUpdate{Username: "ana"}))
		app, _ := membership.Find(ctx, "ana")
		assert.Equal(t, "Plan nuevo", app.Plan.Title)
	})
}

func TestMembership_ApplySaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mock.NewMockApplicationRepository(ctrl)
	settings := mock.NewMockSettingsRepository(ctrl)
	credentials := mock.NewMockCredentialService(ctrl)
	notifier := &stubNotifier{}

	saveErr := errors.New("disk full")
	apps.EXPECT().Load(gomock.Any()).Return(nil)
	credentials.EXPECT().Hash("pw1", nil).Return("salt", "hash", nil)
	apps.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(saveErr)

	svc := NewMembershipService(apps, settings, credentials, notifier, validators.NewFormValidator(), logger.Nop())

	_, err := svc.Apply(context.Background(), anaForm)
	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, notifier.apps, "nothing is notified when the record was not stored")
}
