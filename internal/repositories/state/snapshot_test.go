package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	st := defaultState()
	st.CurrentUser = &domain.User{UserID: "u-1", Name: "Aziza", Role: domain.RoleKassir, CreatedAt: time.Now().UTC()}
	st.Clients = []domain.Client{{ClientID: "1", FullName: "Olim Karimov", Phone: "+998901234567"}}
	st.CashInOps = []domain.CashIn{{
		OperID:   "CI-1",
		ClientID: "1",
		Currency: domain.UZS,
		Amount:   decimal.NewFromInt(500000),
		Status:   domain.StatusCompleted,
	}}
	st.StudentScore = domain.StudentScore{UserID: "u-1", Score: 25, CorrectCount: 3, ErrorCount: 1, PenaltyStatus: domain.PenaltyNormal}

	require.NoError(t, saveSnapshot(path, st))

	loaded, err := loadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, st.CurrentUser.Name, loaded.CurrentUser.Name)
	assert.Equal(t, st.Clients, loaded.Clients)
	require.Len(t, loaded.CashInOps, 1)
	assert.Equal(t, "CI-1", loaded.CashInOps[0].OperID)
	assert.True(t, st.CashInOps[0].Amount.Equal(loaded.CashInOps[0].Amount))
	assert.Equal(t, st.StudentScore, loaded.StudentScore)
	assert.Equal(t, st.OperationCodes, loaded.OperationCodes)
}

func TestSnapshot_MigratesLegacyClientFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	legacy := `{
		"version": 0,
		"saved_at": "2025-01-10T09:00:00Z",
		"state": {
			"clients": [
				{
					"client_id": "7",
					"fio": "Dilnoza Rahimova",
					"telefon": "+998935551122",
					"pasport_seriya_raqam": "AB1234567",
					"tugilgan_sana": "1995-04-12",
					"manzil": "Toshkent sh.",
					"izoh": "VIP"
				}
			]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	loaded, err := loadSnapshot(path)
	require.NoError(t, err)

	require.Len(t, loaded.Clients, 1)
	c := loaded.Clients[0]
	assert.Equal(t, "7", c.ClientID)
	assert.Equal(t, "Dilnoza Rahimova", c.FullName)
	assert.Equal(t, "+998935551122", c.Phone)
	assert.Equal(t, "AB1234567", c.PassportSeriesNumber)
	assert.Equal(t, "1995-04-12", c.BirthDate)
	assert.Equal(t, "Toshkent sh.", c.Address)
	assert.Equal(t, "VIP", c.Notes)
}

func TestSnapshot_RejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "state": {}}`), 0o644))

	_, err := loadSnapshot(path)
	assert.Error(t, err)
}

func TestNewStore_StartsFreshOnCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path, nil)

	codes, err := s.ListOperationCodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOperationCodes(), codes)

	_, err = s.CurrentUser(context.Background())
	assert.Error(t, err)
}

func TestStore_PersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first := NewStore(path, nil)
	require.NoError(t, first.SetCurrentUser(ctx, domain.User{UserID: "u-9", Name: "Bekzod", Role: domain.RoleKredit}))
	require.NoError(t, first.AddClient(ctx, domain.Client{ClientID: "3", FullName: "Sardor Aliyev"}))

	second := NewStore(path, nil)
	user, err := second.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bekzod", user.Name)

	clients, err := second.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Sardor Aliyev", clients[0].FullName)
}
