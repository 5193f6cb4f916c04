package trainingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListCashIn_MapsWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cash-in", r.URL.Path)
		assert.Equal(t, "404", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 200,
			"data": {"items": [{
				"id": 42,
				"operation_date": "2025-06-01 10:30:00",
				"operator_name": "Aziza Yusupova",
				"client_id": 7,
				"client_name": "Olim Karimov",
				"currency": "UZS",
				"amount": "500000",
				"purpose": "Hisob to'ldirish",
				"status": "completed"
			}]}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	ops, err := c.ListCashIn(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, "CI-42", op.OperID)
	assert.Equal(t, "7", op.ClientID)
	assert.Equal(t, "Olim Karimov", op.ClientName)
	assert.Equal(t, "Aziza Yusupova", op.CashierName)
	assert.Equal(t, domain.UZS, op.Currency)
	assert.True(t, op.Amount.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, "Hisob to'ldirish", op.Purpose)
	assert.Equal(t, domain.StatusCompleted, op.Status)
	assert.Equal(t, 2025, op.OccurredAt.Year())
}

func TestClient_CreateCashIn_SendsBankIdentityAndReadsID(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cash-in", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status": 201, "data": {"id": 17, "operation_date": "2025-06-01 10:30:00"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	created, err := c.CreateCashIn(context.Background(), domain.CashIn{
		CashierName: "Aziza Yusupova",
		ClientID:    "7",
		Currency:    domain.UZS,
		Amount:      decimal.NewFromInt(250000),
		Purpose:     "Omonat uchun",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17), created.ID)
	assert.Equal(t, "CI-17", created.OperID)
	assert.Equal(t, "2025-06-01 10:30:00", created.OperationDate)

	assert.Equal(t, "Mamun Bank", captured["bank_name"])
	assert.Equal(t, "Markaziy filial", captured["branch_name"])
	assert.Equal(t, "Kassir", captured["operator_role"])
	assert.Equal(t, float64(7), captured["client_id"])
	assert.Equal(t, "completed", captured["status"])
}

func TestClient_CreateFX_PrefersServerOperID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 200, "data": {"id": 9, "oper_id": "FX-9"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	created, err := c.CreateFX(context.Background(), domain.FXOperation{
		ClientID:         "3",
		Direction:        domain.FXBuy,
		GivenCurrency:    domain.USD,
		GivenAmount:      decimal.NewFromInt(100),
		ReceivedCurrency: domain.UZS,
		Rate:             decimal.NewFromInt(12750),
	})
	require.NoError(t, err)
	assert.Equal(t, "FX-9", created.OperID)
}

func TestClient_ListFX_DerivesMissingReceivedAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 200,
			"data": {"items": [{
				"id": 5,
				"operation_date": "2025-06-02 12:00:00",
				"operator_name": "Gulnora Karimova",
				"client_id": 3,
				"client_name": "Sardor Aliyev",
				"operation_type": "buy",
				"given_currency": "USD",
				"given_amount": "100",
				"received_currency": "UZS",
				"exchange_rate": "12750",
				"commission_percent": "1",
				"status": "completed"
			}]}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	ops, err := c.ListFX(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].ReceivedAmount.Equal(decimal.NewFromInt(1275000)),
		"expected 100 * 12750, got %s", ops[0].ReceivedAmount)
}

func TestClient_ListDeposits_MapsTypeLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 200,
			"data": {"items": [{
				"id": 2,
				"deposit_type": "Bolalar omonati",
				"currency": "UZS",
				"amount": "1000000",
				"term_months": 24,
				"interest_rate": "27",
				"status": "completed"
			}]}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	ops, err := c.ListDeposits(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "DEP-2", ops[0].OperID)
	assert.Equal(t, domain.DepositChildren, ops[0].DepositType)
}

func TestClient_List_UpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	_, err := c.ListClients(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestClient_Create_SurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": 400, "message": "client_id is required"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 404, nil)
	_, err := c.CreateClient(context.Background(), domain.Client{FullName: "Olim Karimov"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Contains(t, err.Error(), "client_id is required")
}
