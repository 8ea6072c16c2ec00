// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/service"
	"github.com/avoronov/go-fin-tracker/internal/store"
	"github.com/avoronov/go-fin-tracker/models"
)

// ─────────────────────────────────────────────
// Mock FinanceService
// ─────────────────────────────────────────────

// mockFinanceService implements service.FinanceService for unit tests.
// Only the method fields a test overrides need to be set.
type mockFinanceService struct {
	addTransactionFn    func(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	listTransactionsFn  func(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error)
	updateTransactionFn func(ctx context.Context, userID int64, transaction models.Transaction) error
	deleteTransactionFn func(ctx context.Context, userID int64, transactionID int64) error

	addAssetFn    func(ctx context.Context, userID int64, asset models.Asset) (models.Asset, error)
	listAssetsFn  func(ctx context.Context, userID int64) ([]models.Asset, error)
	updateAssetFn func(ctx context.Context, userID int64, asset models.Asset) error
	deleteAssetFn func(ctx context.Context, userID int64, assetID int64) error

	addLiabilityFn    func(ctx context.Context, userID int64, liability models.Liability) (models.Liability, error)
	listLiabilitiesFn func(ctx context.Context, userID int64) ([]models.Liability, error)
	updateLiabilityFn func(ctx context.Context, userID int64, liability models.Liability) error
	deleteLiabilityFn func(ctx context.Context, userID int64, liabilityID int64) error

	saveBudgetEntryFn   func(ctx context.Context, userID int64, entry models.BudgetEntry) (models.BudgetEntry, error)
	listBudgetEntriesFn func(ctx context.Context, userID int64, month string, year int) ([]models.BudgetEntry, error)
	deleteBudgetEntryFn func(ctx context.Context, userID int64, budgetID int64) error

	setPreferenceFn   func(ctx context.Context, userID int64, key, value string) (models.Preference, error)
	listPreferencesFn func(ctx context.Context, userID int64) ([]models.Preference, error)

	netWorthFn func(ctx context.Context, userID int64) (models.NetWorthSummary, error)
}

func (m *mockFinanceService) AddTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	return m.addTransactionFn(ctx, userID, transaction)
}

func (m *mockFinanceService) ListTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	return m.listTransactionsFn(ctx, userID, filter)
}

func (m *mockFinanceService) UpdateTransaction(ctx context.Context, userID int64, transaction models.Transaction) error {
	return m.updateTransactionFn(ctx, userID, transaction)
}

func (m *mockFinanceService) DeleteTransaction(ctx context.Context, userID int64, transactionID int64) error {
	return m.deleteTransactionFn(ctx, userID, transactionID)
}

func (m *mockFinanceService) AddAsset(ctx context.Context, userID int64, asset models.Asset) (models.Asset, error) {
	return m.addAssetFn(ctx, userID, asset)
}

func (m *mockFinanceService) ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	return m.listAssetsFn(ctx, userID)
}

func (m *mockFinanceService) UpdateAsset(ctx context.Context, userID int64, asset models.Asset) error {
	return m.updateAssetFn(ctx, userID, asset)
}

func (m *mockFinanceService) DeleteAsset(ctx context.Context, userID int64, assetID int64) error {
	return m.deleteAssetFn(ctx, userID, assetID)
}

func (m *mockFinanceService) AddLiability(ctx context.Context, userID int64, liability models.Liability) (models.Liability, error) {
	return m.addLiabilityFn(ctx, userID, liability)
}

func (m *mockFinanceService) ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error) {
	return m.listLiabilitiesFn(ctx, userID)
}

func (m *mockFinanceService) UpdateLiability(ctx context.Context, userID int64, liability models.Liability) error {
	return m.updateLiabilityFn(ctx, userID, liability)
}

func (m *mockFinanceService) DeleteLiability(ctx context.Context, userID int64, liabilityID int64) error {
	return m.deleteLiabilityFn(ctx, userID, liabilityID)
}

func (m *mockFinanceService) SaveBudgetEntry(ctx context.Context, userID int64, entry models.BudgetEntry) (models.BudgetEntry, error) {
	return m.saveBudgetEntryFn(ctx, userID, entry)
}

func (m *mockFinanceService) ListBudgetEntries(ctx context.Context, userID int64, month string, year int) ([]models.BudgetEntry, error) {
	return m.listBudgetEntriesFn(ctx, userID, month, year)
}

func (m *mockFinanceService) DeleteBudgetEntry(ctx context.Context, userID int64, budgetID int64) error {
	return m.deleteBudgetEntryFn(ctx, userID, budgetID)
}

func (m *mockFinanceService) SetPreference(ctx context.Context, userID int64, key, value string) (models.Preference, error) {
	return m.setPreferenceFn(ctx, userID, key, value)
}

func (m *mockFinanceService) ListPreferences(ctx context.Context, userID int64) ([]models.Preference, error) {
	return m.listPreferencesFn(ctx, userID)
}

func (m *mockFinanceService) NetWorth(ctx context.Context, userID int64) (models.NetWorthSummary, error) {
	return m.netWorthFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithFinance builds a Handler with the given FinanceService mock.
func newHandlerWithFinance(t *testing.T, finance service.FinanceService) *Handler {
	t.Helper()
	svcs := &service.Services{
		FinanceService: finance,
	}
	return NewHandler(svcs, logger.Nop())
}

// withRecordID attaches a chi route context carrying the {id} path parameter,
// so handlers can be exercised without running the full router.
func withRecordID(r *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

// ─────────────────────────────────────────────
// Transactions
// ─────────────────────────────────────────────

// TestAddTransaction_ScopesToSessionUser verifies that the owning user id
// passed to the service comes from the verified session context, not from the
// request body.
func TestAddTransaction_ScopesToSessionUser(t *testing.T) {
	var scopedUserID int64
	finance := &mockFinanceService{
		addTransactionFn: func(_ context.Context, userID int64, tx models.Transaction) (models.Transaction, error) {
			scopedUserID = userID
			tx.TransactionID = 42
			tx.UserID = userID
			return tx, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"amount":"12.50","type":"expense","description":"coffee"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.addTransaction(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), scopedUserID)

	var saved models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(42), saved.TransactionID)
}

// TestAddTransaction_InvalidJSON verifies that a malformed body results in
// 400 Bad Request before the service is reached.
func TestAddTransaction_InvalidJSON(t *testing.T) {
	h := newHandlerWithFinance(t, &mockFinanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", strings.NewReader("{not json"))
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.addTransaction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestAddTransaction_InvalidData verifies that a service-level sanity
// rejection maps to 400 Bad Request.
func TestAddTransaction_InvalidData(t *testing.T) {
	finance := &mockFinanceService{
		addTransactionFn: func(_ context.Context, _ int64, _ models.Transaction) (models.Transaction, error) {
			return models.Transaction{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"amount":"-5","type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.addTransaction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestListTransactions_FilterFromQuery verifies that query parameters are
// translated into the listing filter.
func TestListTransactions_FilterFromQuery(t *testing.T) {
	var gotFilter models.TransactionFilter
	finance := &mockFinanceService{
		listTransactionsFn: func(_ context.Context, _ int64, filter models.TransactionFilter) ([]models.Transaction, error) {
			gotFilter = filter
			return []models.Transaction{}, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	target := "/api/transactions/?category=Groceries&type=expense&from=2026-01-01&to=2026-01-31"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.listTransactions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Groceries", gotFilter.Category)
	assert.Equal(t, models.TransactionExpense, gotFilter.Type)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), gotFilter.From)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), gotFilter.To)
}

// TestListTransactions_MalformedDatesIgnored verifies that unparsable date
// parameters are dropped from the filter instead of failing the request.
func TestListTransactions_MalformedDatesIgnored(t *testing.T) {
	var gotFilter models.TransactionFilter
	finance := &mockFinanceService{
		listTransactionsFn: func(_ context.Context, _ int64, filter models.TransactionFilter) ([]models.Transaction, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/?from=yesterday&to=31/01/2026", nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.listTransactions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotFilter.From.IsZero())
	assert.True(t, gotFilter.To.IsZero())
}

// TestUpdateTransaction_IDFromPath verifies that the record id comes from the
// URL path and overrides any id in the body.
func TestUpdateTransaction_IDFromPath(t *testing.T) {
	var gotTransaction models.Transaction
	finance := &mockFinanceService{
		updateTransactionFn: func(_ context.Context, _ int64, tx models.Transaction) error {
			gotTransaction = tx
			return nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"id":999,"amount":"20.00","type":"expense"}`
	req := httptest.NewRequest(http.MethodPut, "/api/transactions/42", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	req = withRecordID(req, "42")
	rec := httptest.NewRecorder()

	h.updateTransaction(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotTransaction.TransactionID)
}

// TestUpdateTransaction_InvalidID verifies that a non-numeric path id maps to
// 400 Bad Request.
func TestUpdateTransaction_InvalidID(t *testing.T) {
	h := newHandlerWithFinance(t, &mockFinanceService{})

	req := httptest.NewRequest(http.MethodPut, "/api/transactions/abc", strings.NewReader(`{}`))
	req = withSessionContext(req, 7, "live-token")
	req = withRecordID(req, "abc")
	rec := httptest.NewRecorder()

	h.updateTransaction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errInvalidRecordID.Error())
}

// TestDeleteTransaction_ForeignRecordLooksMissing verifies that deleting a
// record owned by another user surfaces as 404, indistinguishable from a
// record that never existed.
func TestDeleteTransaction_ForeignRecordLooksMissing(t *testing.T) {
	finance := &mockFinanceService{
		deleteTransactionFn: func(_ context.Context, _ int64, _ int64) error {
			return store.ErrRecordNotFound
		},
	}

	h := newHandlerWithFinance(t, finance)
	req := httptest.NewRequest(http.MethodDelete, "/api/transactions/42", nil)
	req = withSessionContext(req, 7, "live-token")
	req = withRecordID(req, "42")
	rec := httptest.NewRecorder()

	h.deleteTransaction(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Assets and liabilities
// ─────────────────────────────────────────────

// TestAddAsset_Success verifies the create path returns 201 with the stored
// record.
func TestAddAsset_Success(t *testing.T) {
	finance := &mockFinanceService{
		addAssetFn: func(_ context.Context, userID int64, asset models.Asset) (models.Asset, error) {
			asset.AssetID = 5
			asset.UserID = userID
			return asset, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"name":"Brokerage","value":"1500.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/assets/", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.addAsset(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var saved models.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(5), saved.AssetID)
	assert.Equal(t, "Brokerage", saved.Name)
}

// TestListAssets_Empty verifies that an empty portfolio serialises as an
// empty JSON array rather than an error.
func TestListAssets_Empty(t *testing.T) {
	finance := &mockFinanceService{
		listAssetsFn: func(_ context.Context, _ int64) ([]models.Asset, error) {
			return []models.Asset{}, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.listAssets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// TestUpdateLiability_IDFromPath verifies the liability update path parsing.
func TestUpdateLiability_IDFromPath(t *testing.T) {
	var gotLiability models.Liability
	finance := &mockFinanceService{
		updateLiabilityFn: func(_ context.Context, _ int64, liability models.Liability) error {
			gotLiability = liability
			return nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"name":"Car loan","value":"8000.00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/liabilities/3", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	req = withRecordID(req, "3")
	rec := httptest.NewRecorder()

	h.updateLiability(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gotLiability.LiabilityID)
}

// TestDeleteAsset_NegativeID verifies that zero and negative ids are rejected
// before the service is reached.
func TestDeleteAsset_NegativeID(t *testing.T) {
	h := newHandlerWithFinance(t, &mockFinanceService{})

	for _, id := range []string{"0", "-1"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/assets/"+id, nil)
		req = withSessionContext(req, 7, "live-token")
		req = withRecordID(req, id)
		rec := httptest.NewRecorder()

		h.deleteAsset(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
}

// ─────────────────────────────────────────────
// Budget
// ─────────────────────────────────────────────

// TestListBudgetEntries_MonthYearFromQuery verifies that month and year query
// parameters reach the service.
func TestListBudgetEntries_MonthYearFromQuery(t *testing.T) {
	var gotMonth string
	var gotYear int
	finance := &mockFinanceService{
		listBudgetEntriesFn: func(_ context.Context, _ int64, month string, year int) ([]models.BudgetEntry, error) {
			gotMonth, gotYear = month, year
			return nil, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	req := httptest.NewRequest(http.MethodGet, "/api/budget/?month=January&year=2026", nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.listBudgetEntries(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "January", gotMonth)
	assert.Equal(t, 2026, gotYear)
}

// TestListBudgetEntries_BadYear verifies that a non-numeric year parameter is
// rejected with 400 Bad Request.
func TestListBudgetEntries_BadYear(t *testing.T) {
	h := newHandlerWithFinance(t, &mockFinanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/budget/?year=twenty26", nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.listBudgetEntries(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSaveBudgetEntry_Success verifies the upsert path returns the stored
// entry.
func TestSaveBudgetEntry_Success(t *testing.T) {
	finance := &mockFinanceService{
		saveBudgetEntryFn: func(_ context.Context, userID int64, entry models.BudgetEntry) (models.BudgetEntry, error) {
			entry.BudgetID = 11
			entry.UserID = userID
			return entry, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"category":"Groceries","amount":"400.00","month":"January","year":2026}`
	req := httptest.NewRequest(http.MethodPost, "/api/budget/", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.saveBudgetEntry(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.BudgetEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(11), saved.BudgetID)
}

// ─────────────────────────────────────────────
// Preferences
// ─────────────────────────────────────────────

// TestSetPreference_Success verifies the key/value pair reaches the service
// under the session user.
func TestSetPreference_Success(t *testing.T) {
	var gotUserID int64
	var gotKey, gotValue string
	finance := &mockFinanceService{
		setPreferenceFn: func(_ context.Context, userID int64, key, value string) (models.Preference, error) {
			gotUserID, gotKey, gotValue = userID, key, value
			return models.Preference{UserID: userID, Key: key, Value: value}, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	body := `{"key":"currency","value":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/preferences/", strings.NewReader(body))
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.setPreference(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "currency", gotKey)
	assert.Equal(t, "EUR", gotValue)
}

// ─────────────────────────────────────────────
// Net worth
// ─────────────────────────────────────────────

// TestNetWorth_Success verifies the aggregate payload round-trips exactly.
func TestNetWorth_Success(t *testing.T) {
	finance := &mockFinanceService{
		netWorthFn: func(_ context.Context, _ int64) (models.NetWorthSummary, error) {
			return models.NetWorthSummary{
				TotalAssets:      decimal.RequireFromString("4000.00"),
				TotalLiabilities: decimal.RequireFromString("500.30"),
				NetWorth:         decimal.RequireFromString("3499.70"),
			}, nil
		},
	}

	h := newHandlerWithFinance(t, finance)
	req := httptest.NewRequest(http.MethodGet, "/api/networth", nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.netWorth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.NetWorthSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.NetWorth.Equal(decimal.RequireFromString("3499.70")))
}

// TestNetWorth_StorageError verifies that storage failures map to 500.
func TestNetWorth_StorageError(t *testing.T) {
	finance := &mockFinanceService{
		netWorthFn: func(_ context.Context, _ int64) (models.NetWorthSummary, error) {
			return models.NetWorthSummary{}, errors.New("connection reset")
		},
	}

	h := newHandlerWithFinance(t, finance)
	req := httptest.NewRequest(http.MethodGet, "/api/networth", nil)
	req = withSessionContext(req, 7, "live-token")
	rec := httptest.NewRecorder()

	h.netWorth(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
