// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avoronov/go-fin-tracker/models"
)

// HTTPClientConfig configures the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking the server's REST
// API over resty.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.SessionInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/user/login")
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInfo{}, err
	}

	var info models.SessionInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.SessionInfo{}, fmt.Errorf("decode login response: %w", err)
	}
	if info.Token == "" {
		info.Token, err = parseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.SessionInfo{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(info.Token)
	return info, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) (bool, error) {
	resp, err := h.authedRequest(ctx).Post("/api/user/logout")
	if err != nil {
		return false, fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var result models.LogoutResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("decode logout response: %w", err)
	}

	h.SetToken("")
	return result.Deleted, nil
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionInfo, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/session")
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInfo{}, err
	}

	var info models.SessionInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.SessionInfo{}, fmt.Errorf("decode session response: %w", err)
	}

	return info, nil
}

func (h *httpServerAdapter) Deactivate(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/user/deactivate")
	if err != nil {
		return fmt.Errorf("deactivate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) AddTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	var saved models.Transaction
	err := h.postJSON(ctx, "/api/transactions/", transaction, &saved)
	return saved, err
}

func (h *httpServerAdapter) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	req := h.authedRequest(ctx)
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.Type != "" {
		req.SetQueryParam("type", filter.Type)
	}
	if !filter.From.IsZero() {
		req.SetQueryParam("from", filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		req.SetQueryParam("to", filter.To.Format("2006-01-02"))
	}

	resp, err := req.Get("/api/transactions/")
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err = json.Unmarshal(resp.Body(), &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions response: %w", err)
	}

	return transactions, nil
}

func (h *httpServerAdapter) UpdateTransaction(ctx context.Context, transaction models.Transaction) error {
	return h.putJSON(ctx, "/api/transactions/"+formatID(transaction.TransactionID), transaction)
}

func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return h.deleteRecord(ctx, "/api/transactions/"+formatID(transactionID))
}

func (h *httpServerAdapter) AddAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	var saved models.Asset
	err := h.postJSON(ctx, "/api/assets/", asset, &saved)
	return saved, err
}

func (h *httpServerAdapter) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	err := h.getJSON(ctx, "/api/assets/", &assets)
	return assets, err
}

func (h *httpServerAdapter) UpdateAsset(ctx context.Context, asset models.Asset) error {
	return h.putJSON(ctx, "/api/assets/"+formatID(asset.AssetID), asset)
}

func (h *httpServerAdapter) DeleteAsset(ctx context.Context, assetID int64) error {
	return h.deleteRecord(ctx, "/api/assets/"+formatID(assetID))
}

func (h *httpServerAdapter) AddLiability(ctx context.Context, liability models.Liability) (models.Liability, error) {
	var saved models.Liability
	err := h.postJSON(ctx, "/api/liabilities/", liability, &saved)
	return saved, err
}

func (h *httpServerAdapter) ListLiabilities(ctx context.Context) ([]models.Liability, error) {
	var liabilities []models.Liability
	err := h.getJSON(ctx, "/api/liabilities/", &liabilities)
	return liabilities, err
}

func (h *httpServerAdapter) UpdateLiability(ctx context.Context, liability models.Liability) error {
	return h.putJSON(ctx, "/api/liabilities/"+formatID(liability.LiabilityID), liability)
}

func (h *httpServerAdapter) DeleteLiability(ctx context.Context, liabilityID int64) error {
	return h.deleteRecord(ctx, "/api/liabilities/"+formatID(liabilityID))
}

func (h *httpServerAdapter) SaveBudgetEntry(ctx context.Context, entry models.BudgetEntry) (models.BudgetEntry, error) {
	var saved models.BudgetEntry
	err := h.postJSON(ctx, "/api/budget/", entry, &saved)
	return saved, err
}

func (h *httpServerAdapter) ListBudgetEntries(ctx context.Context, month string, year int) ([]models.BudgetEntry, error) {
	req := h.authedRequest(ctx)
	if month != "" {
		req.SetQueryParam("month", month)
	}
	if year > 0 {
		req.SetQueryParam("year", strconv.Itoa(year))
	}

	resp, err := req.Get("/api/budget/")
	if err != nil {
		return nil, fmt.Errorf("list budget entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.BudgetEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode budget response: %w", err)
	}

	return entries, nil
}

func (h *httpServerAdapter) DeleteBudgetEntry(ctx context.Context, budgetID int64) error {
	return h.deleteRecord(ctx, "/api/budget/"+formatID(budgetID))
}

func (h *httpServerAdapter) SetPreference(ctx context.Context, preference models.Preference) (models.Preference, error) {
	var saved models.Preference
	err := h.postJSON(ctx, "/api/preferences/", preference, &saved)
	return saved, err
}

func (h *httpServerAdapter) ListPreferences(ctx context.Context) ([]models.Preference, error) {
	var preferences []models.Preference
	err := h.getJSON(ctx, "/api/preferences/", &preferences)
	return preferences, err
}

func (h *httpServerAdapter) NetWorth(ctx context.Context) (models.NetWorthSummary, error) {
	var summary models.NetWorthSummary
	err := h.getJSON(ctx, "/api/networth", &summary)
	return summary, err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) putJSON(ctx context.Context, path string, body any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) deleteRecord(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
