// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronov

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avoronov/go-fin-tracker/internal/logger"
	"github.com/avoronov/go-fin-tracker/internal/utils"
	"github.com/avoronov/go-fin-tracker/models"
)

// recordIDFromRequest parses the {id} path segment of the matched route.
func recordIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidRecordID
	}
	return id, nil
}

// transactionFilterFromQuery builds a listing filter from the query string.
// Dates use the 2006-01-02 layout; a malformed date is treated as absent
// rather than rejected, matching the permissive behaviour of the dashboard.
func transactionFilterFromQuery(r *http.Request) models.TransactionFilter {
	query := r.URL.Query()

	filter := models.TransactionFilter{
		Category: query.Get("category"),
		Type:     query.Get("type"),
	}
	if from, err := time.Parse("2006-01-02", query.Get("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse("2006-01-02", query.Get("to")); err == nil {
		filter.To = to
	}

	return filter
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	transactions, err := h.services.FinanceService.ListTransactions(ctx, userID, transactionFilterFromQuery(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) addTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var transaction models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	saved, err := h.services.FinanceService.AddTransaction(ctx, userID, transaction)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var transaction models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}
	transaction.TransactionID = id

	if err := h.services.FinanceService.UpdateTransaction(ctx, userID, transaction); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "updated"}, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.FinanceService.DeleteTransaction(ctx, userID, id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "deleted"}, http.StatusOK)
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	assets, err := h.services.FinanceService.ListAssets(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

func (h *Handler) addAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	saved, err := h.services.FinanceService.AddAsset(ctx, userID, asset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}
	asset.AssetID = id

	if err := h.services.FinanceService.UpdateAsset(ctx, userID, asset); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "updated"}, http.StatusOK)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.FinanceService.DeleteAsset(ctx, userID, id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "deleted"}, http.StatusOK)
}

func (h *Handler) listLiabilities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	liabilities, err := h.services.FinanceService.ListLiabilities(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, liabilities, http.StatusOK)
}

func (h *Handler) addLiability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var liability models.Liability
	if err := json.NewDecoder(r.Body).Decode(&liability); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	saved, err := h.services.FinanceService.AddLiability(ctx, userID, liability)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateLiability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var liability models.Liability
	if err := json.NewDecoder(r.Body).Decode(&liability); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}
	liability.LiabilityID = id

	if err := h.services.FinanceService.UpdateLiability(ctx, userID, liability); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "updated"}, http.StatusOK)
}

func (h *Handler) deleteLiability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.FinanceService.DeleteLiability(ctx, userID, id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "deleted"}, http.StatusOK)
}

func (h *Handler) listBudgetEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	query := r.URL.Query()
	month := query.Get("month")
	year := 0
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, r, errInvalidRecordID)
			return
		}
		year = parsed
	}

	entries, err := h.services.FinanceService.ListBudgetEntries(ctx, userID, month, year)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) saveBudgetEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var entry models.BudgetEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	saved, err := h.services.FinanceService.SaveBudgetEntry(ctx, userID, entry)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteBudgetEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := recordIDFromRequest(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.FinanceService.DeleteBudgetEntry(ctx, userID, id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "deleted"}, http.StatusOK)
}

func (h *Handler) listPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	preferences, err := h.services.FinanceService.ListPreferences(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, preferences, http.StatusOK)
}

func (h *Handler) setPreference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var preference models.Preference
	if err := json.NewDecoder(r.Body).Decode(&preference); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, r, errInvalidJSON)
		return
	}

	saved, err := h.services.FinanceService.SetPreference(ctx, userID, preference.Key, preference.Value)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) netWorth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	summary, err := h.services.FinanceService.NetWorth(ctx, userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
