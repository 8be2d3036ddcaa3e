package http

import (
	"net/http"
	"strconv"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

type transactionRequest struct {
	AccountID   int64      `json:"accountId"`
	CategoryID  int64      `json:"categoryId"`
	Amount      core.Money `json:"amount"`
	Date        core.Date  `json:"date"`
	Description string     `json:"description"`
}

type transactionResponse struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"accountId"`
	CategoryID  int64      `json:"categoryId"`
	Amount      core.Money `json:"amount"`
	Type        string     `json:"type"`
	Date        core.Date  `json:"date"`
	Description string     `json:"description"`
}

func toTransactionResponse(t core.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		AccountID:   t.AccountID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Date:        t.Date,
		Description: t.Description,
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	userID := authUserID(r)
	tx, err := s.svc.Transactions.Create(r.Context(), userID, req.AccountID, req.CategoryID, req.Amount, req.Date, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}

	s.invalidateReports(userID)
	respondData(w, http.StatusCreated, toTransactionResponse(tx))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionFilter(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	transactions, err := s.svc.Transactions.List(r.Context(), authUserID(r), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionResponse(t))
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	tx, err := s.svc.Transactions.Get(r.Context(), authUserID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toTransactionResponse(tx))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	userID := authUserID(r)
	if err := s.svc.Transactions.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, err)
		return
	}

	s.invalidateReports(userID)
	respondMessage(w, http.StatusOK, "transaction deleted")
}

func parseTransactionFilter(r *http.Request) (storage.TransactionFilter, error) {
	var f storage.TransactionFilter
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("accountId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return f, core.ErrInvalidInput
		}
		f.AccountID = id
	}
	if v := strings.TrimSpace(q.Get("startDate")); v != "" {
		start, err := core.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.Start = start
	}
	if v := strings.TrimSpace(q.Get("endDate")); v != "" {
		end, err := core.ParseDate(v)
		if err != nil {
			return f, err
		}
		f.End = end
	}
	return f, nil
}
