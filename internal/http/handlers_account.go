package http

import (
	"net/http"
	"time"

	"fintrack/internal/core"
)

type accountRequest struct {
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Balance core.Money `json:"balance"`
}

type accountResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Balance   core.Money `json:"balance"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toAccountResponse(a core.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	account, err := s.svc.Accounts.Create(r.Context(), authUserID(r), req.Name, req.Type, req.Balance)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, toAccountResponse(account))
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.svc.Accounts.List(r.Context(), authUserID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	account, err := s.svc.Accounts.Get(r.Context(), authUserID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toAccountResponse(account))
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req accountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	account, err := s.svc.Accounts.Update(r.Context(), authUserID(r), id, req.Name, req.Type)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toAccountResponse(account))
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	userID := authUserID(r)
	if err := s.svc.Accounts.Delete(r.Context(), userID, id); err != nil {
		respondError(w, r, err)
		return
	}

	// Deleting an account cascades to its transactions.
	s.invalidateReports(userID)
	respondMessage(w, http.StatusOK, "account deleted")
}
