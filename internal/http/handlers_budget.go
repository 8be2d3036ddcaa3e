package http

import (
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/services"
)

type budgetRequest struct {
	CategoryID int64      `json:"categoryId"`
	Limit      core.Money `json:"limit"`
	StartDate  core.Date  `json:"startDate"`
	EndDate    core.Date  `json:"endDate"`
}

type budgetResponse struct {
	ID         int64      `json:"id"`
	CategoryID int64      `json:"categoryId"`
	Limit      core.Money `json:"limit"`
	Spent      core.Money `json:"spent"`
	Remaining  core.Money `json:"remaining"`
	StartDate  core.Date  `json:"startDate"`
	EndDate    core.Date  `json:"endDate"`
}

func toBudgetResponse(st services.BudgetStatus) budgetResponse {
	return budgetResponse{
		ID:         st.Budget.ID,
		CategoryID: st.Budget.CategoryID,
		Limit:      st.Budget.Limit,
		Spent:      st.Spent,
		Remaining:  st.Remaining,
		StartDate:  st.Budget.StartDate,
		EndDate:    st.Budget.EndDate,
	}
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	b, err := s.svc.Budgets.Create(r.Context(), authUserID(r), req.CategoryID, req.Limit, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// A fresh budget has no spending yet.
	respondData(w, http.StatusCreated, toBudgetResponse(services.BudgetStatus{Budget: b, Remaining: b.Limit}))
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.svc.Budgets.List(r.Context(), authUserID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]budgetResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, toBudgetResponse(st))
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	st, err := s.svc.Budgets.Get(r.Context(), authUserID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toBudgetResponse(st))
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	st, err := s.svc.Budgets.Update(r.Context(), authUserID(r), id, req.CategoryID, req.Limit, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toBudgetResponse(st))
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.svc.Budgets.Delete(r.Context(), authUserID(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "budget deleted")
}
