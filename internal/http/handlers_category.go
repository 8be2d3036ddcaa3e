package http

import (
	"net/http"

	"fintrack/internal/core"
)

type categoryRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Classification string `json:"classification"`
	Icon           string `json:"icon"`
}

type categoryResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Classification string `json:"classification"`
	Icon           string `json:"icon"`
	System         bool   `json:"system"`
}

func toCategoryResponse(c core.Category) categoryResponse {
	return categoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Type:           string(c.Type),
		Classification: string(c.Classification),
		Icon:           c.Icon,
		System:         c.IsSystem(),
	}
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	category, err := s.svc.Categories.Create(r.Context(), authUserID(r), req.Name, req.Type, req.Classification, req.Icon)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, toCategoryResponse(category))
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.svc.Categories.List(r.Context(), authUserID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	category, err := s.svc.Categories.Get(r.Context(), authUserID(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, toCategoryResponse(category))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	userID := authUserID(r)
	category, err := s.svc.Categories.Update(r.Context(), userID, id, req.Name, req.Type, req.Classification, req.Icon)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// A retyped category changes how past transactions aggregate.
	s.invalidateReports(userID)
	respondData(w, http.StatusOK, toCategoryResponse(category))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.svc.Categories.Delete(r.Context(), authUserID(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "category deleted")
}
