package http

import (
	"fmt"
	"net/http"
)

// handleReportSummary serves the period summary, cached per user and
// interval. A request that was served from cache is answered bit-identically
// to the one that populated it.
func (s *Server) handleReportSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	userID := authUserID(r)
	key := fmt.Sprintf("%s%s:%s", reportKeyPrefix(userID), start, end)

	if report, ok := s.reportCache.Get(key); ok {
		respondData(w, http.StatusOK, report)
		return
	}

	report, err := s.svc.Reports.Summary(r.Context(), userID, start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}

	s.reportCache.Set(key, report)
	respondData(w, http.StatusOK, report)
}
