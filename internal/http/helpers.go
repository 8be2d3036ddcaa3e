package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// decodeJSON reads a size-capped JSON body into dst.
func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return core.ErrInvalidInput
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, core.ErrNotFound
	}
	return id, nil
}

// parsePeriod resolves the report interval from query parameters.
// Accepted forms, most specific first:
//
//	startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
//	month=YYYY-MM
//	(nothing) -> the current calendar month
func parsePeriod(r *http.Request) (core.Date, core.Date, error) {
	q := r.URL.Query()

	startStr := strings.TrimSpace(q.Get("startDate"))
	endStr := strings.TrimSpace(q.Get("endDate"))
	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			return core.Date{}, core.Date{}, core.ErrInvalidRange
		}
		start, err := core.ParseDate(startStr)
		if err != nil {
			return core.Date{}, core.Date{}, err
		}
		end, err := core.ParseDate(endStr)
		if err != nil {
			return core.Date{}, core.Date{}, err
		}
		return start, end, nil
	}

	if monthStr := strings.TrimSpace(q.Get("month")); monthStr != "" {
		t, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return core.Date{}, core.Date{}, core.ErrInvalidInput
		}
		return monthBounds(t.Year(), t.Month())
	}

	now := time.Now().UTC()
	return monthBounds(now.Year(), now.Month())
}

func monthBounds(year int, month time.Month) (core.Date, core.Date, error) {
	start := core.NewDate(year, month, 1)
	end := core.Date{Time: start.AddDate(0, 1, -1)}
	return start, end, nil
}

// extractClientIP returns the caller's IP, honoring forwarding headers only
// when the direct peer is a private or loopback address.
func extractClientIP(r *http.Request) string {
	directIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		directIP = r.RemoteAddr
	}

	parsed := net.ParseIP(directIP)
	if parsed == nil {
		return directIP
	}

	if parsed.IsLoopback() || parsed.IsPrivate() {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if net.ParseIP(first) != nil {
				return first
			}
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			if net.ParseIP(xri) != nil {
				return xri
			}
		}
	}

	return directIP
}
