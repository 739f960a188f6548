package validators

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQueryFloat returns nil when the parameter is absent.
func ParseQueryFloat(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// MaxQueryLength bounds free-text query values, counted in runes. Body
// fields that identify the same data (userId) carry a matching max tag.
const MaxQueryLength = 200

// QueryRaw returns the query value exactly as sent. Over-long values are
// rejected, never shortened, so a lookup cannot silently widen.
func QueryRaw(r *http.Request, key string) (string, error) {
	raw := r.URL.Query().Get(key)
	if utf8.RuneCountInString(raw) > MaxQueryLength {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter too long").
			WithDetails(map[string]any{"field": key, "max": MaxQueryLength})
	}
	return raw, nil
}

// QueryString is QueryRaw with surrounding whitespace trimmed.
func QueryString(r *http.Request, key string) (string, error) {
	raw, err := QueryRaw(r, key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
