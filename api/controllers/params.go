package controllers

import (
	"math"
	"net/http"

	"github.com/anonymous-namo-1/golden-era/api/validators"
	"github.com/anonymous-namo-1/golden-era/pkg/db/models"
	"github.com/anonymous-namo-1/golden-era/pkg/pagination"
)

// parsePage reads page/limit from the query string. Out-of-range values are
// rejected here so they never reach the store.
func parsePage(r *http.Request, defaultLimit, maxLimit int) (pagination.Params, error) {
	page, err := validators.ParseQueryInt(r, "page", pagination.DefaultPage, 1, math.MaxInt32)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", defaultLimit, 1, maxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}

// queryUserID returns ?userId= or the guest identity. Over-long ids are
// rejected with the same bound the body userId carries.
func queryUserID(r *http.Request) (string, error) {
	userID, err := validators.QueryString(r, "userId")
	if err != nil {
		return "", err
	}
	if userID == "" {
		return models.GuestUserID, nil
	}
	return userID, nil
}

// queryStrings reads each key with validators.QueryString and stops at the
// first rejected value.
func queryStrings(r *http.Request, keys ...string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := validators.QueryString(r, key)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}
