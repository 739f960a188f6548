package controllers

import (
	"net/http"

	"github.com/anonymous-namo-1/golden-era/api/responses"
)

const serviceName = "The Golden Era API"

// Root identifies the service.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, serviceName)
	}
}
