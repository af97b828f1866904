package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lalicorera/storefront/cart"
	"github.com/lalicorera/storefront/client"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, client.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, client.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, cart.ErrMissingID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, client.ErrServer):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
