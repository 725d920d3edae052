package utils

import (
	"net/http"
	"strconv"
)

// QueryInt lit un paramètre entier de query string, avec valeur par défaut
func QueryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
