package utils

import (
	"encoding/json"
	"net/http"

	"github.com/BasileDS/royaume-backend/internal/logger"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func Error(w http.ResponseWriter, status int, msg string) {
	logger.Error("[%d] %s", status, msg)
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

// Degraded renvoie un résultat best-effort (valeur zéro ou liste vide)
// accompagné du flag d'erreur, pour que le client garde un écran affichable.
func Degraded(w http.ResponseWriter, data interface{}, msg string) {
	logger.Warning("degraded response: %s", msg)
	JSON(w, http.StatusOK, APIResponse{Success: false, Data: data, Error: msg})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
