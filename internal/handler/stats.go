package handler

import (
	"net/http"

	"github.com/BasileDS/royaume-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// GetUserStats récupère les totaux d'un utilisateur : XP cumulés,
// cashback disponible et nombre de gains
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	if _, err := uuid.Parse(userID); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	stats, err := svc.ComputeUserStats(r.Context(), userID)
	if err != nil {
		// Stats à zéro best-effort, le reste de l'écran composé survit
		utils.Degraded(w, stats, "could not compute user stats")
		return
	}

	utils.Success(w, stats)
}
