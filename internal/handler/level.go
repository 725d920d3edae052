package handler

import (
	"net/http"
	"strconv"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/BasileDS/royaume-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// GetUserLevel calcule le niveau et la progression d'un utilisateur
// à partir de son XP total
func GetUserLevel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	if _, err := uuid.Parse(userID); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	stats, err := svc.ComputeUserStats(r.Context(), userID)
	if err != nil {
		utils.Degraded(w, model.LevelProgress{}, "could not compute user stats")
		return
	}

	progress, err := svc.ResolveUserLevel(r.Context(), stats.TotalXP)
	if err != nil {
		utils.Degraded(w, progress, "could not fetch level thresholds")
		return
	}

	utils.Success(w, progress)
}

// GetLevelThresholds renvoie la table des paliers de niveau
func GetLevelThresholds(w http.ResponseWriter, r *http.Request) {
	thresholds, err := svc.Thresholds(r.Context())
	if err != nil {
		utils.Degraded(w, []model.LevelThreshold{}, "could not fetch level thresholds")
		return
	}

	utils.Success(w, thresholds)
}

// GetLevelByNumber renvoie un palier par son numéro de niveau
func GetLevelByNumber(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	level, err := strconv.Atoi(vars["level"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid level number")
		return
	}

	threshold, err := svc.LevelByNumber(r.Context(), level)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch level thresholds")
		return
	}

	if threshold == nil {
		utils.Error(w, http.StatusNotFound, "level not found")
		return
	}

	utils.Success(w, threshold)
}
