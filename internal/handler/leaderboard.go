package handler

import (
	"net/http"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/BasileDS/royaume-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// GetLeaderboard récupère le classement par XP sur la période demandée
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	period, windowDays := periodWindow(r)
	limit := utils.QueryInt(r, "limit", 50)

	var entries []model.LeaderboardEntry
	var err error

	if windowDays == 0 {
		entries, err = svc.AllTimeLeaderboard(r.Context(), limit)
	} else {
		entries, err = svc.WindowedLeaderboard(r.Context(), windowDays, limit)
	}

	if err != nil {
		// Liste vide best-effort : le client affiche son état vide
		utils.Degraded(w, entries, "could not compute "+period+" leaderboard")
		return
	}

	utils.Success(w, entries)
}

// GetUserRank récupère le rang d'un utilisateur dans le classement de la période
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	if _, err := uuid.Parse(userID); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	period, windowDays := periodWindow(r)

	rank := model.UserRank{CustomerID: userID, Period: period}

	position, ranked, err := svc.UserRank(r.Context(), userID, windowDays)
	if err != nil {
		utils.Degraded(w, rank, "could not compute user rank")
		return
	}

	rank.Rank = position
	rank.Ranked = ranked

	utils.Success(w, rank)
}
