package handler

import (
	"net/http"

	"github.com/BasileDS/royaume-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Royaume des Paraiges API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"stats": []map[string]string{
				{"method": "GET", "path": "/users/{userId}/stats", "description": "Totaux XP / cashback / gains d'un utilisateur"},
				{"method": "GET", "path": "/users/{userId}/level", "description": "Niveau et progression d'un utilisateur"},
			},
			"levels": []map[string]string{
				{"method": "GET", "path": "/levels", "description": "Table des paliers de niveau"},
				{"method": "GET", "path": "/levels/{level}", "description": "Palier par numéro de niveau"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement par XP (period: weekly/monthly/yearly/all-time, limit)"},
				{"method": "GET", "path": "/leaderboard/users/{userId}", "description": "Rang d'un utilisateur dans le classement"},
			},
			"misc": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}
