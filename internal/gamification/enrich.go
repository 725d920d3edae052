package gamification

import (
	"context"

	"github.com/BasileDS/royaume-backend/internal/logger"
	model "github.com/BasileDS/royaume-backend/internal/models"
)

// enrich joint les totaux bruts avec la projection minimale des profils
// (username + avatar uniquement) et attribue les rangs denses 1-based dans
// l'ordre d'entrée. Seuls les utilisateurs retenus sont fetchés : le coût
// d'enrichissement reste borné par limit, jamais par la population.
func (s *Service) enrich(ctx context.Context, totals []model.UserTotal) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(totals))
	if len(totals) == 0 {
		return entries
	}

	customerIDs := make([]string, 0, len(totals))
	for _, t := range totals {
		customerIDs = append(customerIDs, t.CustomerID)
	}

	profileByID := make(map[string]model.Profile, len(customerIDs))
	profiles, err := s.profiles.ProfilesByIDs(ctx, customerIDs)
	if err != nil {
		// On continue sans les profils : le classement reste affichable
		logger.Warning("could not fetch profiles for leaderboard: %v", err)
	} else {
		for _, p := range profiles {
			profileByID[p.ID] = p
		}
	}

	for i, t := range totals {
		profile := profileByID[t.CustomerID]
		entries = append(entries, model.LeaderboardEntry{
			CustomerID:   t.CustomerID,
			TotalXP:      t.TotalXP,
			ReceiptCount: t.ReceiptCount,
			Rank:         i + 1,
			Username:     profile.Username,
			AvatarURL:    profile.AvatarURL,
		})
	}

	return entries
}

// FormatDisplayName renvoie le nom affichable d'une entrée de classement.
// Ne peut jamais échouer.
func FormatDisplayName(entry model.LeaderboardEntry) string {
	if entry.Username != "" {
		return entry.Username
	}
	return "Utilisateur anonyme"
}
