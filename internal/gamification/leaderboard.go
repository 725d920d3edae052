package gamification

import (
	"context"
	"fmt"
	"sort"

	"github.com/BasileDS/royaume-backend/internal/logger"
	model "github.com/BasileDS/royaume-backend/internal/models"
)

// Fenêtres des classements, en jours
const (
	WindowWeekly  = 7
	WindowMonthly = 30
	WindowYearly  = 365
)

// Profondeur de sondage pour retrouver le rang d'un utilisateur
const rankProbeLimit = 1000

// WindowedLeaderboard calcule le classement par XP sur les windowDays
// derniers jours, limité à limit entrées.
//
// Deux stratégies, tentées dans l'ordre :
//   - chemin rapide : la fonction d'agrégat précalculée côté base ;
//   - fallback : jointure en mémoire receipts → gains, conservée comme
//     couche de portabilité pour les bases qui n'exposent pas l'agrégat.
//
// En cas d'échec du fallback, renvoie une liste vide avec l'erreur.
func (s *Service) WindowedLeaderboard(ctx context.Context, windowDays, limit int) ([]model.LeaderboardEntry, error) {
	totals, err := s.aggregates.WindowedTotals(ctx, windowDays, limit)
	if err == nil {
		return s.enrich(ctx, totals), nil
	}
	logger.Warning("fast path unavailable for %d-day leaderboard, falling back to manual aggregation: %v", windowDays, err)

	totals, err = s.fallbackWindowedTotals(ctx, windowDays, limit)
	if err != nil {
		return []model.LeaderboardEntry{}, err
	}

	return s.enrich(ctx, totals), nil
}

// fallbackWindowedTotals refait l'agrégat en mémoire : receipts de la
// fenêtre, gains associés, jointure receipt → customer, cumul d'XP.
// Quatre étapes strictement séquentielles, chacune dépend de la précédente.
func (s *Service) fallbackWindowedTotals(ctx context.Context, windowDays, limit int) ([]model.UserTotal, error) {
	since := s.now().AddDate(0, 0, -windowDays)

	receipts, err := s.ledger.ReceiptsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("could not fetch receipts for window: %w", err)
	}

	if len(receipts) == 0 {
		return nil, nil
	}

	receiptIDs := make([]int64, 0, len(receipts))
	receiptToCustomer := make(map[int64]string, len(receipts))
	for _, r := range receipts {
		receiptIDs = append(receiptIDs, r.ID)
		receiptToCustomer[r.ID] = r.CustomerID
	}

	gains, err := s.ledger.GainsByReceiptIDs(ctx, receiptIDs)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gains for window: %w", err)
	}

	// Cumul d'XP par utilisateur. Les gains orphelins (receipt absent du
	// fetch) ou sans XP sont ignorés plutôt que de faire échouer l'agrégat.
	xpByUser := make(map[string]int)
	for _, g := range gains {
		if g.ReceiptID == nil || g.XP == 0 {
			continue
		}
		customerID, ok := receiptToCustomer[*g.ReceiptID]
		if !ok {
			continue
		}
		xpByUser[customerID] += g.XP
	}

	if len(xpByUser) == 0 {
		return nil, nil
	}

	receiptCountByUser := make(map[string]int, len(receipts))
	for _, r := range receipts {
		receiptCountByUser[r.CustomerID]++
	}

	totals := make([]model.UserTotal, 0, len(xpByUser))
	for customerID, xp := range xpByUser {
		totals = append(totals, model.UserTotal{
			CustomerID:   customerID,
			TotalXP:      xp,
			ReceiptCount: receiptCountByUser[customerID],
		})
	}

	// Tri par XP décroissant, égalité départagée par customer_id croissant
	// pour garder un ordre déterministe
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalXP != totals[j].TotalXP {
			return totals[i].TotalXP > totals[j].TotalXP
		}
		return totals[i].CustomerID < totals[j].CustomerID
	})

	if len(totals) > limit {
		totals = totals[:limit]
	}

	return totals, nil
}

// AllTimeLeaderboard lit le classement global depuis la vue précalculée.
// Pas de fallback manuel sur ce chemin.
func (s *Service) AllTimeLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	totals, err := s.aggregates.AllTimeTotals(ctx, limit)
	if err != nil {
		return []model.LeaderboardEntry{}, fmt.Errorf("could not fetch all-time leaderboard: %w", err)
	}

	return s.enrich(ctx, totals), nil
}

// UserRank retrouve le rang d'un utilisateur dans le classement de la
// fenêtre donnée (windowDays <= 0 pour le classement global). Scan linéaire
// volontaire sur un classement borné, plutôt qu'une requête dédiée.
func (s *Service) UserRank(ctx context.Context, customerID string, windowDays int) (int, bool, error) {
	var entries []model.LeaderboardEntry
	var err error

	if windowDays <= 0 {
		entries, err = s.AllTimeLeaderboard(ctx, rankProbeLimit)
	} else {
		entries, err = s.WindowedLeaderboard(ctx, windowDays, rankProbeLimit)
	}
	if err != nil {
		return 0, false, err
	}

	for _, entry := range entries {
		if entry.CustomerID == customerID {
			return entry.Rank, true, nil
		}
	}

	return 0, false, nil
}
