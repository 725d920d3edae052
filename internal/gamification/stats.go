package gamification

import (
	"context"
	"fmt"

	model "github.com/BasileDS/royaume-backend/internal/models"
)

// ComputeUserStats agrège le ledger d'un utilisateur en totaux : XP cumulés,
// cashback disponible (gagné - dépensé, en euros) et nombre de gains.
// En cas d'erreur de fetch, renvoie des stats à zéro avec l'erreur : le
// client a toujours une valeur affichable.
func (s *Service) ComputeUserStats(ctx context.Context, customerID string) (model.UserStats, error) {
	var stats model.UserStats

	// Récupérer les receipts de l'utilisateur
	receipts, err := s.ledger.ReceiptsByCustomer(ctx, customerID)
	if err != nil {
		return stats, fmt.Errorf("could not fetch receipts: %w", err)
	}

	if len(receipts) == 0 {
		return stats, nil
	}

	// Récupérer les gains associés à ces receipts
	receiptIDs := make([]int64, 0, len(receipts))
	for _, r := range receipts {
		receiptIDs = append(receiptIDs, r.ID)
	}

	gains, err := s.ledger.GainsByReceiptIDs(ctx, receiptIDs)
	if err != nil {
		return stats, fmt.Errorf("could not fetch gains: %w", err)
	}

	var totalXP int
	var earnedCents int64
	for _, g := range gains {
		totalXP += g.XP
		earnedCents += g.CashbackMoney
	}

	// Récupérer les dépenses de cashback
	spendings, err := s.ledger.SpendingsByCustomer(ctx, customerID)
	if err != nil {
		return stats, fmt.Errorf("could not fetch spendings: %w", err)
	}

	var spentCents int64
	for _, sp := range spendings {
		spentCents += sp.Amount
	}

	stats.TotalXP = totalXP
	// Soustraction en centimes puis conversion en euros.
	// Pas de plancher : un solde négatif est remonté tel quel.
	stats.TotalCashback = float64(earnedCents-spentCents) / 100
	stats.GainsCount = len(gains)

	return stats, nil
}
