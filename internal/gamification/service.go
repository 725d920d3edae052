// Package gamification contient le coeur métier du programme de fidélité :
// agrégation du ledger en statistiques utilisateur, résolution de niveau
// et classements fenêtrés. Tout est sans état : chaque opération est une
// fonction pure de ses lectures fraîches, ré-invocable en parallèle.
package gamification

import (
	"context"
	"time"

	model "github.com/BasileDS/royaume-backend/internal/models"
)

// LedgerReader lit les faits bruts du ledger relationnel
type LedgerReader interface {
	ReceiptsByCustomer(ctx context.Context, customerID string) ([]model.Receipt, error)
	ReceiptsSince(ctx context.Context, since time.Time) ([]model.Receipt, error)
	GainsByReceiptIDs(ctx context.Context, receiptIDs []int64) ([]model.Gain, error)
	SpendingsByCustomer(ctx context.Context, customerID string) ([]model.Spending, error)
}

// AggregateReader lit les agrégats précalculés côté base.
// WindowedTotals renvoie storage.ErrAggregateUnavailable quand la fonction
// n'est pas déployée : c'est le signal de bascule vers le fallback.
type AggregateReader interface {
	WindowedTotals(ctx context.Context, daysBack, limit int) ([]model.UserTotal, error)
	AllTimeTotals(ctx context.Context, limit int) ([]model.UserTotal, error)
}

// ProfileReader lit la projection minimale des profils pour l'affichage
type ProfileReader interface {
	ProfilesByIDs(ctx context.Context, customerIDs []string) ([]model.Profile, error)
}

// ThresholdProvider fournit la table des paliers, triée par xp_required croissant
type ThresholdProvider interface {
	LevelThresholds(ctx context.Context) ([]model.LevelThreshold, error)
}

type Service struct {
	ledger     LedgerReader
	aggregates AggregateReader
	profiles   ProfileReader
	thresholds ThresholdProvider

	// Horloge injectable pour tester le fenêtrage
	now func() time.Time
}

func NewService(ledger LedgerReader, aggregates AggregateReader, profiles ProfileReader, thresholds ThresholdProvider) *Service {
	return &Service{
		ledger:     ledger,
		aggregates: aggregates,
		profiles:   profiles,
		thresholds: thresholds,
		now:        time.Now,
	}
}
