package storage

import (
	"context"
	"errors"
	"fmt"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/BasileDS/royaume-backend/internal/scanner"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAggregateUnavailable signale que la fonction d'agrégat précalculée
// n'existe pas côté base. Le moteur de classement bascule alors sur le
// fallback en mémoire. Toute autre erreur reste une erreur de fetch normale.
var ErrAggregateUnavailable = errors.New("windowed aggregate function unavailable")

// Code SQLSTATE "undefined_function"
const undefinedFunctionCode = "42883"

// AggregateStore lit les vues et fonctions d'agrégat précalculées par la base
type AggregateStore struct {
	db *pgxpool.Pool
}

func NewAggregateStore(db *pgxpool.Pool) *AggregateStore {
	return &AggregateStore{db: db}
}

// WindowedTotals appelle get_weekly_leaderboard(days_back, result_limit),
// qui renvoie les totaux d'XP par utilisateur déjà triés par total_xp
// décroissant. Renvoie ErrAggregateUnavailable si la fonction n'est pas
// déployée sur cette base.
func (s *AggregateStore) WindowedTotals(ctx context.Context, daysBack, limit int) ([]model.UserTotal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT customer_id, total_xp, receipt_count
		FROM get_weekly_leaderboard($1, $2)
		ORDER BY total_xp DESC, customer_id ASC
	`, daysBack, limit)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedFunctionCode {
			return nil, ErrAggregateUnavailable
		}
		return nil, fmt.Errorf("could not query windowed leaderboard: %w", err)
	}
	defer rows.Close()

	var totals []model.UserTotal
	for rows.Next() {
		t, err := scanner.ScanUserTotal(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan leaderboard row: %w", err)
		}
		totals = append(totals, *t)
	}

	return totals, rows.Err()
}

// AllTimeTotals lit la vue user_xp_total pour le classement global.
// Ce chemin n'utilise jamais le fallback manuel.
func (s *AggregateStore) AllTimeTotals(ctx context.Context, limit int) ([]model.UserTotal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT customer_id, total_xp, receipt_count
		FROM user_xp_total
		WHERE total_xp IS NOT NULL
		ORDER BY total_xp DESC, customer_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query all-time leaderboard: %w", err)
	}
	defer rows.Close()

	var totals []model.UserTotal
	for rows.Next() {
		t, err := scanner.ScanUserTotal(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan leaderboard row: %w", err)
		}
		totals = append(totals, *t)
	}

	return totals, rows.Err()
}
