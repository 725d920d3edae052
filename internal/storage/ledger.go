package storage

import (
	"context"
	"fmt"
	"time"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/BasileDS/royaume-backend/internal/scanner"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerStore lit les faits bruts du ledger (receipts, gains, spendings).
// Lecture seule : les écritures passent par le parcours d'achat, hors périmètre.
type LedgerStore struct {
	db *pgxpool.Pool
}

func NewLedgerStore(db *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{db: db}
}

// ReceiptsByCustomer récupère tous les receipts d'un utilisateur, sans filtre de date
func (s *LedgerStore) ReceiptsByCustomer(ctx context.Context, customerID string) ([]model.Receipt, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, establishment_id, amount, payment_method, created_at
		FROM receipts
		WHERE customer_id = $1
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("could not query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []model.Receipt
	for rows.Next() {
		r, err := scanner.ScanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan receipt row: %w", err)
		}
		receipts = append(receipts, *r)
	}

	return receipts, rows.Err()
}

// ReceiptsSince récupère tous les receipts de la population depuis une date.
// C'est la requête du fallback de classement fenêtré.
func (s *LedgerStore) ReceiptsSince(ctx context.Context, since time.Time) ([]model.Receipt, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, establishment_id, amount, payment_method, created_at
		FROM receipts
		WHERE created_at >= $1
	`, since)
	if err != nil {
		return nil, fmt.Errorf("could not query receipts since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	var receipts []model.Receipt
	for rows.Next() {
		r, err := scanner.ScanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan receipt row: %w", err)
		}
		receipts = append(receipts, *r)
	}

	return receipts, rows.Err()
}

// GainsByReceiptIDs récupère tous les gains rattachés à un ensemble de receipts
func (s *LedgerStore) GainsByReceiptIDs(ctx context.Context, receiptIDs []int64) ([]model.Gain, error) {
	if len(receiptIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, receipt_id, establishment_id, xp, cashback_money, created_at
		FROM gains
		WHERE receipt_id = ANY($1)
	`, receiptIDs)
	if err != nil {
		return nil, fmt.Errorf("could not query gains: %w", err)
	}
	defer rows.Close()

	var gains []model.Gain
	for rows.Next() {
		g, err := scanner.ScanGain(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan gain row: %w", err)
		}
		gains = append(gains, *g)
	}

	return gains, rows.Err()
}

// SpendingsByCustomer récupère toutes les dépenses de cashback d'un utilisateur
func (s *LedgerStore) SpendingsByCustomer(ctx context.Context, customerID string) ([]model.Spending, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, customer_id, establishment_id, amount, created_at
		FROM spendings
		WHERE customer_id = $1
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("could not query spendings: %w", err)
	}
	defer rows.Close()

	var spendings []model.Spending
	for rows.Next() {
		sp, err := scanner.ScanSpending(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan spending row: %w", err)
		}
		spendings = append(spendings, *sp)
	}

	return spendings, rows.Err()
}
