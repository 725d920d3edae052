package storage

import (
	"context"
	"fmt"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/BasileDS/royaume-backend/internal/scanner"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileStore lit la projection minimale des profils (username + avatar).
// Les champs nominatifs ne sont volontairement pas exposés ici.
type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

// ProfilesByIDs récupère les profils d'un lot d'utilisateurs en une requête
func (s *ProfileStore) ProfilesByIDs(ctx context.Context, customerIDs []string) ([]model.Profile, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, username, avatar_url
		FROM profiles
		WHERE id = ANY($1)
	`, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("could not query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanner.ScanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan profile row: %w", err)
		}
		profiles = append(profiles, *p)
	}

	return profiles, rows.Err()
}
