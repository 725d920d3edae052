package gamification

import (
	"context"
	"fmt"

	model "github.com/BasileDS/royaume-backend/internal/models"
)

// ResolveLevel calcule le niveau courant et la progression vers le suivant
// à partir de la table des paliers (supposée triée par xp_required croissant).
// Table vide : résultat à zéro, sans erreur.
func ResolveLevel(thresholds []model.LevelThreshold, totalXP int) model.LevelProgress {
	progress := model.LevelProgress{CurrentXP: totalXP}

	if len(thresholds) == 0 {
		return progress
	}

	// Le niveau courant est le dernier palier atteint, le suivant est le
	// premier palier non atteint
	var current, next *model.LevelThreshold
	for i := range thresholds {
		if totalXP >= thresholds[i].XPRequired {
			current = &thresholds[i]
		} else {
			next = &thresholds[i]
			break
		}
	}

	// Sous le premier palier : on se cale sur le premier niveau
	if current == nil {
		current = &thresholds[0]
		if len(thresholds) > 1 {
			next = &thresholds[1]
		} else {
			next = nil
		}
	}

	// Niveau max atteint
	if next == nil {
		progress.CurrentLevel = current
		progress.ProgressPercent = 100
		progress.XPToNextLevel = 0
		progress.NextLevelXP = current.XPRequired
		return progress
	}

	xpInLevel := totalXP - current.XPRequired
	xpSpan := next.XPRequired - current.XPRequired

	var percent float64
	if xpSpan > 0 {
		percent = float64(xpInLevel) / float64(xpSpan) * 100
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
	}

	xpToNext := next.XPRequired - totalXP
	if xpToNext < 0 {
		xpToNext = 0
	}

	progress.CurrentLevel = current
	progress.NextLevel = next
	progress.ProgressPercent = percent
	progress.XPToNextLevel = xpToNext
	progress.NextLevelXP = next.XPRequired

	return progress
}

// ResolveUserLevel récupère la table des paliers une seule fois puis
// calcule la progression pour le total d'XP donné
func (s *Service) ResolveUserLevel(ctx context.Context, totalXP int) (model.LevelProgress, error) {
	thresholds, err := s.thresholds.LevelThresholds(ctx)
	if err != nil {
		return model.LevelProgress{CurrentXP: totalXP}, fmt.Errorf("could not fetch level thresholds: %w", err)
	}

	return ResolveLevel(thresholds, totalXP), nil
}

// Thresholds expose la table des paliers telle que fournie par le contenu
func (s *Service) Thresholds(ctx context.Context) ([]model.LevelThreshold, error) {
	return s.thresholds.LevelThresholds(ctx)
}

// LevelByNumber retrouve un palier par son numéro de niveau
func (s *Service) LevelByNumber(ctx context.Context, level int) (*model.LevelThreshold, error) {
	thresholds, err := s.thresholds.LevelThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch level thresholds: %w", err)
	}

	for i := range thresholds {
		if thresholds[i].Level == level {
			return &thresholds[i], nil
		}
	}

	return nil, nil
}
