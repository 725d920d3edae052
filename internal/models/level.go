package model

// LevelThreshold représente un palier de progression, géré côté Directus.
// La table triée par xp_required doit être strictement croissante.
type LevelThreshold struct {
	ID         int64  `json:"id"`
	Level      int    `json:"level"`
	XPRequired int    `json:"xp_required"`
	Name       string `json:"name"`
	SortOrder  int    `json:"sort_order"`
}

// LevelProgress est le résultat du calcul de niveau pour un total d'XP donné
type LevelProgress struct {
	CurrentLevel    *LevelThreshold `json:"currentLevel"`
	NextLevel       *LevelThreshold `json:"nextLevel"`
	ProgressPercent float64         `json:"progressPercent"`
	XPToNextLevel   int             `json:"xpToNextLevel"`
	CurrentXP       int             `json:"currentXP"`
	NextLevelXP     int             `json:"nextLevelXP"`
}
