package model

// UserTotal est une ligne d'agrégat brut (avant enrichissement profil) :
// total d'XP et nombre de receipts d'un utilisateur sur une fenêtre.
type UserTotal struct {
	CustomerID   string `json:"customer_id"`
	TotalXP      int    `json:"total_xp"`
	ReceiptCount int    `json:"receipt_count"`
}

// LeaderboardEntry est une ligne de classement enrichie pour l'affichage.
// Seuls username et avatar sont exposés, volontairement.
type LeaderboardEntry struct {
	CustomerID   string `json:"customer_id"`
	TotalXP      int    `json:"total_xp"`
	ReceiptCount int    `json:"receipt_count"`
	Rank         int    `json:"rank"`
	Username     string `json:"username,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
}

// UserRank est la position d'un utilisateur dans un classement fenêtré
type UserRank struct {
	CustomerID string `json:"customer_id"`
	Period     string `json:"period"`
	Rank       int    `json:"rank"`
	Ranked     bool   `json:"ranked"`
}

// Profile est la projection minimale d'un profil utilisateur
// utilisée pour l'enrichissement des classements.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
