package model

import (
	"time"
)

// PaymentMethod correspond à l'enum payment_method côté base
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
	PaymentCashback PaymentMethod = "cashback"
	PaymentCoupon   PaymentMethod = "coupon"
)

// Receipt représente un ticket d'achat dans un établissement.
// Les montants sont stockés en centimes.
type Receipt struct {
	ID              int64         `json:"id"`
	CustomerID      string        `json:"customer_id"`
	EstablishmentID int64         `json:"establishment_id"`
	Amount          int64         `json:"amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Gain représente la récompense (XP + cashback) attribuée pour un receipt.
// XP et CashbackMoney sont nullables en base : null vaut 0.
// Pour le fenêtrage temporel, la date de référence d'un gain est celle
// de son receipt, pas son propre created_at.
type Gain struct {
	ID              int64     `json:"id"`
	ReceiptID       *int64    `json:"receipt_id"`
	EstablishmentID int64     `json:"establishment_id"`
	XP              int       `json:"xp"`
	CashbackMoney   int64     `json:"cashback_money"`
	CreatedAt       time.Time `json:"created_at"`
}

// Spending représente une dépense de cashback, en centimes.
type Spending struct {
	ID              int64     `json:"id"`
	CustomerID      string    `json:"customer_id"`
	EstablishmentID int64     `json:"establishment_id"`
	Amount          int64     `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserStats regroupe les totaux dérivés du ledger pour un utilisateur.
// TotalCashback est en euros (earned - spent), jamais plafonné à zéro.
type UserStats struct {
	TotalXP       int     `json:"totalXP"`
	TotalCashback float64 `json:"totalCashback"`
	GainsCount    int     `json:"gainsCount"`
}
