package scanner

import (
	"database/sql"

	model "github.com/BasileDS/royaume-backend/internal/models"
	"github.com/BasileDS/royaume-backend/internal/utils"
)

// ScanReceipt scanne une ligne SQL vers un Receipt
func ScanReceipt(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Receipt, error) {
	var r model.Receipt

	err := scanner.Scan(
		&r.ID, &r.CustomerID, &r.EstablishmentID,
		&r.Amount, &r.PaymentMethod, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// ScanGain scanne une ligne SQL vers un Gain
// Utilise les types sql.Null* : xp et cashback_money null valent 0
func ScanGain(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Gain, error) {
	var g model.Gain
	var receiptID, xp, cashback sql.NullInt64

	err := scanner.Scan(
		&g.ID, &receiptID, &g.EstablishmentID,
		&xp, &cashback, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	g.ReceiptID = utils.NullInt64ToPointer(receiptID)
	g.XP = utils.NullInt64ToInt(xp)
	g.CashbackMoney = utils.NullInt64ToInt64(cashback)

	return &g, nil
}

// ScanSpending scanne une ligne SQL vers un Spending
func ScanSpending(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Spending, error) {
	var s model.Spending

	err := scanner.Scan(
		&s.ID, &s.CustomerID, &s.EstablishmentID,
		&s.Amount, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ScanProfile scanne une ligne SQL vers une projection minimale de profil
func ScanProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Profile, error) {
	var p model.Profile
	var username, avatarURL sql.NullString

	err := scanner.Scan(&p.ID, &username, &avatarURL)
	if err != nil {
		return nil, err
	}

	p.Username = utils.NullStringToString(username)
	p.AvatarURL = utils.NullStringToString(avatarURL)

	return &p, nil
}

// ScanUserTotal scanne une ligne d'agrégat (customer_id, total_xp, receipt_count)
func ScanUserTotal(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserTotal, error) {
	var t model.UserTotal
	var totalXP, receiptCount sql.NullInt64

	err := scanner.Scan(&t.CustomerID, &totalXP, &receiptCount)
	if err != nil {
		return nil, err
	}

	t.TotalXP = utils.NullInt64ToInt(totalXP)
	t.ReceiptCount = utils.NullInt64ToInt(receiptCount)

	return &t, nil
}
