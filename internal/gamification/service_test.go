package gamification

import (
	"context"
	"time"

	model "github.com/BasileDS/royaume-backend/internal/models"
)

// Horloge fixe pour les tests de fenêtrage
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func ptrInt64(v int64) *int64 {
	return &v
}

type fakeLedger struct {
	receipts  []model.Receipt
	gains     []model.Gain
	spendings []model.Spending

	receiptsErr  error
	gainsErr     error
	spendingsErr error

	receiptCalls int
}

func (f *fakeLedger) ReceiptsByCustomer(_ context.Context, customerID string) ([]model.Receipt, error) {
	f.receiptCalls++
	if f.receiptsErr != nil {
		return nil, f.receiptsErr
	}
	var out []model.Receipt
	for _, r := range f.receipts {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) ReceiptsSince(_ context.Context, since time.Time) ([]model.Receipt, error) {
	f.receiptCalls++
	if f.receiptsErr != nil {
		return nil, f.receiptsErr
	}
	var out []model.Receipt
	for _, r := range f.receipts {
		if !r.CreatedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) GainsByReceiptIDs(_ context.Context, receiptIDs []int64) ([]model.Gain, error) {
	if f.gainsErr != nil {
		return nil, f.gainsErr
	}
	wanted := make(map[int64]bool, len(receiptIDs))
	for _, id := range receiptIDs {
		wanted[id] = true
	}
	var out []model.Gain
	for _, g := range f.gains {
		if g.ReceiptID != nil && wanted[*g.ReceiptID] {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeLedger) SpendingsByCustomer(_ context.Context, customerID string) ([]model.Spending, error) {
	if f.spendingsErr != nil {
		return nil, f.spendingsErr
	}
	var out []model.Spending
	for _, s := range f.spendings {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAggregates struct {
	windowed    []model.UserTotal
	windowedErr error
	allTime     []model.UserTotal
	allTimeErr  error

	windowedCalls int
}

func (f *fakeAggregates) WindowedTotals(_ context.Context, daysBack, limit int) ([]model.UserTotal, error) {
	f.windowedCalls++
	if f.windowedErr != nil {
		return nil, f.windowedErr
	}
	totals := f.windowed
	if len(totals) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

func (f *fakeAggregates) AllTimeTotals(_ context.Context, limit int) ([]model.UserTotal, error) {
	if f.allTimeErr != nil {
		return nil, f.allTimeErr
	}
	totals := f.allTime
	if len(totals) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

type fakeProfiles struct {
	profiles map[string]model.Profile
	err      error

	requested [][]string
}

func (f *fakeProfiles) ProfilesByIDs(_ context.Context, customerIDs []string) ([]model.Profile, error) {
	f.requested = append(f.requested, customerIDs)
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Profile
	for _, id := range customerIDs {
		if p, ok := f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeThresholds struct {
	thresholds []model.LevelThreshold
	err        error

	calls int
}

func (f *fakeThresholds) LevelThresholds(_ context.Context) ([]model.LevelThreshold, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.thresholds, nil
}

func newTestService(ledger *fakeLedger, aggregates *fakeAggregates, profiles *fakeProfiles, thresholds *fakeThresholds) *Service {
	if ledger == nil {
		ledger = &fakeLedger{}
	}
	if aggregates == nil {
		aggregates = &fakeAggregates{}
	}
	if profiles == nil {
		profiles = &fakeProfiles{}
	}
	if thresholds == nil {
		thresholds = &fakeThresholds{}
	}
	s := NewService(ledger, aggregates, profiles, thresholds)
	s.now = func() time.Time { return testNow }
	return s
}
