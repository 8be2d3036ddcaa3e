package services

import (
	"context"

	"fintrack/internal/core"
)

type ReportStore interface {
	SumByType(ctx context.Context, userID int64, t core.CategoryType, start, end core.Date) (core.Money, error)
	SumByClassification(ctx context.Context, userID int64, cl core.Classification, start, end core.Date) (core.Money, error)
}

// ReportService aggregates a user's transactions into a period summary.
// The same interval always yields a bit-identical report until the underlying
// transactions change.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Summary builds the income/expense/classification report over [start, end].
func (s *ReportService) Summary(ctx context.Context, userID int64, start, end core.Date) (core.Report, error) {
	if start.IsZero() || end.IsZero() || end.Before(start.Time) {
		return core.Report{}, core.ErrInvalidRange
	}

	income, err := s.store.SumByType(ctx, userID, core.CategoryIncome, start, end)
	if err != nil {
		return core.Report{}, err
	}
	expenses, err := s.store.SumByType(ctx, userID, core.CategoryExpense, start, end)
	if err != nil {
		return core.Report{}, err
	}
	needs, err := s.store.SumByClassification(ctx, userID, core.ClassificationNeeds, start, end)
	if err != nil {
		return core.Report{}, err
	}
	wants, err := s.store.SumByClassification(ctx, userID, core.ClassificationWants, start, end)
	if err != nil {
		return core.Report{}, err
	}
	savings, err := s.store.SumByClassification(ctx, userID, core.ClassificationSavings, start, end)
	if err != nil {
		return core.Report{}, err
	}

	return core.BuildReport(start, end, income, expenses, needs, wants, savings), nil
}
