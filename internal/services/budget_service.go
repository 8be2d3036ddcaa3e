package services

import (
	"context"

	"fintrack/internal/core"
)

type BudgetStore interface {
	GetCategory(ctx context.Context, userID, categoryID int64) (core.Category, error)
	CreateBudget(ctx context.Context, b core.Budget) (core.Budget, error)
	GetBudget(ctx context.Context, userID, budgetID int64) (core.Budget, error)
	ListBudgets(ctx context.Context, userID int64) ([]core.Budget, error)
	UpdateBudget(ctx context.Context, b core.Budget) error
	DeleteBudget(ctx context.Context, userID, budgetID int64) error
	SumSpentByCategory(ctx context.Context, userID, categoryID int64, start, end core.Date) (core.Money, error)
}

// BudgetStatus is a budget with its live spending figures.
type BudgetStatus struct {
	Budget    core.Budget
	Spent     core.Money
	Remaining core.Money
}

// BudgetService manages spending limits per category and period.
type BudgetService struct {
	store BudgetStore
}

func NewBudgetService(store BudgetStore) *BudgetService {
	return &BudgetService{store: store}
}

func (s *BudgetService) Create(ctx context.Context, userID, categoryID int64, limit core.Money, start, end core.Date) (core.Budget, error) {
	if _, err := s.store.GetCategory(ctx, userID, categoryID); err != nil {
		return core.Budget{}, err
	}

	b := core.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Limit:      limit,
		StartDate:  start,
		EndDate:    end,
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}

	return s.store.CreateBudget(ctx, b)
}

// Get returns one budget with spending accumulated over its period.
func (s *BudgetService) Get(ctx context.Context, userID, budgetID int64) (BudgetStatus, error) {
	b, err := s.store.GetBudget(ctx, userID, budgetID)
	if err != nil {
		return BudgetStatus{}, err
	}
	return s.status(ctx, userID, b)
}

func (s *BudgetService) List(ctx context.Context, userID int64) ([]BudgetStatus, error) {
	budgets, err := s.store.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		st, err := s.status(ctx, userID, b)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, budgetID, categoryID int64, limit core.Money, start, end core.Date) (BudgetStatus, error) {
	if _, err := s.store.GetCategory(ctx, userID, categoryID); err != nil {
		return BudgetStatus{}, err
	}

	b := core.Budget{
		ID:         budgetID,
		UserID:     userID,
		CategoryID: categoryID,
		Limit:      limit,
		StartDate:  start,
		EndDate:    end,
	}
	if err := b.Validate(); err != nil {
		return BudgetStatus{}, err
	}

	if err := s.store.UpdateBudget(ctx, b); err != nil {
		return BudgetStatus{}, err
	}
	return s.status(ctx, userID, b)
}

func (s *BudgetService) Delete(ctx context.Context, userID, budgetID int64) error {
	return s.store.DeleteBudget(ctx, userID, budgetID)
}

func (s *BudgetService) status(ctx context.Context, userID int64, b core.Budget) (BudgetStatus, error) {
	spent, err := s.store.SumSpentByCategory(ctx, userID, b.CategoryID, b.StartDate, b.EndDate)
	if err != nil {
		return BudgetStatus{}, err
	}
	return BudgetStatus{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Limit.Sub(spent),
	}, nil
}
