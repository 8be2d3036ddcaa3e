package core

import (
	"strings"
	"time"
)

const (
	AccountCash       AccountType = "cash"
	AccountBank       AccountType = "bank"
	AccountWallet     AccountType = "wallet"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"

	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"

	ClassificationNeeds   Classification = "needs"
	ClassificationWants   Classification = "wants"
	ClassificationSavings Classification = "savings"
	ClassificationNone    Classification = ""
)

type (
	AccountType string

	// CategoryType drives the balance sign of every transaction in the
	// category: income adds, expense subtracts.
	CategoryType string

	// Classification is the secondary needs/wants/savings bucketing used
	// only for report breakdowns. Independent of CategoryType.
	Classification string

	// Date is a calendar day; the time-of-day component is always midnight UTC.
	Date struct {
		time.Time
	}

	User struct {
		ID           int64
		Name         string
		Email        string
		PasswordHash string
		CreatedAt    time.Time
	}

	Account struct {
		ID        int64
		UserID    int64
		Name      string
		Type      AccountType
		Balance   Money
		CreatedAt time.Time
	}

	// Category is either user-owned or, when UserID is nil, a system
	// category visible to every user.
	Category struct {
		ID             int64
		UserID         *int64
		Name           string
		Type           CategoryType
		Classification Classification
		Icon           string
	}

	// Transaction belongs to one account and one category. Its Type is
	// always derived from the category at write time, never taken from
	// the caller. Ownership is transitive through the account.
	Transaction struct {
		ID          int64
		AccountID   int64
		CategoryID  int64
		Amount      Money
		Type        CategoryType
		Date        Date
		Description string
	}

	Budget struct {
		ID         int64
		UserID     int64
		CategoryID int64
		Limit      Money
		StartDate  Date
		EndDate    Date
	}
)

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidInput
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseAccountType validates an account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case AccountCash:
		return AccountCash, nil
	case AccountBank:
		return AccountBank, nil
	case AccountWallet:
		return AccountWallet, nil
	case AccountSavings:
		return AccountSavings, nil
	case AccountCreditCard:
		return AccountCreditCard, nil
	}
	return "", ErrInvalidInput
}

// ParseCategoryType validates a category type string.
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryIncome:
		return CategoryIncome, nil
	case CategoryExpense:
		return CategoryExpense, nil
	}
	return "", ErrInvalidInput
}

// ParseClassification validates a classification string; empty is allowed
// and means the category takes part in no report bucket.
func ParseClassification(s string) (Classification, error) {
	switch Classification(strings.ToLower(strings.TrimSpace(s))) {
	case ClassificationNeeds:
		return ClassificationNeeds, nil
	case ClassificationWants:
		return ClassificationWants, nil
	case ClassificationSavings:
		return ClassificationSavings, nil
	case ClassificationNone:
		return ClassificationNone, nil
	}
	return "", ErrInvalidInput
}

// IsSystem reports whether the category is shared across all users.
func (c Category) IsSystem() bool { return c.UserID == nil }

// VisibleTo reports whether a user may reference this category on a
// transaction or budget: any system category, or their own.
func (c Category) VisibleTo(userID int64) bool {
	return c.UserID == nil || *c.UserID == userID
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidInput
	}
	if len(a.Name) > 100 {
		return ErrInvalidInput
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	if len(c.Name) > 100 {
		return ErrInvalidInput
	}
	if _, err := ParseCategoryType(string(c.Type)); err != nil {
		return err
	}
	if _, err := ParseClassification(string(c.Classification)); err != nil {
		return err
	}
	return nil
}

func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidInput
	}
	if t.Date.IsZero() {
		return ErrInvalidInput
	}
	if len(t.Description) > 255 {
		return ErrInvalidInput
	}
	return nil
}

func (b Budget) Validate() error {
	if !b.Limit.IsPositive() {
		return ErrInvalidInput
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return ErrInvalidInput
	}
	if b.EndDate.Before(b.StartDate.Time) {
		return ErrInvalidRange
	}
	return nil
}
