// Package storage is the SQLite persistence layer. All ownership scoping
// happens here: every query that touches user data carries the user id, so a
// row belonging to someone else is indistinguishable from a missing row.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// --- users ---

func (r *SQLiteRepository) CreateUser(ctx context.Context, u core.User) (core.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash)
	if isUniqueViolation(err) {
		return core.User{}, core.ErrEmailTaken
	}
	if err != nil {
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.ID, err = res.LastInsertId()
	if err != nil {
		return core.User{}, fmt.Errorf("user id: %w", err)
	}

	slog.InfoContext(ctx, "User created", "user_id", u.ID)
	return u, nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, name, email, password_hash, created_at FROM users WHERE email = ?`,
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) GetUser(ctx context.Context, id int64) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, name, email, password_hash, created_at FROM users WHERE user_id = ?`,
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// --- accounts ---

func (r *SQLiteRepository) CreateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (user_id, name, account_type, balance_cents, initial_balance_cents)
		 VALUES (?, ?, ?, ?, ?)`,
		a.UserID, a.Name, a.Type, a.Balance.Cents, a.Balance.Cents)
	if err != nil {
		return core.Account{}, fmt.Errorf("insert account: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return core.Account{}, fmt.Errorf("account id: %w", err)
	}

	slog.InfoContext(ctx, "Account created",
		"account_id", a.ID,
		"user_id", a.UserID,
		"balance_cents", a.Balance.Cents)
	return a, nil
}

func (r *SQLiteRepository) GetAccount(ctx context.Context, userID, accountID int64) (core.Account, error) {
	var a core.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, user_id, name, account_type, balance_cents, created_at
		 FROM accounts WHERE account_id = ? AND user_id = ?`,
		accountID, userID).Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance.Cents, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Account{}, core.ErrNotFound
	}
	if err != nil {
		return core.Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) ListAccounts(ctx context.Context, userID int64) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_id, user_id, name, account_type, balance_cents, created_at
		 FROM accounts WHERE user_id = ? ORDER BY account_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var a core.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance.Cents, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateAccount changes name and type only. Balance moves exclusively through
// ApplyTransaction and RevertTransaction.
func (r *SQLiteRepository) UpdateAccount(ctx context.Context, a core.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, account_type = ? WHERE account_id = ? AND user_id = ?`,
		a.Name, a.Type, a.ID, a.UserID)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteAccount(ctx context.Context, userID, accountID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE account_id = ? AND user_id = ?`,
		accountID, userID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Account deleted", "account_id", accountID, "user_id", userID)
	return nil
}

// AccountSnapshot is what the reconciler needs to verify one account.
type AccountSnapshot struct {
	AccountID    int64
	Balance      core.Money
	Initial      core.Money
	SignedLedger core.Money
}

// SnapshotAccount reads the stored balance, the opening balance and the signed
// sum of all transactions in one query so the three figures come from a single
// consistent view of the database.
func (r *SQLiteRepository) SnapshotAccount(ctx context.Context, accountID int64) (AccountSnapshot, error) {
	var s AccountSnapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT a.account_id, a.balance_cents, a.initial_balance_cents,
		        COALESCE(SUM(CASE WHEN t.transaction_type = 'income' THEN t.amount_cents ELSE -t.amount_cents END), 0)
		 FROM accounts a
		 LEFT JOIN transactions t ON t.account_id = a.account_id
		 WHERE a.account_id = ?
		 GROUP BY a.account_id`,
		accountID).Scan(&s.AccountID, &s.Balance.Cents, &s.Initial.Cents, &s.SignedLedger.Cents)
	if errors.Is(err, sql.ErrNoRows) {
		return AccountSnapshot{}, core.ErrNotFound
	}
	if err != nil {
		return AccountSnapshot{}, fmt.Errorf("snapshot account: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) ListAccountIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT account_id FROM accounts ORDER BY account_id`)
	if err != nil {
		return nil, fmt.Errorf("list account ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// --- categories ---

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, name, category_type, classification, icon)
		 VALUES (?, ?, ?, ?, ?)`,
		c.UserID, c.Name, c.Type, c.Classification, c.Icon)
	if err != nil {
		return core.Category{}, fmt.Errorf("insert category: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return core.Category{}, fmt.Errorf("category id: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "category_id", c.ID, "name", c.Name, "type", c.Type)
	return c, nil
}

// GetCategory returns a category the user may reference: their own or a
// system one.
func (r *SQLiteRepository) GetCategory(ctx context.Context, userID, categoryID int64) (core.Category, error) {
	var c core.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT category_id, user_id, name, category_type, classification, icon
		 FROM categories WHERE category_id = ? AND (user_id IS NULL OR user_id = ?)`,
		categoryID, userID).Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Classification, &c.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, core.ErrNotFound
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListCategories returns the system categories plus the user's own, system
// ones first.
func (r *SQLiteRepository) ListCategories(ctx context.Context, userID int64) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category_id, user_id, name, category_type, classification, icon
		 FROM categories WHERE user_id IS NULL OR user_id = ?
		 ORDER BY user_id IS NOT NULL, category_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Classification, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateCategory only ever matches user-owned rows; system categories are
// immutable through the API.
func (r *SQLiteRepository) UpdateCategory(ctx context.Context, userID int64, c core.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, category_type = ?, classification = ?, icon = ?
		 WHERE category_id = ? AND user_id = ?`,
		c.Name, c.Type, c.Classification, c.Icon, c.ID, userID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE category_id = ? AND user_id = ?`,
		categoryID, userID)
	if isForeignKeyViolation(err) {
		return core.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Category deleted", "category_id", categoryID, "user_id", userID)
	return nil
}

// --- transactions ---

// ApplyTransaction inserts the transaction and moves the account balance in a
// single database transaction. The balance update is relative, so concurrent
// writers against the same account cannot lose each other's delta.
func (r *SQLiteRepository) ApplyTransaction(ctx context.Context, t core.Transaction, delta core.Money) (core.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("begin apply: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (account_id, category_id, amount_cents, transaction_type, transaction_date, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.AccountID, t.CategoryID, t.Amount.Cents, t.Type, t.Date.String(), t.Description)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction id: %w", err)
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE accounts SET balance_cents = balance_cents + ? WHERE account_id = ?`,
		delta.Cents, t.AccountID)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("apply balance delta: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("apply balance rows: %w", err)
	}
	if n == 0 {
		return core.Transaction{}, core.ErrInconsistentState
	}

	if err := tx.Commit(); err != nil {
		return core.Transaction{}, fmt.Errorf("commit apply: %w", err)
	}

	slog.InfoContext(ctx, "Transaction applied",
		"transaction_id", t.ID,
		"account_id", t.AccountID,
		"type", t.Type,
		"amount_cents", t.Amount.Cents,
		"delta_cents", delta.Cents)
	return t, nil
}

// RevertTransaction deletes the transaction and undoes its balance effect in
// a single database transaction.
func (r *SQLiteRepository) RevertTransaction(ctx context.Context, transactionID, accountID int64, delta core.Money) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin revert: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE transaction_id = ? AND account_id = ?`,
		transactionID, accountID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE accounts SET balance_cents = balance_cents + ? WHERE account_id = ?`,
		delta.Cents, accountID)
	if err != nil {
		return fmt.Errorf("revert balance delta: %w", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("revert balance rows: %w", err)
	}
	if n == 0 {
		return core.ErrInconsistentState
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit revert: %w", err)
	}

	slog.InfoContext(ctx, "Transaction reverted",
		"transaction_id", transactionID,
		"account_id", accountID,
		"delta_cents", delta.Cents)
	return nil
}

// GetTransaction resolves a transaction through the owning account, so a
// transaction on someone else's account reads as not found.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, userID, transactionID int64) (core.Transaction, error) {
	var (
		t       core.Transaction
		rawDate string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT t.transaction_id, t.account_id, t.category_id, t.amount_cents,
		        t.transaction_type, t.transaction_date, t.description
		 FROM transactions t
		 JOIN accounts a ON a.account_id = t.account_id
		 WHERE t.transaction_id = ? AND a.user_id = ?`,
		transactionID, userID).Scan(
		&t.ID, &t.AccountID, &t.CategoryID, &t.Amount.Cents, &t.Type, &rawDate, &t.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	if t.Date, err = core.ParseDate(rawDate); err != nil {
		return core.Transaction{}, fmt.Errorf("stored transaction date %q: %w", rawDate, err)
	}
	return t, nil
}

// TransactionFilter narrows ListTransactions. Zero values mean "no filter".
type TransactionFilter struct {
	AccountID int64
	Start     core.Date
	End       core.Date
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID int64, f TransactionFilter) ([]core.Transaction, error) {
	query := `SELECT t.transaction_id, t.account_id, t.category_id, t.amount_cents,
	                 t.transaction_type, t.transaction_date, t.description
	          FROM transactions t
	          JOIN accounts a ON a.account_id = t.account_id
	          WHERE a.user_id = ?`
	args := []any{userID}

	if f.AccountID != 0 {
		query += ` AND t.account_id = ?`
		args = append(args, f.AccountID)
	}
	if !f.Start.IsZero() {
		query += ` AND t.transaction_date >= ?`
		args = append(args, f.Start.String())
	}
	if !f.End.IsZero() {
		query += ` AND t.transaction_date <= ?`
		args = append(args, f.End.String())
	}
	query += ` ORDER BY t.transaction_date DESC, t.transaction_id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			rawDate string
		)
		if err := rows.Scan(&t.ID, &t.AccountID, &t.CategoryID, &t.Amount.Cents, &t.Type, &rawDate, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.Date, err = core.ParseDate(rawDate); err != nil {
			return nil, fmt.Errorf("stored transaction date %q: %w", rawDate, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// --- report aggregation ---

// SumByType totals transaction amounts of one type across all of the user's
// accounts within [start, end].
func (r *SQLiteRepository) SumByType(ctx context.Context, userID int64, t core.CategoryType, start, end core.Date) (core.Money, error) {
	var m core.Money
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(t.amount_cents), 0)
		 FROM transactions t
		 JOIN accounts a ON a.account_id = t.account_id
		 WHERE a.user_id = ? AND t.transaction_type = ?
		   AND t.transaction_date >= ? AND t.transaction_date <= ?`,
		userID, t, start.String(), end.String()).Scan(&m.Cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum by type: %w", err)
	}
	return m, nil
}

// SumByClassification totals expense amounts whose category carries the given
// classification within [start, end].
func (r *SQLiteRepository) SumByClassification(ctx context.Context, userID int64, cl core.Classification, start, end core.Date) (core.Money, error) {
	var m core.Money
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(t.amount_cents), 0)
		 FROM transactions t
		 JOIN accounts a ON a.account_id = t.account_id
		 JOIN categories c ON c.category_id = t.category_id
		 WHERE a.user_id = ? AND t.transaction_type = 'expense' AND c.classification = ?
		   AND t.transaction_date >= ? AND t.transaction_date <= ?`,
		userID, cl, start.String(), end.String()).Scan(&m.Cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum by classification: %w", err)
	}
	return m, nil
}

// SumSpentByCategory totals expense amounts for one category within
// [start, end], used for budget progress.
func (r *SQLiteRepository) SumSpentByCategory(ctx context.Context, userID, categoryID int64, start, end core.Date) (core.Money, error) {
	var m core.Money
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(t.amount_cents), 0)
		 FROM transactions t
		 JOIN accounts a ON a.account_id = t.account_id
		 WHERE a.user_id = ? AND t.category_id = ? AND t.transaction_type = 'expense'
		   AND t.transaction_date >= ? AND t.transaction_date <= ?`,
		userID, categoryID, start.String(), end.String()).Scan(&m.Cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum spent by category: %w", err)
	}
	return m, nil
}

// --- budgets ---

func (r *SQLiteRepository) CreateBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (user_id, category_id, limit_cents, start_date, end_date)
		 VALUES (?, ?, ?, ?, ?)`,
		b.UserID, b.CategoryID, b.Limit.Cents, b.StartDate.String(), b.EndDate.String())
	if err != nil {
		return core.Budget{}, fmt.Errorf("insert budget: %w", err)
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return core.Budget{}, fmt.Errorf("budget id: %w", err)
	}

	slog.InfoContext(ctx, "Budget created",
		"budget_id", b.ID,
		"user_id", b.UserID,
		"category_id", b.CategoryID,
		"limit_cents", b.Limit.Cents)
	return b, nil
}

func (r *SQLiteRepository) GetBudget(ctx context.Context, userID, budgetID int64) (core.Budget, error) {
	var (
		b                core.Budget
		rawStart, rawEnd string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT budget_id, user_id, category_id, limit_cents, start_date, end_date
		 FROM budgets WHERE budget_id = ? AND user_id = ?`,
		budgetID, userID).Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Limit.Cents, &rawStart, &rawEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Budget{}, core.ErrNotFound
	}
	if err != nil {
		return core.Budget{}, fmt.Errorf("get budget: %w", err)
	}
	if b.StartDate, err = core.ParseDate(rawStart); err != nil {
		return core.Budget{}, fmt.Errorf("stored budget start %q: %w", rawStart, err)
	}
	if b.EndDate, err = core.ParseDate(rawEnd); err != nil {
		return core.Budget{}, fmt.Errorf("stored budget end %q: %w", rawEnd, err)
	}
	return b, nil
}

func (r *SQLiteRepository) ListBudgets(ctx context.Context, userID int64) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT budget_id, user_id, category_id, limit_cents, start_date, end_date
		 FROM budgets WHERE user_id = ? ORDER BY budget_id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var (
			b                core.Budget
			rawStart, rawEnd string
		)
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Limit.Cents, &rawStart, &rawEnd); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		if b.StartDate, err = core.ParseDate(rawStart); err != nil {
			return nil, fmt.Errorf("stored budget start %q: %w", rawStart, err)
		}
		if b.EndDate, err = core.ParseDate(rawEnd); err != nil {
			return nil, fmt.Errorf("stored budget end %q: %w", rawEnd, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *SQLiteRepository) UpdateBudget(ctx context.Context, b core.Budget) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE budgets SET category_id = ?, limit_cents = ?, start_date = ?, end_date = ?
		 WHERE budget_id = ? AND user_id = ?`,
		b.CategoryID, b.Limit.Cents, b.StartDate.String(), b.EndDate.String(), b.ID, b.UserID)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update budget rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteBudget(ctx context.Context, userID, budgetID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM budgets WHERE budget_id = ? AND user_id = ?`,
		budgetID, userID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete budget rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}

	slog.InfoContext(ctx, "Budget deleted", "budget_id", budgetID, "user_id", userID)
	return nil
}
