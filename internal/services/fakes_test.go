package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"budgy/internal/models/db_models"
	"budgy/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errStoreDown = errors.New("connection refused")

// memStore is a tiny keyed table shared by the fake repositories.
type memStore[T any] struct {
	mu   sync.Mutex
	rows map[uuid.UUID]T
	id   func(*T) uuid.UUID
	err  error
}

func newMemStore[T any](id func(*T) uuid.UUID) *memStore[T] {
	return &memStore[T]{rows: map[uuid.UUID]T{}, id: id}
}

func (m *memStore[T]) Insert(_ context.Context, e *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows[m.id(e)] = *e
	return nil
}

func (m *memStore[T]) Update(ctx context.Context, e *T) error {
	return m.Insert(ctx, e)
}

func (m *memStore[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memStore[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	row, err := m.FindByID(ctx, id)
	return row != nil, err
}

func (m *memStore[T]) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

func (m *memStore[T]) FindAll(ctx context.Context) ([]T, error) {
	return m.where(func(T) bool { return true })
}

func (m *memStore[T]) where(keep func(T) bool) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []T
	for _, row := range m.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	*memStore[db_models.User]
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{newMemStore(func(u *db_models.User) uuid.UUID { return u.ID })}
}

func (f *fakeUserRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	u, err := f.FindByID(ctx, id)
	if u != nil && !u.Active {
		return nil, nil
	}
	return u, err
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	rows, err := f.where(func(u db_models.User) bool { return u.Email == email })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := f.FindByEmail(ctx, email)
	return u != nil, err
}

func (f *fakeUserRepo) FindAllActive(context.Context) ([]db_models.User, error) {
	return f.where(func(u db_models.User) bool { return u.Active })
}

// addUser stores an active user directly.
func (f *fakeUserRepo) addUser(email string) *db_models.User {
	u := &db_models.User{
		BaseModel: db_models.NewBaseModel(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Gender:    db_models.GenderFemale,
		Password:  "secret",
		Role:      db_models.RoleUser,
	}
	_ = f.Insert(context.Background(), u)
	return u
}

type fakeCategoryRepo struct {
	*memStore[db_models.ExpenseCategory]
	expenses *fakeExpenseRepo
}

func newFakeCategoryRepo(expenses *fakeExpenseRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		memStore: newMemStore(func(c *db_models.ExpenseCategory) uuid.UUID { return c.ID }),
		expenses: expenses,
	}
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*db_models.ExpenseCategory, error) {
	rows, err := f.where(func(c db_models.ExpenseCategory) bool { return c.Name == name })
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (f *fakeCategoryRepo) DeleteDetachingExpenses(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.expenses != nil {
		f.expenses.mu.Lock()
		for key, e := range f.expenses.rows {
			if e.CategoryID != nil && *e.CategoryID == id {
				e.CategoryID = nil
				f.expenses.rows[key] = e
			}
		}
		f.expenses.mu.Unlock()
	}
	return f.DeleteByID(ctx, id)
}

type fakeExpenseRepo struct {
	*memStore[db_models.Expense]
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{newMemStore(func(e *db_models.Expense) uuid.UUID { return e.ID })}
}

func (f *fakeExpenseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]db_models.Expense, error) {
	return f.where(func(e db_models.Expense) bool { return e.UserID == userID })
}

func (f *fakeExpenseRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]db_models.Expense, error) {
	return f.where(func(e db_models.Expense) bool { return e.CategoryID != nil && *e.CategoryID == categoryID })
}

func (f *fakeExpenseRepo) FindByUserAndCategory(_ context.Context, userID, categoryID uuid.UUID) ([]db_models.Expense, error) {
	return f.where(func(e db_models.Expense) bool {
		return e.UserID == userID && e.CategoryID != nil && *e.CategoryID == categoryID
	})
}

func (f *fakeExpenseRepo) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	rows, err := f.FindByUser(ctx, userID)
	total := decimal.Zero
	for _, e := range rows {
		total = total.Add(e.Amount)
	}
	return total, err
}

type fakeIncomeRepo struct {
	*memStore[db_models.Income]
}

func newFakeIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{newMemStore(func(i *db_models.Income) uuid.UUID { return i.ID })}
}

func (f *fakeIncomeRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]db_models.Income, error) {
	return f.where(func(i db_models.Income) bool { return i.UserID == userID })
}

func (f *fakeIncomeRepo) FindByUserAndType(_ context.Context, userID uuid.UUID, t db_models.IncomeType) ([]db_models.Income, error) {
	return f.where(func(i db_models.Income) bool { return i.UserID == userID && i.IncomeType == t })
}

func (f *fakeIncomeRepo) FindByUserCreatedBetween(_ context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Income, error) {
	return f.where(func(i db_models.Income) bool {
		return i.UserID == userID && !i.CreatedAt.Before(start) && !i.CreatedAt.After(end)
	})
}

func (f *fakeIncomeRepo) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	rows, err := f.FindByUser(ctx, userID)
	total := decimal.Zero
	for _, i := range rows {
		total = total.Add(i.Amount)
	}
	return total, err
}

type fakeSavingsRepo struct {
	*memStore[db_models.Savings]
}

func newFakeSavingsRepo() *fakeSavingsRepo {
	return &fakeSavingsRepo{newMemStore(func(s *db_models.Savings) uuid.UUID { return s.ID })}
}

func (f *fakeSavingsRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]db_models.Savings, error) {
	return f.where(func(s db_models.Savings) bool { return s.UserID == userID })
}

func (f *fakeSavingsRepo) FindByPriority(_ context.Context, p db_models.SavingsPriority) ([]db_models.Savings, error) {
	return f.where(func(s db_models.Savings) bool { return s.Priority == p })
}

func (f *fakeSavingsRepo) FindByUserAndPriority(_ context.Context, userID uuid.UUID, p db_models.SavingsPriority) ([]db_models.Savings, error) {
	return f.where(func(s db_models.Savings) bool { return s.UserID == userID && s.Priority == p })
}

func (f *fakeSavingsRepo) FindByUserTargetBetween(_ context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Savings, error) {
	return f.where(func(s db_models.Savings) bool {
		return s.UserID == userID && !s.TargetDate.Before(start) && !s.TargetDate.After(end)
	})
}

type fakeAlertRepo struct {
	*memStore[db_models.Alert]
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{newMemStore(func(a *db_models.Alert) uuid.UUID { return a.ID })}
}

func (f *fakeAlertRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	return f.where(func(a db_models.Alert) bool { return a.UserID == userID })
}

func (f *fakeAlertRepo) FindUnreadByUser(_ context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	return f.where(func(a db_models.Alert) bool { return a.UserID == userID && !a.IsRead })
}

func (f *fakeAlertRepo) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	rows, err := f.FindUnreadByUser(ctx, userID)
	return int64(len(rows)), err
}

type fakeSummaryRepo struct {
	income, expenses []repositories.BucketSum
}

func (f *fakeSummaryRepo) IncomeSeries(context.Context, uuid.UUID, time.Time, time.Time, string) ([]repositories.BucketSum, error) {
	return f.income, nil
}

func (f *fakeSummaryRepo) ExpenseSeries(context.Context, uuid.UUID, time.Time, time.Time, string) ([]repositories.BucketSum, error) {
	return f.expenses, nil
}

var (
	_ repositories.UserRepository     = (*fakeUserRepo)(nil)
	_ repositories.CategoryRepository = (*fakeCategoryRepo)(nil)
	_ repositories.ExpenseRepository  = (*fakeExpenseRepo)(nil)
	_ repositories.IncomeRepository   = (*fakeIncomeRepo)(nil)
	_ repositories.SavingsRepository  = (*fakeSavingsRepo)(nil)
	_ repositories.AlertRepository    = (*fakeAlertRepo)(nil)
	_ repositories.SummaryRepository  = (*fakeSummaryRepo)(nil)
)

// recordingNotifier captures alerts synchronously.
type recordingNotifier struct {
	mu     sync.Mutex
	alerts []db_models.Alert
}

func (r *recordingNotifier) AlertCreated(_ context.Context, a *db_models.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, *a)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
