package services_test

import (
	"context"
	"time"

	"github.com/finbuddy/finbuddy_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// stubTx satisfies pgx.Tx for passing through services under test. None of
// its methods are ever invoked: services only hand the tx to repositories,
// and the mock repositories never touch it.
type stubTx struct {
	pgx.Tx
}

// MockAccountRepository is a mock type for the AccountRepositoryWithTx interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, accountID string, userID string, status domain.AccountStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, status, updatedBy, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, accountID, newBalance, updatedBy, now)
	return args.Error(0)
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockLoanRepository is a mock type for the LoanRepositoryWithTx interface
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string, userID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByUserAndType(ctx context.Context, userID string, loanType domain.LoanType) ([]domain.Loan, error) {
	args := m.Called(ctx, userID, loanType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByUserAndStatus(ctx context.Context, userID string, status domain.LoanStatus) ([]domain.Loan, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListOverdueLoansByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	args := m.Called(ctx, tx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	args := m.Called(ctx, tx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoanUrgency(ctx context.Context, loanID string, userID string, isUrgent bool, updatedBy string, now time.Time) error {
	args := m.Called(ctx, loanID, userID, isUrgent, updatedBy, now)
	return args.Error(0)
}

func (m *MockLoanRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockLoanRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLoanRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockRecurringExpenseRepository is a mock type for the RecurringExpenseRepositoryWithTx interface
type MockRecurringExpenseRepository struct {
	mock.Mock
}

func (m *MockRecurringExpenseRepository) FindRecurringExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.RecurringExpense, error) {
	args := m.Called(ctx, expenseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringExpense), args.Error(1)
}

func (m *MockRecurringExpenseRepository) ListRecurringExpensesByUser(ctx context.Context, userID string) ([]domain.RecurringExpense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpense), args.Error(1)
}

func (m *MockRecurringExpenseRepository) ListDueRecurringExpensesByUser(ctx context.Context, userID string, dueOn time.Time) ([]domain.RecurringExpense, error) {
	args := m.Called(ctx, userID, dueOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpense), args.Error(1)
}

func (m *MockRecurringExpenseRepository) ListOverdueRecurringExpensesByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.RecurringExpense, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpense), args.Error(1)
}

func (m *MockRecurringExpenseRepository) SaveRecurringExpense(ctx context.Context, expense domain.RecurringExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) UpdateRecurringExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.RecurringExpense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) UpdateRecurringExpenseStatus(ctx context.Context, expenseID string, userID string, status domain.RecurringExpenseStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, expenseID, userID, status, updatedBy, now)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRecurringExpenseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRecurringExpenseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) AppendTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
