package ledger

import "context"

// LedgerService defines business logic for maintaining the three
// deduction ledgers. Balance decrements during a payroll run are owned
// by the payroll service, not by this one.
type LedgerService interface {
	// Deposits
	CreateDeposit(ctx context.Context, req CreateDepositRequest) (DepositResponse, error)
	ListDeposits(ctx context.Context) ([]DepositResponse, error)

	// Advances
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	ApproveAdvance(ctx context.Context, id string) (AdvanceResponse, error)
	ListAdvances(ctx context.Context) ([]AdvanceResponse, error)

	// Loans
	CreateLoan(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	ListLoans(ctx context.Context) ([]LoanResponse, error)
}
