package payroll

import "context"

// PayrollService defines business logic for the payroll engine.
type PayrollService interface {
	// GeneratePayroll computes and persists one payroll record per teacher
	// with an active salary, locks the period, and applies the deduction
	// side-effects to the deposit, advance and loan ledgers. The whole run
	// is one transaction: either every write lands or none does.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) ([]PayrollResponse, error)

	// GetPayroll retrieves a single payroll record.
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)

	// ListPayrolls retrieves payroll records with filters.
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// MarkPaid transitions one pending record to paid. Terminal.
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)

	// GetSummary aggregates a period's payroll for the printable report.
	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
