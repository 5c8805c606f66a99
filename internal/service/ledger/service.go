package ledger

import (
	"context"
	"fmt"

	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type LedgerServiceImpl struct {
	db         *database.DB
	ledgerRepo ledger.LedgerRepository
}

func NewLedgerService(db *database.DB, ledgerRepo ledger.LedgerRepository) ledger.LedgerService {
	return &LedgerServiceImpl{
		db:         db,
		ledgerRepo: ledgerRepo,
	}
}

// Helper to get school_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (schoolID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	schoolID, ok := claims["school_id"].(string)
	if !ok || schoolID == "" {
		return "", "", user.ErrSchoolIDRequired
	}

	userID, _ = claims["user_id"].(string)

	return schoolID, userID, nil
}

// ========== DEPOSITS ==========

// CreateDeposit implements ledger.LedgerService.
func (s *LedgerServiceImpl) CreateDeposit(ctx context.Context, req ledger.CreateDepositRequest) (ledger.DepositResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.DepositResponse{}, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return ledger.DepositResponse{}, err
	}

	created, err := s.ledgerRepo.CreateDeposit(ctx, ledger.TeacherSecurityDeposit{
		SchoolID:          schoolID,
		TeacherID:         req.TeacherID,
		TotalDeposit:      req.TotalDeposit,
		InstallmentAmount: req.InstallmentAmount,
	})
	if err != nil {
		return ledger.DepositResponse{}, err
	}

	return mapDepositToResponse(created), nil
}

// ListDeposits implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListDeposits(ctx context.Context) ([]ledger.DepositResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	deposits, err := s.ledgerRepo.ListDeposits(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		responses = append(responses, mapDepositToResponse(d))
	}

	return responses, nil
}

// ========== ADVANCES ==========

// CreateAdvance implements ledger.LedgerService.
func (s *LedgerServiceImpl) CreateAdvance(ctx context.Context, req ledger.CreateAdvanceRequest) (ledger.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.AdvanceResponse{}, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return ledger.AdvanceResponse{}, err
	}

	created, err := s.ledgerRepo.CreateAdvance(ctx, ledger.TeacherAdvance{
		SchoolID:       schoolID,
		TeacherID:      req.TeacherID,
		Amount:         req.Amount,
		DeductionMonth: req.DeductionMonth,
		DeductionYear:  req.DeductionYear,
	})
	if err != nil {
		return ledger.AdvanceResponse{}, err
	}

	return mapAdvanceToResponse(created), nil
}

// ApproveAdvance implements ledger.LedgerService.
func (s *LedgerServiceImpl) ApproveAdvance(ctx context.Context, id string) (ledger.AdvanceResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return ledger.AdvanceResponse{}, err
	}

	approved, err := s.ledgerRepo.ApproveAdvance(ctx, id, schoolID)
	if err != nil {
		return ledger.AdvanceResponse{}, err
	}

	return mapAdvanceToResponse(approved), nil
}

// ListAdvances implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListAdvances(ctx context.Context) ([]ledger.AdvanceResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	advances, err := s.ledgerRepo.ListAdvances(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, mapAdvanceToResponse(a))
	}

	return responses, nil
}

// ========== LOANS ==========

// CreateLoan implements ledger.LedgerService.
func (s *LedgerServiceImpl) CreateLoan(ctx context.Context, req ledger.CreateLoanRequest) (ledger.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.LoanResponse{}, err
	}

	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return ledger.LoanResponse{}, err
	}

	created, err := s.ledgerRepo.CreateLoan(ctx, ledger.TeacherLoan{
		SchoolID:          schoolID,
		TeacherID:         req.TeacherID,
		TotalLoanAmount:   req.TotalLoanAmount,
		InstallmentAmount: req.InstallmentAmount,
		StartMonth:        req.StartMonth,
		StartYear:         req.StartYear,
	})
	if err != nil {
		return ledger.LoanResponse{}, err
	}

	return mapLoanToResponse(created), nil
}

// ListLoans implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListLoans(ctx context.Context) ([]ledger.LoanResponse, error) {
	schoolID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	loans, err := s.ledgerRepo.ListLoans(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, mapLoanToResponse(l))
	}

	return responses, nil
}

func mapDepositToResponse(d ledger.TeacherSecurityDeposit) ledger.DepositResponse {
	return ledger.DepositResponse{
		ID:                d.ID,
		SchoolID:          d.SchoolID,
		TeacherID:         d.TeacherID,
		TotalDeposit:      d.TotalDeposit,
		CollectedAmount:   d.CollectedAmount,
		RemainingBalance:  d.RemainingBalance,
		InstallmentAmount: d.InstallmentAmount,
		Status:            string(d.Status),
	}
}

func mapAdvanceToResponse(a ledger.TeacherAdvance) ledger.AdvanceResponse {
	return ledger.AdvanceResponse{
		ID:               a.ID,
		SchoolID:         a.SchoolID,
		TeacherID:        a.TeacherID,
		Amount:           a.Amount,
		DeductionMonth:   a.DeductionMonth,
		DeductionYear:    a.DeductionYear,
		DeductedAmount:   a.DeductedAmount,
		RemainingBalance: a.RemainingBalance,
		Status:           string(a.Status),
	}
}

func mapLoanToResponse(l ledger.TeacherLoan) ledger.LoanResponse {
	return ledger.LoanResponse{
		ID:                l.ID,
		SchoolID:          l.SchoolID,
		TeacherID:         l.TeacherID,
		TotalLoanAmount:   l.TotalLoanAmount,
		RemainingBalance:  l.RemainingBalance,
		InstallmentAmount: l.InstallmentAmount,
		StartMonth:        l.StartMonth,
		StartYear:         l.StartYear,
		Status:            string(l.Status),
	}
}
