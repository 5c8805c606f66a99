package http

import (
	"encoding/json"
	"net/http"

	"github.com/edusuite/school-backend-go/internal/domain/ledger"
	"github.com/edusuite/school-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler interface {
	// Deposits
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	ListDeposits(w http.ResponseWriter, r *http.Request)

	// Advances
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ApproveAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)

	// Loans
	CreateLoan(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{ledgerService: ledgerService}
}

// ========== DEPOSITS ==========

func (h *ledgerHandlerImpl) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	var req ledger.CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.CreateDeposit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Security deposit created", result)
}

func (h *ledgerHandlerImpl) ListDeposits(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerService.ListDeposits(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== ADVANCES ==========

func (h *ledgerHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var req ledger.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.CreateAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance created", result)
}

func (h *ledgerHandlerImpl) ApproveAdvance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Advance ID is required", nil)
		return
	}

	result, err := h.ledgerService.ApproveAdvance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance approved", result)
}

func (h *ledgerHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerService.ListAdvances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== LOANS ==========

func (h *ledgerHandlerImpl) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req ledger.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.CreateLoan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created", result)
}

func (h *ledgerHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerService.ListLoans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
