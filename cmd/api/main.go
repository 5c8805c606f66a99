package main

import (
	"fmt"
	"net/http"

	"github.com/edusuite/school-backend-go/internal/config"
	appHTTP "github.com/edusuite/school-backend-go/internal/handler/http"
	"github.com/edusuite/school-backend-go/internal/pkg/database"
	"github.com/edusuite/school-backend-go/internal/pkg/jwt"
	"github.com/edusuite/school-backend-go/internal/repository/postgresql"
	attendanceService "github.com/edusuite/school-backend-go/internal/service/attendance"
	ledgerService "github.com/edusuite/school-backend-go/internal/service/ledger"
	payrollService "github.com/edusuite/school-backend-go/internal/service/payroll"
	salaryService "github.com/edusuite/school-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	salaryRepo := postgresql.NewSalaryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	salarySvc := salaryService.NewSalaryService(db, salaryRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, payrollRepo)
	ledgerSvc := ledgerService.NewLedgerService(db, ledgerRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, salaryRepo, attendanceRepo, ledgerRepo)

	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		salaryHandler,
		attendanceHandler,
		ledgerHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
