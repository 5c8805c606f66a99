package middleware

import (
	"net/http"

	"github.com/edusuite/school-backend-go/internal/domain/user"
	"github.com/edusuite/school-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePayrollAccess limits payroll generation, payment marking and
// ledger mutation to the school's finance-capable roles.
func RequirePayrollAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrPayrollAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrPayrollAccessRequired)
			return
		}

		if !user.CanManagePayroll(user.Role(roleStr)) {
			response.HandleError(w, user.ErrPayrollAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAttendanceAccess limits absence marking and removal.
func RequireAttendanceAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAttendanceAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAttendanceAccessRequired)
			return
		}

		if !user.CanManageAttendance(user.Role(roleStr)) {
			response.HandleError(w, user.ErrAttendanceAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
