package user

// Role is carried in the JWT and drives route access.
type Role string

const (
	RoleSystemAdmin Role = "system_admin"
	RoleSchoolAdmin Role = "school_admin"
	RoleDirector    Role = "director"
	RoleAccountant  Role = "accountant"
	RoleTeacher     Role = "teacher"
	RoleStudent     Role = "student"
	RoleParent      Role = "parent"
)

// CanManagePayroll reports whether the role may generate payroll,
// mark records paid, and mutate the deduction ledgers.
func CanManagePayroll(r Role) bool {
	switch r {
	case RoleSchoolAdmin, RoleDirector, RoleAccountant:
		return true
	}
	return false
}

// CanManageAttendance reports whether the role may mark or remove
// teacher absence records.
func CanManageAttendance(r Role) bool {
	return r == RoleSchoolAdmin || r == RoleDirector
}
