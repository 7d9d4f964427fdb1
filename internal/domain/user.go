package domain

// Role user role
type Role string

const (
	RoleMember Role = "member"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleCoach || r == RoleAdmin
}

// User caller identity
// Для тренера ID совпадает с ID тренера в каталоге
type User struct {
	ID   string
	Role Role
}

// IsAdmin returns true for administrators
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsCoach returns true if the user is the coach with the given id
func (u User) IsCoach(coachID string) bool {
	return u.Role == RoleCoach && u.ID == coachID
}
