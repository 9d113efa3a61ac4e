package domain

// RoleName is the closed set of role names the service knows about
type RoleName string

const (
	RoleUser  RoleName = "user"  // Default role given at registration
	RoleAdmin RoleName = "admin" // Catalog and library administration
)

// KnownRoles lists the roles seeded at migration time
var KnownRoles = []RoleName{RoleUser, RoleAdmin}

// Role Model
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`                     // Primary key
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"` // Unique role name
}

// UserRole is the user_roles join row. The composite key prevents duplicate assignments.
type UserRole struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`                         // Foreign key to User
	RoleID uint `gorm:"primaryKey;autoIncrement:false"`                         // Foreign key to Role
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Removed with the user
	Role   Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"` // Removed with the role
}

// TableName keeps the join table name stable
func (UserRole) TableName() string {
	return "user_roles"
}

// RoleSet is a membership set built from a user's role rows
type RoleSet map[RoleName]struct{}

// NewRoleSet builds a RoleSet from role rows, dropping names outside the closed enum
func NewRoleSet(roles []Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		name := RoleName(r.Name)
		if name == RoleUser || name == RoleAdmin {
			set[name] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the role
func (s RoleSet) Has(name RoleName) bool {
	_, ok := s[name]
	return ok
}

// IsAdmin reports whether the set grants admin access
func (s RoleSet) IsAdmin() bool {
	return s.Has(RoleAdmin)
}

// Names returns the role names ordered as in KnownRoles
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s)) // Never nil so it serializes as []
	for _, r := range KnownRoles {
		if s.Has(r) {
			names = append(names, string(r))
		}
	}
	return names
}
