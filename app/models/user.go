package models

// Role is the enumerated access level of a user.
// Access checks compare against these constants at the boundary (pkg/rbac),
// never against loose strings scattered through handlers.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is the primary user model.
type User struct {
	ID       int    `bson:"_id"      json:"id"`
	Name     string `bson:"name"     json:"name"`
	Email    string `bson:"email"    json:"email"`
	Password string `bson:"password" json:"-"` // never serialised
	Role     Role   `bson:"role"     json:"role"`
}
