package models

// User roles accepted by the RBAC gate.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is an account from the read-only users collection. Password holds a
// bcrypt hash, never plaintext.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Actor is the authenticated identity injected into request context.
type Actor struct {
	ID    int    `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
