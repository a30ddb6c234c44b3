package auth

// Actor is the authenticated identity operating the register.
type Actor struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}
