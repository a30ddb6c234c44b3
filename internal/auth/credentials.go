package auth

import "golang.org/x/crypto/bcrypt"

// credential pairs a demo login with its bcrypt password hash.
type credential struct {
	username     string
	passwordHash []byte
	role         string
	fullName     string
}

// demoDirectory builds the fixed demo credential list. Passwords are
// hashed at construction; they are published demo data, not secrets.
func demoDirectory() []credential {
	seed := []struct {
		username, password, role, fullName string
	}{
		{"superadmin", "admin123", RoleSuperAdmin, "Wesley Adrian"},
		{"cashier1", "cash123", RoleCashier, "Sarah Johnson"},
		{"cashier2", "cash123", RoleCashier, "Mike Chen"},
		{"manager", "mgr123", RoleManager, "Emma Davis"},
	}
	dir := make([]credential, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		dir = append(dir, credential{
			username:     s.username,
			passwordHash: hash,
			role:         s.role,
			fullName:     s.fullName,
		})
	}
	return dir
}
