package auth

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the verified caller. It is parsed once by the middleware and
// handed to handlers; nothing downstream re-reads the token.
type Identity struct {
	Role       Role
	CustomerID uint64
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}
