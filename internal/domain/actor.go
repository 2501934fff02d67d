package domain

type Role string

const (
	RoleOwner    Role = "owner"
	RoleReviewer Role = "reviewer"
	RoleSystem   Role = "system"
)

// Actor identifies who is driving an operation. Authentication is the
// surrounding application's problem; the engine only needs identity and role.
type Actor struct {
	ID   string
	Role Role
}

// SystemActor performs the expiry sweep and nothing else.
var SystemActor = Actor{ID: "system", Role: RoleSystem}
