package models

// Role is a platform account role
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleManager        Role = "MANAGER"
	RoleSupporter      Role = "SUPPORTER"
	RoleContentCreator Role = "CONTENT_CREATOR"
	RoleExpert         Role = "EXPERT"
	RoleSalesman       Role = "SALESMAN"
	RoleAdult          Role = "ADULT"
	RoleChild          Role = "CHILD"
)

// Known reports whether r is a declared role
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupporter, RoleContentCreator,
		RoleExpert, RoleSalesman, RoleAdult, RoleChild:
		return true
	}
	return false
}

// LoginRequest is the body sent to the platform login endpoint
type LoginRequest struct {
	LoginKey string `json:"loginKey"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId,omitempty"`
}

// Account is the signed-in account
type Account struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

// LoginResult is the data of a successful login
type LoginResult struct {
	AccessToken  string  `json:"accessToken,omitempty"`
	RefreshToken string  `json:"refreshToken,omitempty"`
	Account      Account `json:"account"`
}
