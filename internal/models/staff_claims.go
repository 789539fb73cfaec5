package models

import "github.com/golang-jwt/jwt/v5"

// Back-office roles carried in access tokens. Tokens are issued by the
// station's login service; this service only verifies them.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleAccountant = "accountant"
	RoleCashier    = "cashier"
)

// StaffClaims represents the claims of a back-office access token
type StaffClaims struct {
	jwt.RegisteredClaims
	StaffID   string `json:"staff_id"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	StationID string `json:"station_id,omitempty"`
	TokenType string `json:"token_type"`
}

// IsValidRole checks if the role is a known back-office role
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleAccountant, RoleCashier:
		return true
	default:
		return false
	}
}
