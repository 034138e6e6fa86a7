package models

import "maxcleaners/config"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the claim resolved from a bearer token. It is passed
// explicitly to anything that needs the caller, never read from ambient
// state.
type Identity struct {
	PhoneNumber string
}

// HasRole currently recognizes a single admin identity: the configured
// admin phone number. Every caller goes through this so a real role table
// can replace it later.
func (i Identity) HasRole(role Role) bool {
	switch role {
	case RoleAdmin:
		return config.AppConfig != nil && i.PhoneNumber == config.AppConfig.AdminPhone
	case RoleCustomer:
		return i.PhoneNumber != ""
	}
	return false
}
