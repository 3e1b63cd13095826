package models

import "time"

// Marketplace roles assignable to a user account.
const (
	// RoleProvider marks accounts that publish datasets to the marketplace.
	RoleProvider = "PROVIDER"

	// RoleConsumer marks accounts that browse and purchase datasets.
	// New accounts default to this role.
	RoleConsumer = "CONSUMER"

	// RoleAdmin marks administrative accounts.
	RoleAdmin = "ADMIN"
)

// AnonymousUserID is the identifier of the reserved "anonymous" account
// seeded by the first migration. Secure uploads performed without
// authentication are attributed to this account instead of creating a
// hidden per-request system user.
const AnonymousUserID int64 = 1

// User represents a marketplace account used for authentication and dataset
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// Password carries the plain-text password on inbound register/login
	// requests only. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// WalletAddress is the user's Ethereum wallet in 0x-prefixed hex form
	// (42 characters). Optional; used to link on-chain activity to the
	// account. Informational, not the security boundary for key release.
	WalletAddress string `json:"wallet_address,omitempty"`

	// Role is the marketplace role: PROVIDER, CONSUMER or ADMIN.
	Role string `json:"role"`

	// ReputationScore is the account's marketplace reputation, 0.00–5.00.
	ReputationScore float64 `json:"reputation_score"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
