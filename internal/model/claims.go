package model

import "time"

// AuthClaims is the decoded bearer token, with the provider's dynamic claim
// map narrowed to the fields the app actually reads.
type AuthClaims struct {
	UID           string
	Email         string
	EmailVerified bool
	Name          string
	Admin         bool
}

// IdentityUser is the provider-side user record consulted by admin
// management.
type IdentityUser struct {
	UID           string     `json:"uid"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"displayName"`
	EmailVerified bool       `json:"emailVerified"`
	Disabled      bool       `json:"disabled"`
	Admin         bool       `json:"admin"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastSignIn    *time.Time `json:"lastSignIn,omitempty"`
}
