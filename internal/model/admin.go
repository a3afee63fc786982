package model

import "time"

const (
	AdminStatusActive  = "active"
	AdminStatusRevoked = "revoked"
)

// Admin mirrors a subset of the identity provider's user record plus local
// bookkeeping; keyed by UID.
type Admin struct {
	UID           string     `firestore:"uid" json:"uid"`
	Email         string     `firestore:"email" json:"email"`
	DisplayName   string     `firestore:"displayName" json:"displayName"`
	EmailVerified bool       `firestore:"emailVerified" json:"emailVerified"`
	Role          string     `firestore:"role" json:"role"`
	Status        string     `firestore:"status" json:"status"`
	LastLogin     *time.Time `firestore:"lastLogin" json:"lastLogin"`
	LoginCount    int        `firestore:"loginCount" json:"loginCount"`
	CreatedAt     time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
