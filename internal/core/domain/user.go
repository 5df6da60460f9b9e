package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Role gates access to administrative routes.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// AuthProvider names an external identity provider.
type AuthProvider string

const (
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
	ProviderTwitter  AuthProvider = "twitter"
)

func (p AuthProvider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderFacebook, ProviderTwitter:
		return true
	}
	return false
}

// TwitterPlaceholderDomain is used for Twitter accounts that do not share an email.
const TwitterPlaceholderDomain = "twitter.placeholder"

// User represents an account holder. A user without a password hash is
// OAuth-only and must carry at least one provider ID.
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   *string    `json:"-"`
	Name           string     `json:"name"`
	GoogleID       *string    `json:"googleId,omitempty"`
	FacebookID     *string    `json:"facebookId,omitempty"`
	TwitterID      *string    `json:"twitterId,omitempty"`
	ProfilePicture *string    `json:"profilePicture,omitempty"`
	Role           Role       `json:"role"`
	DeletedAt      *time.Time `json:"-"`
	Timestamps
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// ProviderID returns the linked ID for p, or "" when none is linked.
func (u *User) ProviderID(p AuthProvider) string {
	var v *string
	switch p {
	case ProviderGoogle:
		v = u.GoogleID
	case ProviderFacebook:
		v = u.FacebookID
	case ProviderTwitter:
		v = u.TwitterID
	}
	if v == nil {
		return ""
	}
	return *v
}

// SetProviderID links id for p. Empty ids are ignored.
func (u *User) SetProviderID(p AuthProvider, id string) {
	if id == "" {
		return
	}
	switch p {
	case ProviderGoogle:
		u.GoogleID = &id
	case ProviderFacebook:
		u.FacebookID = &id
	case ProviderTwitter:
		u.TwitterID = &id
	}
}

// HasCredential reports whether the user can authenticate somehow.
func (u *User) HasCredential() bool {
	return u.HasPassword() || u.GoogleID != nil || u.FacebookID != nil || u.TwitterID != nil
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// PasswordFingerprint identifies the current password digest without
// revealing it. It changes whenever a new digest is stored and is "" for
// users without a password.
func (u *User) PasswordFingerprint() string {
	if !u.HasPassword() {
		return ""
	}
	sum := sha256.Sum256([]byte(*u.PasswordHash))
	return hex.EncodeToString(sum[:8])
}

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func TwitterPlaceholderEmail(username string) string {
	return NormalizeEmail(username) + "@" + TwitterPlaceholderDomain
}

func IsPlaceholderEmail(email string) bool {
	return strings.HasSuffix(NormalizeEmail(email), "@"+TwitterPlaceholderDomain)
}

// OAuthProfile is the provider-neutral result of a completed handshake.
type OAuthProfile struct {
	Provider   AuthProvider
	ProviderID string
	Email      string
	Name       string
	Picture    string
	Username   string
}

// UserUpdate carries a partial profile change. Nil fields are left untouched.
type UserUpdate struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}
