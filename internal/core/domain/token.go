package domain

// TokenType tags refresh and reset tokens. Access tokens carry no tag.
type TokenType string

const (
	TokenTypeAccess  TokenType = ""
	TokenTypeRefresh TokenType = "refresh"
	TokenTypeReset   TokenType = "reset"
)

// TokenClaims are the application claims recovered from a verified token.
type TokenClaims struct {
	UserID string
	Email  string
	Name   string
	Type   TokenType
	// PasswordState is the user's PasswordFingerprint when a reset token was issued.
	PasswordState string
}

// TokenPair is what every successful authentication yields.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult bundles an authenticated user with their fresh tokens.
type AuthResult struct {
	User *User
	TokenPair
}
