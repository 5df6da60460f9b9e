package domain

// Credential is the closed set of ways a caller can prove who they are.
// Only the types in this file implement it.
type Credential interface {
	isCredential()
}

// LocalCredential is an email and password pair.
type LocalCredential struct {
	Email    string
	Password string
}

// OAuthCredential is a profile returned by a completed provider handshake.
type OAuthCredential struct {
	Profile OAuthProfile
}

// BearerCredential is a previously issued access token.
type BearerCredential struct {
	Token string
}

func (LocalCredential) isCredential()  {}
func (OAuthCredential) isCredential()  {}
func (BearerCredential) isCredential() {}

// OAuthStart is everything needed to send a user to a provider and verify the callback.
type OAuthStart struct {
	URL      string
	State    string
	Verifier string
}
