package contracts

type TokenManager interface {
	Sign(email string) (string, error)
	// Verify returns the email claim of a valid token.
	Verify(tokenString string) (string, error)
}
