package ports

// TokenCodec issues and validates the signed bearer tokens that carry an
// authenticated subject.
type TokenCodec interface {
	// Issue signs a token asserting subject, valid from now until now+TTL.
	// Fails with domain.ErrMissingSecret when no signing key is configured.
	Issue(subject string) (string, error)
	// DecodeAndValidate returns the subject claim of a well-formed token.
	// Signature integrity is checked before expiry: a tampered token is
	// domain.ErrTokenInvalid even when it is also past its expiry, and only a
	// genuine token past expiry is domain.ErrTokenExpired.
	DecodeAndValidate(token string) (string, error)
}
