package ports

// PasswordHasher abstracts the salted one-way password transform.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. It is a predicate that
	// fails closed: a malformed hash yields false, never an error.
	Verify(password, hash string) bool
}
