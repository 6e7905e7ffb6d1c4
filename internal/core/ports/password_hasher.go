package ports

// PasswordHasher abstracts one-way password hashing. Hashing the same
// plaintext twice yields different digests (random salt), so equality must
// always go through Verify.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false on mismatch or on a malformed digest; it never errors.
	Verify(plaintext, digest string) bool
}
