package dto

// PasswordHasher turns a plaintext password into a storable digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
