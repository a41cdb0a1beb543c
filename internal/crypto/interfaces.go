package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_service_mock.go -package=mock

// CredentialService derives and checks stored password credentials.
// It holds no state besides its cost parameters and is safe for concurrent
// use.
//
// Scheme:
//
//	Salt = 16 random bytes                                   (fresh per credential)
//	Hash = PBKDF2-HMAC-SHA256(password, Salt, 120000, 32)    (never reversed)
//
// Both values are stored base64-encoded.
type CredentialService interface {
	// Hash derives a credential for password. A nil salt draws a fresh one
	// from the OS CSPRNG. Returns base64 salt and base64 hash.
	Hash(password string, salt []byte) (saltB64, hashB64 string, err error)

	// Verify recomputes the derived key with the stored salt and compares it
	// to the stored hash in constant time. Malformed base64 yields false.
	Verify(password, saltB64, hashB64 string) bool
}
