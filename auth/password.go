// password.go - Salted one-way password hashing

package auth // Declares the package name

import ( // Import required packages
	"sync" // One-time dummy hash

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// HashPassword returns a bcrypt hash of plain with a per-call random salt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost) // Hash password
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// CheckDummyPassword spends the same bcrypt work as CheckPassword against a
// throwaway hash. Login calls it for unknown emails so both failure paths
// take about as long.
func CheckDummyPassword(plain string) {
	dummyOnce.Do(func() {
		dummyHash, _ = HashPassword("not-a-real-password")
	})
	CheckPassword(dummyHash, plain)
}
