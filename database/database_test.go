// database_test.go - Tests for connection and schema migration

package database // Declares the package name

import ( // Import required packages
	"errors"        // Error inspection
	"path/filepath" // Per-test file paths
	"testing"       // Go's testing package

	"go-campus-backend/models" // Persisted records

	"github.com/rs/zerolog"               // Structured logging
	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
	"gorm.io/gorm"                        // GORM ORM
)

func TestConnectMigratesAllModels(t *testing.T) {
	db, err := Connect("sqlite", filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestUniqueEmailIsTranslated(t *testing.T) {
	db, err := Connect("sqlite", filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)

	first := models.User{Name: "Ana", Surname: "Ilic", Email: "ana@example.com", Password: "x",
		Role: models.RoleStudent, School: "FON", Programme: "ISIT"}
	require.NoError(t, db.Create(&first).Error)
	assert.NotEmpty(t, first.ID)

	second := first
	second.ID = ""
	err = db.Create(&second).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mongodb", "mongodb://localhost", zerolog.Nop())
	assert.Error(t, err)
}
