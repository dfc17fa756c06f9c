package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	// First ping fails, second succeeds
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)

	// Override retry settings for faster test
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: "/nonexistent/path/to/migrations",
		seedsPath:      seedsPath,
	}

	err = runner.RunMigrations()

	// Should not error when directory doesn't exist
	assert.NoError(t, err)
}

func TestLoadSeeds_DisabledByEnvironment(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "false")
	defer os.Setenv("SEED_DATABASE", originalValue)

	runner := NewMigrationRunner(db)
	err = runner.LoadSeeds()

	assert.NoError(t, err)
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      "/nonexistent/seeds/path",
	}

	err = runner.LoadSeeds()

	assert.NoError(t, err)
}

func TestLoadSeeds_SuccessfulExecution(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir, err := os.MkdirTemp("", "seeds-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	seedContent := `
INSERT INTO customers (id, full_name, email, phone_number, address)
VALUES ('a0000000-0000-0000-0000-000000000001', 'Ada Lovelace', 'ada@analytical.dev', '+1 555 010 1815', '12 Byron Row, London')
ON CONFLICT (email) DO NOTHING;
`
	seedFile := filepath.Join(tempDir, "001_sample_customers.sql")
	err = os.WriteFile(seedFile, []byte(seedContent), 0644)
	require.NoError(t, err)

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = runner.LoadSeeds()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir, err := os.MkdirTemp("", "seeds-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	seed1 := filepath.Join(tempDir, "001_bad_data.sql")
	err = os.WriteFile(seed1, []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644)
	require.NoError(t, err)

	seed2 := filepath.Join(tempDir, "002_good_data.sql")
	err = os.WriteFile(seed2, []byte("INSERT INTO customers VALUES ('test');"), 0644)
	require.NoError(t, err)

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = runner.LoadSeeds()

	// A single bad seed file must not block the rest
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir, err := os.MkdirTemp("", "seeds-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// A directory with a .sql name forces a read error
	seedDir := filepath.Join(tempDir, "001_invalid.sql")
	err = os.Mkdir(seedDir, 0755)
	require.NoError(t, err)

	originalValue := os.Getenv("SEED_DATABASE")
	os.Setenv("SEED_DATABASE", "true")
	defer os.Setenv("SEED_DATABASE", originalValue)

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = runner.LoadSeeds()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("AUTO_MIGRATE")
	os.Setenv("AUTO_MIGRATE", "false")
	defer os.Setenv("AUTO_MIGRATE", originalValue)

	err = RunMigrationsIfEnabled(db)

	assert.NoError(t, err)
}

func TestRunMigrationsIfEnabled_Enabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	originalValue := os.Getenv("AUTO_MIGRATE")
	os.Setenv("AUTO_MIGRATE", "true")
	defer os.Setenv("AUTO_MIGRATE", originalValue)

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(db)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: "/nonexistent/migrations",
		seedsPath:      seedsPath,
	}

	_, _, err = runner.GetMigrationStatus()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
