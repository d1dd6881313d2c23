package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"passvault/internal/config"
)

type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		DB: config.DB{DatabaseURI: "postgres://test", Migrations: "migrations"},
	}
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	mg := New(testConfig(), func(source, db string) (Migrator, error) {
		return mockM, nil
	})

	assert.NoError(t, mg.Up())
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	mg := New(testConfig(), func(source, db string) (Migrator, error) {
		return mockM, nil
	})

	assert.NoError(t, mg.Up())
}

func TestMigration_Up_Failure(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, nil)

	mg := New(testConfig(), func(source, db string) (Migrator, error) {
		return mockM, nil
	})

	err := mg.Up()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
}

func TestMigration_Up_EngineError(t *testing.T) {
	mg := New(testConfig(), func(source, db string) (Migrator, error) {
		return nil, errors.New("bad source url")
	})

	assert.Error(t, mg.Up())
}

func TestMigration_Up_CloseError(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(errors.New("source close failed"), nil)

	mg := New(testConfig(), func(source, db string) (Migrator, error) {
		return mockM, nil
	})

	err := mg.Up()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source close failed")
}
