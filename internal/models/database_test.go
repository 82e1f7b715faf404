package models_test

import (
	"github.com/google/uuid"
	"github.com/sergiu811/perfect-wedding-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectInvalidPath verifies that an unusable database path
// returns an error instead of panicking.
func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/not/a/directory/that/exists/db")
	assert.Error(suite.T(), err)

	// Reconnect so that TearDownTest can close a working connection
	suite.SetupTest()
}

// TestNotFoundMessage verifies that the query callback produces a user
// friendly message with the resource type.
func (suite *TestSuiteStandard) TestNotFoundMessage() {
	tests := []struct {
		model any
		want  string
	}{
		{&models.Wedding{}, "there is no wedding matching your query"},
		{&models.Allocation{}, "there is no allocation matching your query"},
		{&models.Expense{}, "there is no expense matching your query"},
		{&models.Booking{}, "there is no booking matching your query"},
		{&models.CategoryRule{}, "there is no category rule matching your query"},
	}

	for _, tt := range tests {
		err := models.DB.First(tt.model, uuid.New()).Error
		require.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
		assert.Equal(suite.T(), tt.want, err.Error())
	}
}

// TestClosedDBGeneralError verifies that driver errors surface as the
// general error so that no internals leak to clients.
func (suite *TestSuiteStandard) TestClosedDBGeneralError() {
	suite.CloseDB()

	err := models.DB.Create(&models.Wedding{Name: "Testing"}).Error
	require.ErrorIs(suite.T(), err, models.ErrGeneral)

	// Reconnect so that TearDownTest can close a working connection
	suite.SetupTest()
}
