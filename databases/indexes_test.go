package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/databases/mocks"
)

func TestIndexes_OwnerExclusiveIsPartial(t *testing.T) {
	var found bool
	for _, idx := range databases.Indexes()["bootcamps"] {
		if idx.Options == nil || idx.Options.Name == nil || *idx.Options.Name != "user_owner_exclusive" {
			continue
		}
		found = true
		assert.True(t, *idx.Options.Unique)
		assert.NotNil(t, idx.Options.PartialFilterExpression)
	}
	assert.True(t, found)
}

func TestEnsureIndexes(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("CreateIndexes", context.Background(), mock.Anything).Return([]string{"idx"}, nil)
	dbHelper.On("Collection", mock.AnythingOfType("string")).Return(collectionHelper)

	assert.NoError(t, databases.EnsureIndexes(context.Background(), dbHelper))
	collectionHelper.AssertNumberOfCalls(t, "CreateIndexes", len(databases.Indexes()))
}

func TestEnsureIndexes_Error(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("CreateIndexes", context.Background(), mock.Anything).Return(nil, errors.New("mocked-error"))
	dbHelper.On("Collection", mock.AnythingOfType("string")).Return(collectionHelper)

	assert.ErrorContains(t, databases.EnsureIndexes(context.Background(), dbHelper), "mocked-error")
}
