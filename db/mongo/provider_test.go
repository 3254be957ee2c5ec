package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicate(t *testing.T) {
	duplicate := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: duplicateError}},
	}
	assert.True(t, isDuplicate(duplicate))

	other := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 121}},
	}
	assert.False(t, isDuplicate(other))

	assert.False(t, isDuplicate(mongo.WriteException{}))
}

func TestBulkDuplicateIndex(t *testing.T) {
	bulk := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Code: 121, Index: 0}},
			{WriteError: mongo.WriteError{Code: duplicateError, Index: 2}},
		},
	}

	index, isDup := bulkDuplicateIndex(bulk)
	assert.True(t, isDup)
	assert.Equal(t, 2, index)

	_, isDup = bulkDuplicateIndex(mongo.BulkWriteException{})
	assert.False(t, isDup)
}
