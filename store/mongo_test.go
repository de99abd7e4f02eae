package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOrFilter(t *testing.T) {
	t.Run("no filters matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, orFilter(nil))
	})

	t.Run("single filter passes through", func(t *testing.T) {
		got := orFilter([]Query{{"email": "a@b.com"}})
		assert.Equal(t, bson.M{"email": "a@b.com"}, got)
	})

	t.Run("multiple filters combine with $or", func(t *testing.T) {
		got := orFilter([]Query{
			{"access": "PUBLIC_ACCESS"},
			{"access": "PRIVATE_ACCESS", "userId": "u1"},
		})
		assert.Equal(t, bson.M{"$or": []bson.M{
			{"access": "PUBLIC_ACCESS"},
			{"access": "PRIVATE_ACCESS", "userId": "u1"},
		}}, got)
	})
}
