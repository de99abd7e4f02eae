package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad(t *testing.T) {
	t.Run("requires a token secret", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("PORT", "")
		t.Setenv("DB_NAME", "")
		t.Setenv("HASH_SALT_ROUNDS", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "vitatrack", cfg.DBName)
		assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	})

	t.Run("mongo uri assembled from parts when not set directly", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("MONGO_URI", "")
		t.Setenv("DB_USER", "vita")
		t.Setenv("DB_PASSWORD", "pw")
		t.Setenv("DB_HOST", "cluster0.example.mongodb.net")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t,
			"mongodb+srv://vita:pw@cluster0.example.mongodb.net/?retryWrites=true&w=majority",
			cfg.MongoURI)
	})

	t.Run("bcrypt cost override", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("HASH_SALT_ROUNDS", "12")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("garbage bcrypt cost rejected", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("HASH_SALT_ROUNDS", "ten")

		_, err := Load()
		assert.Error(t, err)
	})
}
