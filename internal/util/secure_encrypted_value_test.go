package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureDecryptedJsonValue(t *testing.T) {
	t.Parallel()

	type Position struct {
		Name string
		Id   string
	}

	t.Run("round trips", func(t *testing.T) {
		key := MustGenerateSecureRandomKey(16)
		val := Position{Name: "alpha", Id: "123"}
		encrypted, err := SecureEncryptedJsonValue(key, val)
		assert.NoError(t, err)
		assert.NotContains(t, encrypted, "alpha")

		newVal, err := SecureDecryptedJsonValue[Position](key, encrypted)
		assert.NoError(t, err)
		assert.Equal(t, val, *newVal)
	})

	t.Run("fails with different keys", func(t *testing.T) {
		encrypted, err := SecureEncryptedJsonValue(MustGenerateSecureRandomKey(16), Position{Name: "alpha"})
		assert.NoError(t, err)

		_, err = SecureDecryptedJsonValue[Position](MustGenerateSecureRandomKey(16), encrypted)
		assert.Error(t, err)
	})

	t.Run("fails if data changes", func(t *testing.T) {
		key := MustGenerateSecureRandomKey(32)
		encrypted, err := SecureEncryptedJsonValue(key, Position{Name: "alpha"})
		assert.NoError(t, err)

		b := []byte(encrypted)
		if b[20] == 'x' {
			b[20] = 'y'
		} else {
			b[20] = 'x'
		}

		_, err = SecureDecryptedJsonValue[Position](key, string(b))
		assert.Error(t, err)
	})

	t.Run("fails on short input", func(t *testing.T) {
		_, err := SecureDecryptedJsonValue[Position](MustGenerateSecureRandomKey(16), "YWJj")
		assert.Error(t, err)
	})
}
