package util

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

const gcmNonceSize = 12

func MustGenerateSecureRandomKey(size int) []byte {
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return key
}

func newGcm(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// SecureEncryptedJsonValue serializes an arbitrary structure to json, encrypts the data using a symmetric key,
// then returns a base64 encoded value. This is used to hand values such as list cursors to clients in a way that
// cannot be manipulated.
//
// The key argument should be the AES key, either 16, 24, or 32 bytes to select AES-128, AES-192, or AES-256.
func SecureEncryptedJsonValue(key []byte, val interface{}) (string, error) {
	jsonData, err := json.Marshal(val)
	if err != nil {
		return "", err
	}

	aesGCM, err := newGcm(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	combined := aesGCM.Seal(nonce, nonce, jsonData, nil)
	return base64.StdEncoding.EncodeToString(combined), nil
}

// SecureDecryptedJsonValue reverses SecureEncryptedJsonValue. Any tampering with the value causes an error.
func SecureDecryptedJsonValue[T any](key []byte, encoded string) (*T, error) {
	combined, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	if len(combined) < gcmNonceSize {
		return nil, errors.New("invalid data length")
	}
	nonce, ciphertext := combined[:gcmNonceSize], combined[gcmNonceSize:]

	aesGCM, err := newGcm(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}

	t := new(T)
	if err := json.Unmarshal(plaintext, t); err != nil {
		return nil, err
	}

	return t, nil
}
