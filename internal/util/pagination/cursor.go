package pagination

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/util"
)

// MakeCursor constructs a cursor string from the JSON encoding of the passed value. The cursor string is encrypted
// and base64 encoded so that it cannot be manipulated in the client
func MakeCursor(ctx context.Context, secretKey config.KeyDataType, c interface{}) (string, error) {
	if secretKey == nil {
		return "", errors.New("no secret key configured to sign cursor")
	}

	keyData, err := secretKey.GetData(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get secret key data to sign cursor")
	}
	return util.SecureEncryptedJsonValue(keyData, c)
}

// ParseCursor parses a cursor from the passed value. The passed valued should be generated from MakeCursor
func ParseCursor[C any](ctx context.Context, secretKey config.KeyDataType, c string) (*C, error) {
	if secretKey == nil {
		return nil, errors.New("no secret key configured to verify cursor")
	}

	keyData, err := secretKey.GetData(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get secret key data to verify cursor")
	}
	return util.SecureDecryptedJsonValue[C](keyData, c)
}
