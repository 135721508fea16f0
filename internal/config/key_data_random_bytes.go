package config

import (
	"context"
	"sync"

	"github.com/rmorlok/syncstore/internal/util"
)

// KeyDataRandomBytes generates a key once per process. Cursors signed with it do not survive a restart.
type KeyDataRandomBytes struct {
	NumBytes  int `json:"num_bytes,omitempty" yaml:"num_bytes,omitempty"`
	bytes     []byte
	bytesOnce sync.Once
}

func (kf *KeyDataRandomBytes) HasData(ctx context.Context) bool {
	return true
}

func (kf *KeyDataRandomBytes) GetData(ctx context.Context) ([]byte, error) {
	kf.bytesOnce.Do(func() {
		numBytes := 32
		if kf.NumBytes > 0 {
			numBytes = kf.NumBytes
		}

		kf.bytes = util.MustGenerateSecureRandomKey(numBytes)
	})

	return kf.bytes, nil
}

func NewKeyDataRandomBytes() *KeyData {
	return &KeyData{InnerVal: &KeyDataRandomBytes{}}
}

var _ KeyDataType = (*KeyDataRandomBytes)(nil)
