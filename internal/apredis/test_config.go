package apredis

import (
	"github.com/rmorlok/syncstore/internal/config"
)

// MustApplyTestConfig points the config at a fresh miniredis instance and returns a client for it. A random
// global key is added if none is configured.
func MustApplyTestConfig(cfg config.C) (config.C, Client) {
	// Avoid shared singletons for test cases, while still going through wireup logic
	miniredisMutex.Lock()
	serverPrevious, clientPrevious, errPrevious := miniredisServer, miniredisClient, miniredisErr
	miniredisServer, miniredisClient, miniredisErr = nil, nil, nil
	miniredisMutex.Unlock()

	defer func() {
		miniredisMutex.Lock()
		miniredisServer, miniredisClient, miniredisErr = serverPrevious, clientPrevious, errPrevious
		miniredisMutex.Unlock()
	}()

	if cfg == nil {
		cfg = config.FromRoot(&config.Root{})
	}

	root := cfg.GetRoot()
	if root == nil {
		panic("No root in config")
	}

	redisCfg := &config.RedisMiniredis{
		Provider: config.RedisProviderMiniredis,
	}
	root.Redis = &config.Redis{InnerVal: redisCfg}
	if root.GlobalAESKey == nil {
		root.GlobalAESKey = config.NewKeyDataRandomBytes()
	}

	r, err := NewMiniredis(redisCfg)
	if err != nil {
		panic(err)
	}

	return cfg, r
}
