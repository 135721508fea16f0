package apredis

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	v9 "github.com/redis/go-redis/v9"
	"github.com/rmorlok/syncstore/internal/config"
)

type Client interface {
	v9.Cmdable
	Close() error
}

var miniredisServer *miniredis.Miniredis
var miniredisClient *v9.Client
var miniredisMutex sync.Mutex
var miniredisErr error

// NewForRoot creates a new redis client from the specified configuration. The type of the client
// returned will be determined by the configuration. A missing redis block falls back to miniredis.
func NewForRoot(ctx context.Context, root *config.Root) (Client, error) {
	if root.Redis == nil || root.Redis.InnerVal == nil {
		return NewMiniredis(&config.RedisMiniredis{Provider: config.RedisProviderMiniredis})
	}

	switch v := root.Redis.InnerVal.(type) {
	case *config.RedisMiniredis:
		return NewMiniredis(v)
	case *config.RedisReal:
		return NewRedis(ctx, v)
	default:
		return nil, errors.New("redis type not supported")
	}
}

// NewMiniredis creates a new redis connection to a process-wide miniredis instance.
func NewMiniredis(redisConfig *config.RedisMiniredis) (Client, error) {
	miniredisMutex.Lock()
	defer miniredisMutex.Unlock()

	if miniredisServer == nil && miniredisErr == nil {
		server, err := miniredis.Run()
		if err != nil {
			miniredisErr = errors.Wrap(err, "failed to start miniredis server")
			return nil, miniredisErr
		}

		client := v9.NewClient(&v9.Options{
			Addr:     server.Addr(),
			Protocol: 2,
		})

		if _, err := client.Ping(context.Background()).Result(); err != nil {
			server.Close()
			miniredisErr = errors.Wrap(err, "failed to connect to miniredis client")
			return nil, miniredisErr
		}

		miniredisServer = server
		miniredisClient = client
	}

	if miniredisErr != nil {
		return nil, miniredisErr
	}

	return miniredisClient, nil
}

// NewRedis creates a new redis connection to a real redis instance.
func NewRedis(ctx context.Context, redisConfig *config.RedisReal) (Client, error) {
	opts, err := redisConfig.ToRedisOptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert redis config to redis options")
	}

	client := v9.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return client, nil
}
