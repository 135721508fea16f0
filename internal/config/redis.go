package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisProvider string

const (
	RedisProviderMiniredis RedisProvider = "miniredis"
	RedisProviderRedis     RedisProvider = "redis"
)

// RedisImpl is the interface implemented by concrete Redis configurations.
type RedisImpl interface {
	GetProvider() RedisProvider
	Validate(vc *ValidationContext) error
}

// Redis is the holder for a RedisImpl instance.
type Redis struct {
	InnerVal RedisImpl `json:"-" yaml:"-"`
}

func (r *Redis) GetProvider() RedisProvider {
	if r == nil || r.InnerVal == nil {
		return ""
	}
	return r.InnerVal.GetProvider()
}

func (r *Redis) Validate(vc *ValidationContext) error {
	if r == nil || r.InnerVal == nil {
		return nil
	}
	return r.InnerVal.Validate(vc)
}

var _ RedisImpl = (*Redis)(nil)

// RedisMiniredis runs an in-process redis. Only suitable for a single process.
type RedisMiniredis struct {
	Provider RedisProvider `json:"provider" yaml:"provider"`
}

func (r *RedisMiniredis) GetProvider() RedisProvider {
	return RedisProviderMiniredis
}

func (r *RedisMiniredis) Validate(vc *ValidationContext) error {
	return nil
}

type RedisReal struct {
	Provider RedisProvider `json:"provider" yaml:"provider"`
	Network  string        `json:"network,omitempty" yaml:"network,omitempty"`
	Address  string        `json:"address" yaml:"address"`
	Protocol int           `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Username string        `json:"username,omitempty" yaml:"username,omitempty"`
	Password *KeyData      `json:"password,omitempty" yaml:"password,omitempty"`
	DB       int           `json:"db,omitempty" yaml:"db,omitempty"`
}

func (r *RedisReal) GetProvider() RedisProvider {
	return RedisProviderRedis
}

func (r *RedisReal) Validate(vc *ValidationContext) error {
	if r.Address == "" {
		return vc.NewErrorForField("address", "address must be specified")
	}
	return nil
}

// ToRedisOptions converts the configuration into go-redis client options.
func (r *RedisReal) ToRedisOptions(ctx context.Context) (*redis.Options, error) {
	opts := &redis.Options{
		Network:  r.Network,
		Addr:     r.Address,
		Protocol: r.Protocol,
		Username: r.Username,
		DB:       r.DB,
	}

	if r.Password.HasData(ctx) {
		password, err := r.Password.GetData(ctx)
		if err != nil {
			return nil, err
		}
		opts.Password = string(password)
	}

	return opts, nil
}
