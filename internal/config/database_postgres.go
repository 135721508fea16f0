package config

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hashicorp/go-multierror"
)

type DatabasePostgres struct {
	Provider                  DatabaseProvider  `json:"provider" yaml:"provider"`
	Host                      string            `json:"host" yaml:"host"`
	Port                      int               `json:"port,omitempty" yaml:"port,omitempty"`
	User                      string            `json:"user,omitempty" yaml:"user,omitempty"`
	Password                  *KeyData          `json:"password,omitempty" yaml:"password,omitempty"`
	Database                  string            `json:"database" yaml:"database"`
	SSLMode                   string            `json:"sslmode,omitempty" yaml:"sslmode,omitempty"`
	Params                    map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	AutoMigrate               bool              `json:"auto_migrate,omitempty" yaml:"auto_migrate,omitempty"`
	AutoMigrationLockDuration *HumanDuration    `json:"auto_migration_lock_duration,omitempty" yaml:"auto_migration_lock_duration,omitempty"`
}

func (d *DatabasePostgres) GetProvider() DatabaseProvider {
	return DatabaseProviderPostgres
}

func (d *DatabasePostgres) GetDriver() string {
	return "pgx"
}

func (d *DatabasePostgres) GetAutoMigrate() bool {
	return d.AutoMigrate
}

func (d *DatabasePostgres) GetAutoMigrationLockDuration() time.Duration {
	if d.AutoMigrationLockDuration == nil {
		return defaultAutoMigrationLockDuration
	}

	return d.AutoMigrationLockDuration.Duration
}

func (d *DatabasePostgres) GetUri() string {
	return d.buildUrl().String()
}

// GetDsn gets the Data Source Name
func (d *DatabasePostgres) GetDsn() string {
	return d.buildUrl().String()
}

func (d *DatabasePostgres) GetPlaceholderFormat() sq.PlaceholderFormat {
	return sq.Dollar
}

func (d *DatabasePostgres) buildUrl() *url.URL {
	u := &url.URL{
		Scheme: "postgres",
		Path:   d.Database,
	}

	password := ""
	if d.Password.HasData(context.Background()) {
		if b, err := d.Password.GetData(context.Background()); err == nil {
			password = string(b)
		}
	}

	if d.User != "" {
		if password != "" {
			u.User = url.UserPassword(d.User, password)
		} else {
			u.User = url.User(d.User)
		}
	}

	host := d.Host
	if host == "" {
		host = "localhost"
	}

	port := d.Port
	if port == 0 {
		port = 5432
	}

	u.Host = fmt.Sprintf("%s:%d", host, port)

	params := url.Values{}
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	params.Set("sslmode", sslmode)

	keys := make([]string, 0, len(d.Params))
	for k := range d.Params {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		params.Set(k, d.Params[k])
	}

	u.RawQuery = params.Encode()
	return u
}

func (d *DatabasePostgres) Validate(vc *ValidationContext) error {
	result := &multierror.Error{}

	if d.Host == "" {
		result = multierror.Append(result, vc.NewErrorForField("host", "host must be specified"))
	}

	if d.Database == "" {
		result = multierror.Append(result, vc.NewErrorForField("database", "database must be specified"))
	}

	if d.Port < 0 || d.Port > 65535 {
		result = multierror.Append(result, vc.NewErrorfForField("port", "port must be between 1 and 65535, got %d", d.Port))
	}

	return result.ErrorOrNil()
}
