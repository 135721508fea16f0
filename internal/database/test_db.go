package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/util"
)

// TestDatabaseProviderEnvVar selects the database used by MustApplyBlankTestDbConfig. Defaults to sqlite.
const TestDatabaseProviderEnvVar = "SYNCSTORE_TEST_DATABASE_PROVIDER"

var postgresTestLimiter = make(chan struct{}, util.GetEnvIntDefault("POSTGRES_TEST_MAX_PARALLEL", 4))

// MustApplyBlankTestDbConfig applies a test database configuration to the specified config root. The database
// is guaranteed to be blank and migrated. Sqlite databases live in a temp file so that they are eventually
// cleaned up after the process exits. The GlobalAESKey is populated if it is not already.
//
// To debug a test by inspecting its sqlite database, set SQLITE_TEST_DATABASE_PATH. The file at that path is
// deleted and recreated unless SQLITE_TEST_DATABASE_PATH_CLEAR is false.
//
// To run tests against Postgres, set SYNCSTORE_TEST_DATABASE_PROVIDER=postgres and configure the connection with
// POSTGRES_TEST_HOST, POSTGRES_TEST_PORT, POSTGRES_TEST_USER, POSTGRES_TEST_PASSWORD, POSTGRES_TEST_DATABASE and
// POSTGRES_TEST_OPTIONS.
func MustApplyBlankTestDbConfig(t testing.TB, cfg config.C) (config.C, DB) {
	c, db, _ := MustApplyBlankTestDbConfigRaw(t, cfg)
	return c, db
}

// MustApplyBlankTestDbConfigRaw is MustApplyBlankTestDbConfig that also returns the underlying handle for raw
// assertions.
func MustApplyBlankTestDbConfigRaw(t testing.TB, cfg config.C) (config.C, DB, *sql.DB) {
	t.Helper()

	// Optionally load the dotenv file as to force tests into postgres using environment variables while debugging
	_ = godotenv.Load()

	if cfg == nil {
		cfg = config.FromRoot(&config.Root{})
	}

	root := cfg.GetRoot()
	if root == nil {
		panic("No root in config")
	}

	if root.GlobalAESKey == nil {
		root.GlobalAESKey = config.NewKeyDataRandomBytes()
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv(TestDatabaseProviderEnvVar)))
	switch config.DatabaseProvider(provider) {
	case config.DatabaseProviderPostgres:
		return mustApplyBlankPostgresTestDbConfig(t, cfg)
	default:
		return mustApplyBlankSqliteTestDbConfig(t, cfg)
	}
}

func mustApplyBlankSqliteTestDbConfig(t testing.TB, cfg config.C) (config.C, DB, *sql.DB) {
	t.Helper()

	root := cfg.GetRoot()
	testName := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	if testName != "" {
		testName = testName + "-"
	}

	tempFilePath := os.Getenv("SQLITE_TEST_DATABASE_PATH")
	if tempFilePath != "" {
		if os.Getenv("SQLITE_TEST_DATABASE_PATH_CLEAR") != "false" {
			_ = os.Remove(tempFilePath)
		}
	} else {
		tempFilePath = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("syncstore-tests/db/%s-%d-%s%s.sqlite3", time.Now().Format("2006-01-02T15-04-05"), os.Getpid(), testName, uuid.New().String()),
		)
	}

	if err := os.MkdirAll(filepath.Dir(tempFilePath), os.ModePerm); err != nil {
		t.Fatalf("failed to create sqlite test directory: %v", err)
	}

	root.Database = &config.Database{InnerVal: &config.DatabaseSqlite{
		Provider: config.DatabaseProviderSqlite,
		Path:     tempFilePath,
	}}

	db, err := NewConnectionForRoot(root, root.GetRootLogger())
	if err != nil {
		t.Fatalf("failed to connect sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate sqlite test database: %v", err)
	}

	return cfg, db, db.(*service).db
}

func mustApplyBlankPostgresTestDbConfig(t testing.TB, cfg config.C) (config.C, DB, *sql.DB) {
	t.Helper()

	root := cfg.GetRoot()

	postgresTestLimiter <- struct{}{}
	defer func() { <-postgresTestLimiter }()

	adminConfig := pgtestdb.Config{
		DriverName: "pgx",
		User:       util.GetEnvDefault("POSTGRES_TEST_USER", "postgres"),
		Password:   util.GetEnvDefault("POSTGRES_TEST_PASSWORD", "postgres"),
		Host:       util.GetEnvDefault("POSTGRES_TEST_HOST", "localhost"),
		Port:       util.GetEnvDefault("POSTGRES_TEST_PORT", "5432"),
		Database:   util.GetEnvDefault("POSTGRES_TEST_DATABASE", "postgres"),
		Options:    util.GetEnvDefault("POSTGRES_TEST_OPTIONS", "sslmode=disable"),
	}

	migrator := golangmigrator.New(
		"migrations/postgres",
		golangmigrator.WithFS(migrationsFs),
	)

	testDbConfig := pgtestdb.Custom(t, adminConfig, migrator)
	rawDb, err := testDbConfig.Connect()
	if err != nil {
		t.Fatalf("failed to connect postgres test database: %v", err)
	}
	maxConns := util.GetEnvIntDefault("POSTGRES_TEST_MAX_CONNS", 2)
	rawDb.SetMaxOpenConns(maxConns)
	rawDb.SetMaxIdleConns(maxConns)
	rawDb.SetConnMaxLifetime(2 * time.Minute)
	t.Cleanup(func() {
		_ = rawDb.Close()
	})

	port, err := strconv.Atoi(testDbConfig.Port)
	if err != nil {
		port = 5432
	}

	sslMode := ""
	params := map[string]string{}
	if query, err := url.ParseQuery(testDbConfig.Options); err == nil {
		for key, values := range query {
			if len(values) == 0 {
				continue
			}
			if key == "sslmode" {
				sslMode = values[0]
			} else {
				params[key] = values[0]
			}
		}
	}

	pgCfg := &config.DatabasePostgres{
		Provider: config.DatabaseProviderPostgres,
		Host:     testDbConfig.Host,
		Port:     port,
		User:     testDbConfig.User,
		Password: &config.KeyData{InnerVal: &config.KeyDataValue{Value: testDbConfig.Password}},
		Database: testDbConfig.Database,
		SSLMode:  sslMode,
		Params:   params,
	}
	root.Database = &config.Database{InnerVal: pgCfg}

	return cfg, newService(pgCfg, rawDb, root.GlobalAESKey, root.GetRootLogger()), rawDb
}
