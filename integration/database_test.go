//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestAltsourceWithMySQL tests the altsource CLI with a MySQL cache backend.
func TestAltsourceWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "altsource",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/altsource?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("ALTSOURCE_CACHE_BACKEND", "mysql")
	_ = os.Setenv("ALTSOURCE_CACHE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("ALTSOURCE_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("ALTSOURCE_CACHE_DB_CONNECT") }()

	runCacheWorkflow(t)
}

// TestAltsourceWithPostgres tests the altsource CLI with a PostgreSQL cache backend.
func TestAltsourceWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("ALTSOURCE_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("ALTSOURCE_CACHE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("ALTSOURCE_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("ALTSOURCE_CACHE_DB_CONNECT") }()

	runCacheWorkflow(t)
}

// runCacheWorkflow exercises migrations, a cached match, status and clear
// against whatever backend the environment selects.
func runCacheWorkflow(t *testing.T) {
	t.Helper()

	// Bring the cache schema to the latest version
	_, err := runAltsource(t, nil, "cache", "migrate")
	require.NoError(t, err)

	// First match populates the cache, second one is served through it
	output, err := runAltsource(t, nil, "match", "RC0603FR-0710KL")
	require.NoError(t, err)
	assert.Contains(t, output, "Showing top")

	_, err = runAltsource(t, nil, "match", "RC0603FR-0710KL")
	require.NoError(t, err)

	// Run altsource cache status
	_, err = runAltsource(t, nil, "cache", "status")
	require.NoError(t, err)

	// Run altsource cache clear
	output, err = runAltsource(t, nil, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, output, "Cache cleared successfully.")
}
