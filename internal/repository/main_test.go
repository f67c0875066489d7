//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/batch-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain sets up a shared MongoDB container for all integration tests in this package.
// The container runs as a single-node replica set so the transactional assignment
// paths can be exercised, and is reused across tests to keep the suite fast.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer creates a MongoDB connection using the shared
// container with a unique database name for test isolation.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), dbName)
	require.NoError(t, err)
	return db
}
