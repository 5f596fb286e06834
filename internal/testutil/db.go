package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// EnvTestURI points tests at an existing MongoDB instead of a container.
const EnvTestURI = "MONGO_TEST_URI"

const mongoPort = nat.Port("27017/tcp")

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

// TestContext returns a context suitable for a single test's store calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB returns a fresh, uniquely named database that is dropped when
// the test ends. It uses MONGO_TEST_URI when set, otherwise a mongo:7
// container shared by the whole test binary. The test is skipped when neither
// is available.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	if os.Getenv(EnvTestURI) == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
	}
	clientOnce.Do(connect)
	if clientErr != nil {
		t.Skipf("mongo unavailable: %v", clientErr)
	}

	name := "lessonshop_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	db := client.Database(name)
	t.Cleanup(func() {
		ctx, cancel := TestContext()
		defer cancel()
		_ = db.Drop(ctx)
	})
	return db
}

func connect() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	uri := os.Getenv(EnvTestURI)
	if uri == "" {
		uri, clientErr = startContainer(ctx)
		if clientErr != nil {
			return
		}
	}

	client, clientErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if clientErr != nil {
		return
	}
	clientErr = client.Ping(ctx, readpref.Primary())
}

// The container is reaped by testcontainers when the test binary exits.
func startContainer(ctx context.Context) (string, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{string(mongoPort)},
			WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "lessonshop-tests"},
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start mongo container: %w", err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := c.MappedPort(ctx, mongoPort)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("mongodb://%s:%s", host, port.Port()), nil
}
