package azure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// well-known Azurite development account
	devAccount    = "devstoreaccount1"
	devKey        = "Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw=="
	ContainerName = "food-images"
)

func connectionString(endpoint string) string {
	return fmt.Sprintf("DefaultEndpointsProtocol=http;AccountName=%s;AccountKey=%s;BlobEndpoint=http://%s/%s;",
		devAccount, devKey, endpoint, devAccount)
}

func setupAzurite(t *testing.T) (testcontainers.Container, string) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mcr.microsoft.com/azure-storage/azurite:latest",
		ExposedPorts: []string{"10000/tcp"},
		Cmd:          []string{"azurite-blob", "--blobHost", "0.0.0.0", "--skipApiVersionCheck", "--loose"},
		WaitingFor:   wait.ForListeningPort("10000/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	return container, connectionString(endpoint)
}

func TestNewRejectsMalformedConnectionString(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not a connection string", "AccountName=x"} {
		_, err := New(Config{ConnectionString: raw})
		assert.Error(t, err, raw)
	}
}

func TestSignedURLOffline(t *testing.T) {
	t.Parallel()

	client, err := New(Config{ConnectionString: connectionString("127.0.0.1:1")})
	require.NoError(t, err)

	issued := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	locator := NewLocator(client, Config{})
	locator.now = func() time.Time { return issued }

	link, err := locator.SignedURL(context.Background(), ContainerName, "Chicken Curry.png", 10*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(u.Path, "/food-images/Chicken Curry.png"), u.Path)

	q := u.Query()
	assert.Equal(t, "r", q.Get("sp"))
	assert.NotEmpty(t, q.Get("sig"))

	expiry, err := time.Parse(time.RFC3339, q.Get("se"))
	require.NoError(t, err)
	assert.Equal(t, issued.Add(10*time.Minute), expiry)
}

func TestLocator(t *testing.T) {
	container, connStr := setupAzurite(t)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	ctx := context.Background()
	client, err := New(Config{ConnectionString: connStr})
	require.NoError(t, err)

	_, err = client.CreateContainer(ctx, ContainerName, nil)
	require.NoError(t, err)

	content := []byte("\x89PNG\r\n\x1a\nfake pizza")
	_, err = client.UploadBuffer(ctx, ContainerName, "pizza.png", content, nil)
	require.NoError(t, err)

	locator := NewLocator(client, Config{Timeout: 3000})

	tests := []struct {
		name      string
		container string
		blob      string
		expected  bool
	}{
		{name: "existing blob", container: ContainerName, blob: "pizza.png", expected: true},
		{name: "missing blob", container: ContainerName, blob: "sushi.png", expected: false},
		{name: "missing container", container: "no-such-container", blob: "pizza.png", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exists, err := locator.Exists(ctx, tc.container, tc.blob)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, exists)
		})
	}

	t.Run("signed url downloads the blob", func(t *testing.T) {
		link, err := locator.SignedURL(ctx, ContainerName, "pizza.png", 10*time.Minute)
		require.NoError(t, err)

		resp, err := http.Get(link) //nolint:noctx
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, content, body)
	})
}
