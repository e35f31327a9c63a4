package metadata

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"DockerId": "abc123",
	"Image": "repo:tag",
	"Labels": {
		"com.amazonaws.ecs.cluster": "production",
		"com.amazonaws.ecs.container-name": "streamer",
		"com.amazonaws.ecs.task-arn": "arn:aws:ecs:us-east-1:939885537497:task/production/XYZ",
		"com.amazonaws.ecs.task-definition-family": "streamer",
		"com.amazonaws.ecs.task-definition-version": "12"
	},
	"Limits": {"CPU": 2, "Memory": 0}
}`

func TestFetch(t *testing.T) {
	// Count number of requests and setup a test server
	count := 0
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(200)
			w.Write([]byte(sampleDocument))

		case "/not-found":
			w.WriteHeader(404)
			w.Write([]byte("not-found"))

		case "/server-error":
			w.WriteHeader(500)
			w.Write([]byte("server-error"))

		case "/not-json":
			w.WriteHeader(200)
			w.Write([]byte("<html>definitely not metadata</html>"))

		case "/missing-docker-id":
			w.WriteHeader(200)
			w.Write([]byte(`{
				"Image": "repo:tag",
				"Labels": {
					"com.amazonaws.ecs.cluster": "production",
					"com.amazonaws.ecs.container-name": "streamer",
					"com.amazonaws.ecs.task-arn": "arn:aws:ecs:us-east-1:939885537497:task/production/XYZ",
					"com.amazonaws.ecs.task-definition-family": "streamer",
					"com.amazonaws.ecs.task-definition-version": "12"
				},
				"Limits": {"CPU": 2, "Memory": 0}
			}`))

		case "/wrong-type":
			w.WriteHeader(200)
			w.Write([]byte(`{"DockerId": 42}`))

		default:
			panic("Unhandled path: " + r.URL.Path)
		}
	}))
	defer s.Close()

	t.Run("ok", func(t *testing.T) {
		count = 0
		t.Setenv(EnvMetadataURIV4, s.URL+"/ok")
		m, err := Fetch()
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.Equal(t, "abc123", m.DockerID())
		require.Equal(t, "repo:tag", m.Image())
		require.Equal(t, "production", m.Cluster())
		require.Equal(t, "streamer", m.ContainerName())
		require.Equal(t, "arn:aws:ecs:us-east-1:939885537497:task/production/XYZ", m.TaskARN())
		require.Equal(t, "streamer", m.TaskDefinitionFamily())
		require.Equal(t, "12", m.TaskDefinitionRevision())
		require.Equal(t, uint16(2), m.Limits().CPU)
		// Memory 0 means unbounded and is a valid value, not an error
		require.Equal(t, uint16(0), m.Limits().Memory)

		id, ok := m.TaskID()
		require.True(t, ok)
		require.Equal(t, "XYZ", id)
	})

	t.Run("not-found", func(t *testing.T) {
		count = 0
		t.Setenv(EnvMetadataURIV4, s.URL+"/not-found")
		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsFetchError(err))
		require.Nil(t, m)
		require.Equal(t, 1, count)
	})

	t.Run("server-error", func(t *testing.T) {
		count = 0
		t.Setenv(EnvMetadataURIV4, s.URL+"/server-error")
		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsFetchError(err))
		require.Nil(t, m)
		// No retry, a single failure is terminal
		require.Equal(t, 1, count)
	})

	t.Run("not-json", func(t *testing.T) {
		count = 0
		t.Setenv(EnvMetadataURIV4, s.URL+"/not-json")
		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsFetchError(err))
		require.Nil(t, m)
		require.Equal(t, 1, count)
	})

	t.Run("missing-docker-id", func(t *testing.T) {
		count = 0
		t.Setenv(EnvMetadataURIV4, s.URL+"/missing-docker-id")
		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsFetchError(err))
		require.Contains(t, err.Error(), "DockerId")
		require.Nil(t, m)
		require.Equal(t, 1, count)
	})

	t.Run("wrong-type", func(t *testing.T) {
		count = 0
		t.Setenv(EnvMetadataURIV4, s.URL+"/wrong-type")
		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsFetchError(err))
		require.Nil(t, m)
		require.Equal(t, 1, count)
	})

	t.Run("env-not-set", func(t *testing.T) {
		count = 0
		old, wasSet := os.LookupEnv(EnvMetadataURIV4)
		require.NoError(t, os.Unsetenv(EnvMetadataURIV4))
		defer func() {
			if wasSet {
				os.Setenv(EnvMetadataURIV4, old)
			}
		}()

		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsEnvNotSetError(err))
		require.Equal(t, EnvNotSetError{Name: EnvMetadataURIV4}, err)
		require.Nil(t, m)
		// Missing configuration must not trigger a network call
		require.Equal(t, 0, count)
	})

	t.Run("connection-refused", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		t.Setenv(EnvMetadataURIV4, dead.URL)
		m, err := Fetch()
		require.Error(t, err)
		require.True(t, IsFetchError(err))
		require.Nil(t, m)
	})
}

func TestTaskID(t *testing.T) {
	t.Run("production-arn", func(t *testing.T) {
		m := &Metadata{
			taskARN: "arn:aws:ecs:us-east-1:939885537497:task/production/021447970bce4bd58069f1925cd87bc0",
		}
		id, ok := m.TaskID()
		require.True(t, ok)
		require.Equal(t, "021447970bce4bd58069f1925cd87bc0", id)
	})

	t.Run("no-slash", func(t *testing.T) {
		m := &Metadata{taskARN: "arn:aws:ecs:us-east-1:939885537497:task"}
		id, ok := m.TaskID()
		require.False(t, ok)
		require.Equal(t, "", id)
	})

	t.Run("trailing-slash", func(t *testing.T) {
		m := &Metadata{taskARN: "arn:aws:ecs:us-east-1:939885537497:task/"}
		id, ok := m.TaskID()
		require.True(t, ok)
		require.Equal(t, "", id)
	})
}
