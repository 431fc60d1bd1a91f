package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GITHUB_USERNAME", "GITHUB_API_URL", "STORE_DRIVER", "REFRESH_INTERVAL", "REQUEST_TIMEOUT", "WRITE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	require.NoError(t, Load())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "Akib-Osmani", AppConfig.GitHub.Username)
	assert.Equal(t, "https://api.github.com/", AppConfig.GitHub.APIURL)
	assert.Equal(t, 10*time.Second, AppConfig.GitHub.RequestTimeout)
	assert.Less(t, AppConfig.GitHub.RequestTimeout, time.Duration(AppConfig.Server.WriteTimeout)*time.Second)
	assert.Equal(t, StoreDriverSQLite, AppConfig.Store.Driver)
	assert.Equal(t, 25*time.Minute, AppConfig.Refresh.Interval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REFRESH_INTERVAL", "0")

	require.NoError(t, Load())

	assert.Equal(t, "3000", AppConfig.Server.Port)
	assert.Equal(t, "octocat", AppConfig.GitHub.Username)
	assert.Equal(t, StoreDriverRedis, AppConfig.Store.Driver)
	assert.Equal(t, 2, AppConfig.Store.RedisDB)
	assert.Equal(t, time.Duration(0), AppConfig.Refresh.Interval)
}

func TestEnvHelpersFallBackOnInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		run  func() any
		want any
	}{
		{
			name: "invalid int",
			run: func() any {
				t.Setenv("READ_TIMEOUT", "fast")
				return getEnvAsInt("READ_TIMEOUT", 15)
			},
			want: 15,
		},
		{
			name: "invalid duration",
			run: func() any {
				t.Setenv("REQUEST_TIMEOUT", "soon")
				return getEnvAsDuration("REQUEST_TIMEOUT", time.Second)
			},
			want: time.Second,
		},
		{
			name: "valid duration",
			run: func() any {
				t.Setenv("REQUEST_TIMEOUT", "2m")
				return getEnvAsDuration("REQUEST_TIMEOUT", time.Second)
			},
			want: 2 * time.Minute,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.run())
		})
	}
}

func TestRequestTimeoutStaysBelowWriteTimeout(t *testing.T) {
	testCases := []struct {
		name    string
		request string
		write   string
		want    time.Duration
	}{
		{"default fits", "", "15", 10 * time.Second},
		{"longer than write deadline", "30s", "15", 10 * time.Second},
		{"disabled request timeout", "0", "15", 10 * time.Second},
		{"raised write deadline", "30s", "60", 30 * time.Second},
		{"no write deadline", "30s", "0", 30 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("REQUEST_TIMEOUT", tc.request)
			t.Setenv("WRITE_TIMEOUT", tc.write)

			require.NoError(t, Load())
			assert.Equal(t, tc.want, AppConfig.GitHub.RequestTimeout)
		})
	}
}
