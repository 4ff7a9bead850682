package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fxsml/medium"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type innerLimits struct {
	Burst int
	Every time.Duration
}

type embeddedBase struct {
	Name string
}

type demoConfig struct {
	embeddedBase
	Values   string
	Limits   innerLimits
	Callback func(int)
	Logger   medium.Logger
	Ratio    float32
	Count    uint8
}

func TestLoad_ChannelConfig(t *testing.T) {
	l := Loader{
		lookup: envMap(map[string]string{
			"MEDIUM_DEMO_NAME":            "numbers",
			"MEDIUM_DEMO_RECOVER":         "true",
			"MEDIUM_DEMO_DISABLE_LOGGING": "1",
		}),
	}

	var cfg medium.Config
	require.NoError(t, l.Load("demo", &cfg))

	require.Equal(t, medium.Config{Name: "numbers", Recover: true, DisableLogging: true}, cfg)
}

func TestLoad_NestedAndEmbedded(t *testing.T) {
	l := Loader{
		lookup: envMap(map[string]string{
			"MEDIUM_FILTER_DEMO_NAME":         "numbers",
			"MEDIUM_FILTER_DEMO_VALUES":       "1,2",
			"MEDIUM_FILTER_DEMO_LIMITS_BURST": "3",
			"MEDIUM_FILTER_DEMO_LIMITS_EVERY": "250ms",
			"MEDIUM_FILTER_DEMO_RATIO":        "0.5",
			"MEDIUM_FILTER_DEMO_COUNT":        "7",
		}),
	}

	var cfg demoConfig
	require.NoError(t, l.Load("filter-demo", &cfg))

	require.Equal(t, "numbers", cfg.Name)
	require.Equal(t, "1,2", cfg.Values)
	require.Equal(t, 3, cfg.Limits.Burst)
	require.Equal(t, 250*time.Millisecond, cfg.Limits.Every)
	require.InDelta(t, 0.5, cfg.Ratio, 1e-6)
	require.EqualValues(t, 7, cfg.Count)
	require.Nil(t, cfg.Callback)
	require.Nil(t, cfg.Logger)
}

func TestLoad_MissingVarsPreserveDefaults(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{
		"MEDIUM_DEMO_RECOVER": "true",
	})}

	cfg := medium.Config{Name: "default"}
	require.NoError(t, l.Load("demo", &cfg))

	require.Equal(t, "default", cfg.Name)
	require.True(t, cfg.Recover)
}

func TestLoad_CustomPrefix(t *testing.T) {
	l := Loader{
		Prefix: "APP",
		lookup: envMap(map[string]string{"APP_DEMO_NAME": "custom"}),
	}

	var cfg medium.Config
	require.NoError(t, l.Load("demo", &cfg))
	require.Equal(t, "custom", cfg.Name)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"MEDIUM_DEMO_LIMITS_BURST": "many",
		"MEDIUM_DEMO_LIMITS_EVERY": "soon",
		"MEDIUM_DEMO_RATIO":        "half",
		"MEDIUM_DEMO_COUNT":        "-1",
	}
	for key, raw := range cases {
		t.Run(key, func(t *testing.T) {
			l := Loader{lookup: envMap(map[string]string{key: raw})}

			var cfg demoConfig
			err := l.Load("demo", &cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	l := Loader{lookup: envMap(map[string]string{"MEDIUM_DEMO_RECOVER": "maybe"})}

	var cfg medium.Config
	require.ErrorContains(t, l.Load("demo", &cfg), "MEDIUM_DEMO_RECOVER")
}

func TestLoad_NotAPointerToStruct(t *testing.T) {
	var cfg medium.Config
	require.Error(t, Loader{}.Load("demo", cfg))

	n := 1
	require.Error(t, Loader{}.Load("demo", &n))
}

func TestLoad_Dotenv(t *testing.T) {
	path := writeDotenv(t, "MEDIUM_DEMO_NAME=from-file\nMEDIUM_DEMO_RECOVER=true\n")
	l := Loader{
		Files:  []string{path},
		lookup: envMap(map[string]string{"MEDIUM_DEMO_NAME": "from-env"}),
	}

	var cfg medium.Config
	require.NoError(t, l.Load("demo", &cfg))

	require.Equal(t, "from-env", cfg.Name)
	require.True(t, cfg.Recover)
}

func TestLoad_DotenvMissingFile(t *testing.T) {
	l := Loader{
		Files:  []string{filepath.Join(t.TempDir(), "missing.env")},
		lookup: envMap(nil),
	}

	var cfg medium.Config
	require.Error(t, l.Load("demo", &cfg))
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("MEDIUM_PROCESS_NAME", "from-process")

	var cfg medium.Config
	require.NoError(t, Load("process", &cfg))
	require.Equal(t, "from-process", cfg.Name)
}

func TestKeys(t *testing.T) {
	require.Equal(t, []string{
		"MEDIUM_DEMO_NAME",
		"MEDIUM_DEMO_RECOVER",
		"MEDIUM_DEMO_DISABLE_LOGGING",
	}, Keys("demo", medium.Config{}))

	require.Equal(t, []string{
		"MEDIUM_DEMO_NAME",
		"MEDIUM_DEMO_VALUES",
		"MEDIUM_DEMO_LIMITS_BURST",
		"MEDIUM_DEMO_LIMITS_EVERY",
		"MEDIUM_DEMO_RATIO",
		"MEDIUM_DEMO_COUNT",
	}, Loader{}.Keys("demo", &demoConfig{}))

	require.Nil(t, Keys("demo", 42))
}

func TestToUpperSnake(t *testing.T) {
	cases := map[string]string{
		"Name":           "NAME",
		"DisableLogging": "DISABLE_LOGGING",
		"URLPath":        "URL_PATH",
		"HTTPClient":     "HTTP_CLIENT",
		"Retry2Times":    "RETRY2_TIMES",
	}
	for in, want := range cases {
		require.Equal(t, want, toUpperSnake(in), in)
	}
}

func TestNormalizeStage(t *testing.T) {
	require.Equal(t, "FILTER_DEMO", normalizeStage("filter-demo"))
	require.Equal(t, "A_B_C", normalizeStage("a b_c"))
	require.Equal(t, "X1", normalizeStage("x.1!"))
}
