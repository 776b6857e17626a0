package am

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/rnokpp/errors"
)

// isolate points HOME and the working directory at fresh temp dirs and
// resets cached state.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	Reset()
	t.Cleanup(Reset)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Generate.MinAge)
	assert.Equal(t, 95, cfg.Generate.MaxAge)
	assert.Zero(t, cfg.Generate.Seed)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.JSONOutput())
}

func TestLoad_NoFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Empty(t, ConfigFiles())
}

func TestLoad_Precedence(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigName), `
[generate]
min_age = 20
max_age = 60

[output]
format = "json"
`)
	writeFile(t, filepath.Join(work, ProjectConfigName), `
[generate]
max_age = 70
`)
	explicit := filepath.Join(t.TempDir(), "fixture.toml")
	writeFile(t, explicit, `
[generate]
seed = 42
`)
	t.Setenv("RNOKPP_GENERATE_MIN_AGE", "30")

	SetConfigFile(explicit)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Generate.MinAge, "env beats user file")
	assert.Equal(t, 70, cfg.Generate.MaxAge, "project beats user file")
	assert.Equal(t, uint64(42), cfg.Generate.Seed, "explicit file applied")
	assert.Equal(t, FormatJSON, cfg.Output.Format, "user file applied")
	assert.True(t, cfg.JSONOutput())

	assert.Equal(t, SourceUser, ConfigSources["output.format"].Source)
	assert.Equal(t, SourceProject, ConfigSources["generate.max_age"].Source)
	assert.Equal(t, SourceExplicit, ConfigSources["generate.seed"].Source)
	assert.Len(t, ConfigFiles(), 3)
}

func TestLoad_ProjectConfigSearchedUpward(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ProjectConfigName), "[generate]\nmin_age = 18\n")

	nested := filepath.Join(work, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.Generate.MinAge)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	SetConfigFile(filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "check the --config path")
}

func TestLoad_MalformedFile(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ProjectConfigName), "[generate\nmin_age = ")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Cached(t *testing.T) {
	isolate(t)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	writeFile(t, path, "[log]\njson = true\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, 14, cfg.Generate.MinAge)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	isolate(t)

	v, err := Get("generate.max_age")
	require.NoError(t, err)
	assert.EqualValues(t, 95, v)

	_, err = Get("generate.nope")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestIntrospect(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ProjectConfigName), "[generate]\nmin_age = 18\n")
	t.Setenv("RNOKPP_OUTPUT_FORMAT", "json")

	settings, err := Introspect()
	require.NoError(t, err)

	byKey := map[string]SettingInfo{}
	for _, s := range settings {
		byKey[s.Key] = s
	}

	require.Contains(t, byKey, "generate.min_age")
	assert.Equal(t, SourceProject, byKey["generate.min_age"].Source)
	assert.Equal(t, SourceDefault, byKey["generate.max_age"].Source)
	assert.Equal(t, SourceEnvironment, byKey["output.format"].Source)
	assert.Equal(t, "RNOKPP_OUTPUT_FORMAT", byKey["output.format"].SourcePath)

	keys := make([]string, 0, len(settings))
	for _, s := range settings {
		keys = append(keys, s.Key)
	}
	assert.IsNonDecreasing(t, keys)
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "RNOKPP_GENERATE_MIN_AGE", EnvVar("generate.min_age"))
	assert.Equal(t, "RNOKPP_LOG_JSON", EnvVar("log.json"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero window", mutate: func(c *Config) { c.Generate.MinAge, c.Generate.MaxAge = 0, 0 }},
		{name: "equal bounds", mutate: func(c *Config) { c.Generate.MinAge, c.Generate.MaxAge = 30, 30 }},
		{name: "upper limit", mutate: func(c *Config) { c.Generate.MaxAge = MaxAgeLimit }},
		{name: "negative min", mutate: func(c *Config) { c.Generate.MinAge = -1 }, wantErr: true},
		{name: "min above max", mutate: func(c *Config) { c.Generate.MinAge, c.Generate.MaxAge = 50, 40 }, wantErr: true},
		{name: "zero max below min", mutate: func(c *Config) { c.Generate.MinAge, c.Generate.MaxAge = 5, 0 }, wantErr: true},
		{name: "max above limit", mutate: func(c *Config) { c.Generate.MaxAge = MaxAgeLimit + 1 }, wantErr: true},
		{name: "empty format", mutate: func(c *Config) { c.Output.Format = "" }},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidRequestError(err))
				assert.NotEmpty(t, errors.GetAllHints(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNamesField(t *testing.T) {
	cfg := Defaults()
	cfg.Generate.MinAge, cfg.Generate.MaxAge = 50, 40

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_age")
}

func TestCheckUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	writeFile(t, path, `
[generate]
min_age = 18
max_agee = 70

[server]
port = 877
`)

	unknown, err := CheckUnknownKeys(path)
	require.NoError(t, err)
	assert.Contains(t, unknown, "generate.max_agee")
	assert.Contains(t, unknown, "server.port")
	assert.NotContains(t, unknown, "generate.min_age")
}

func TestCheckUnknownKeys_Clean(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	writeFile(t, path, "[generate]\nmin_age = 18\n[log]\njson = true\n")

	unknown, err := CheckUnknownKeys(path)
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestCheckUnknownKeys_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	writeFile(t, path, "[generate\n")

	_, err := CheckUnknownKeys(path)
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "config files are TOML")
}

func TestRender(t *testing.T) {
	settings := map[string]interface{}{
		"generate": map[string]interface{}{"min_age": 14, "max_age": 95},
		"output":   map[string]interface{}{"format": "text"},
	}

	t.Run("toml", func(t *testing.T) {
		out, err := Render(settings, RenderTOML)
		require.NoError(t, err)
		assert.Contains(t, string(out), "[generate]")
		assert.Contains(t, string(out), "min_age = 14")
	})

	t.Run("json", func(t *testing.T) {
		out, err := Render(settings, RenderJSON)
		require.NoError(t, err)
		var decoded map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.EqualValues(t, 95, decoded["generate"]["max_age"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Render(settings, RenderYAML)
		require.NoError(t, err)
		var decoded map[string]map[string]interface{}
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, "text", decoded["output"]["format"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Render(settings, "ini")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidRequestError(err))
	})
}

func TestInitProjectConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := InitProjectConfig(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProjectConfigName), path)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	unknown, err := CheckUnknownKeys(path)
	require.NoError(t, err)
	assert.Empty(t, unknown)

	_, err = InitProjectConfig(dir, false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))

	_, err = InitProjectConfig(dir, true)
	require.NoError(t, err)
	assert.FileExists(t, path+".back1")
}

func TestCreateBackupRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)

	for i := 1; i <= 5; i++ {
		writeFile(t, path, string(rune('0'+i)))
		require.NoError(t, createBackup(path))
	}

	for n, want := range map[int]string{1: "5", 2: "4", 3: "3"} {
		data, err := os.ReadFile(backupPath(path, n))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
	assert.NoFileExists(t, path+".back4")
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/x/rnokpp.toml.back1"))
	assert.True(t, isBackupFile("am.toml.back3"))
	assert.False(t, isBackupFile("/x/rnokpp.toml"))
}
