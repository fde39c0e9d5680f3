package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheuskafuri/hunttech/internal/ai"
	"github.com/matheuskafuri/hunttech/internal/config"
	"github.com/matheuskafuri/hunttech/internal/lang"
	"github.com/matheuskafuri/hunttech/internal/news"
	"github.com/matheuskafuri/hunttech/internal/store"
	"github.com/matheuskafuri/hunttech/internal/user"
)

func tempStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hunttech.db")
	orig := openStore
	openStore = func() (*store.Store, error) { return store.Open(path) }
	t.Cleanup(func() { openStore = orig })

	db, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * 24 * time.Hour, "30d"},
		{24 * time.Hour, "1d"},
		{36 * time.Hour, "1d"},
		{12 * time.Hour, "12h"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	defer func() { flagLang = "" }()
	cfg := &config.Config{Language: "hi"}

	flagLang = ""
	l, err := resolveLanguage(cfg)
	require.NoError(t, err)
	assert.Equal(t, lang.Hindi, l)

	flagLang = "EN"
	l, err = resolveLanguage(cfg)
	require.NoError(t, err)
	assert.Equal(t, lang.English, l)

	flagLang = "fr"
	_, err = resolveLanguage(cfg)
	assert.Error(t, err)
}

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	printItems(&buf, []news.Item{
		{Title: "Chip launch", Category: "Gadgets", Source: "Wire", Timestamp: "yesterday", Description: "A new chip.", URL: "https://example.com/chip"},
		{Title: "No link", Category: "AI", Source: "Desk"},
	})
	out := buf.String()
	assert.Contains(t, out, " 1. Chip launch")
	assert.Contains(t, out, "Gadgets · Wire · yesterday")
	assert.Contains(t, out, "https://example.com/chip")
	assert.Contains(t, out, " 2. No link")
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteJSONKeepsFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, []news.Item{{ID: "1", ImageURL: "https://picsum.photos/seed/1/800/450"}}))
	assert.Contains(t, buf.String(), `"imageUrl": "https://picsum.photos/seed/1/800/450"`)
	assert.NotContains(t, buf.String(), `"url"`)
}

func TestReportStatus(t *testing.T) {
	var buf bytes.Buffer
	q := news.Query{Language: lang.English, Category: "AI"}
	reportStatus(&buf, q, news.Result{Items: []news.Item{}, Status: news.StatusFailed, Err: news.ErrUpstream})
	assert.Contains(t, buf.String(), "en · AI · 0 stories · failed")
	assert.Contains(t, buf.String(), "[warn] upstream request failed")
}

func TestShowUser(t *testing.T) {
	db := tempStore(t)

	var buf bytes.Buffer
	require.NoError(t, showUser(&buf, db))
	assert.Equal(t, "Not logged in.\n", buf.String())

	u, err := user.New("Asha", "asha@example.com", lang.Hindi, []string{"एआई"})
	require.NoError(t, err)
	require.NoError(t, db.SaveUser(u))

	buf.Reset()
	require.NoError(t, showUser(&buf, db))
	assert.Contains(t, buf.String(), "Asha")
	assert.Contains(t, buf.String(), "हिन्दी (hi)")
	assert.Contains(t, buf.String(), "Interests: एआई")
}

func TestLoginUserRejectsForeignLabels(t *testing.T) {
	db := tempStore(t)

	_, err := loginUser(db, "Rafi", "rafi@example.com", lang.English, []string{"এআই"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown interest")

	_, err = loginUser(db, "Rafi", "not-an-email", lang.English, nil)
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	u, err := loginUser(db, "Rafi", "rafi@example.com", lang.English, []string{"AI", "Apps"})
	require.NoError(t, err)
	stored, err := db.LoadUser()
	require.NoError(t, err)
	assert.Equal(t, u, stored)
}

func TestThemeCommand(t *testing.T) {
	db := tempStore(t)

	var buf bytes.Buffer
	require.NoError(t, showTheme(&buf, db))
	assert.True(t, strings.HasPrefix(buf.String(), "No theme saved"))

	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"theme", "dark"})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())

	v, err := db.Theme()
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	rootCmd.SetArgs([]string{"theme", "sepia"})
	assert.Error(t, rootCmd.Execute())
}

func TestPrintStats(t *testing.T) {
	db := tempStore(t)
	require.NoError(t, db.RecordFetch(store.FetchRecord{Language: "en", Category: "AI", Status: "ok", Items: 12}))
	require.NoError(t, db.RecordFetch(store.FetchRecord{Language: "bn", Category: "সব খবর", Status: "failed"}))

	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, db, 5))
	out := buf.String()
	assert.Contains(t, out, "Fetches: 2 (1 failed)")
	assert.Contains(t, out, "Recent fetches:")
	assert.NotContains(t, out, "Last refresh: never")
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	defer SetVersionInfo("dev", "none", "unknown")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "hunttech 1.2.3 (commit: abc, built: today)\n", buf.String())
}

// writeConfig writes a config that logs into dir and returns its path.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "language: en\nlog:\n  file: " + filepath.Join(dir, "hunttech.log") + "\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	return path
}

func TestNewGeneratorWithoutKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvGeminiAPIKey, "")

	gen, err := newGenerator(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, ai.Disabled{}, gen)

	gen, err = newGenerator(&config.Config{AI: config.AIConfig{APIKey: "k"}})
	require.NoError(t, err)
	assert.IsType(t, &ai.Gemini{}, gen)
}

func TestFetchWithoutKeyFailsSoft(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvGeminiAPIKey, "")
	db := tempStore(t)
	path := writeConfig(t, "")
	defer func() {
		flagConfig = ""
		flagFetchJSON = false
	}()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"fetch", "--config", path, "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "[]\n", stdout.String())
	assert.Contains(t, stderr.String(), "0 stories · failed")
	assert.Contains(t, stderr.String(), "AI not configured")

	rows, err := db.RecentFetches(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "failed", rows[0].Status)
}
