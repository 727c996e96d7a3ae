package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/vr-therapy-cli/internal/application"
	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fastConfig = `[log]
level = "error"

[history]
backend = "%s"

[session]
durations = [0]

[navigation]
completion_delay = "0s"
termination_delay = "0s"
boot_delay = "0s"
menu_exit_delay = "0s"

[loop]
tick_interval = "1ms"
`

func TestSessionStartLogsCompletedSession(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "toml"))

	stdout, _, err := executeCLI(t, home, "session", "start", "--tui=false", "--user", "alice", "--pattern", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session completed: user alice, pattern GridWave")

	stdout, _, err = executeCLI(t, home, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 1")
	assert.Contains(t, stdout, "alice")
	assert.Contains(t, stdout, "GridWave")
	assert.Contains(t, stdout, "[completed]")
	assert.FileExists(t, filepath.Join(home, ".vrt", "history.toml"))
}

func TestSessionStartWithDefaultMenuExitDelay(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigBody(home, `[log]
level = "error"

[session]
durations = [0]

[navigation]
completion_delay = "0s"
boot_delay = "0s"

[loop]
tick_interval = "1ms"
`))

	stdout, _, err := executeCLI(t, home, "session", "start", "--tui=false", "--user", "frank")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session completed: user frank, pattern Glow")
}

func TestSessionRunStaysImmersiveUntilCompletion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, writeConfigBody(home, `[log]
level = "error"

[history]
backend = "memory"

[session]
durations = [1]

[navigation]
completion_delay = "0s"
boot_delay = "0s"
menu_exit_delay = "100ms"

[loop]
tick_interval = "5ms"
`))

	app, err := wireApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.close() })

	var immersiveAtCompletion []bool
	app.sessions.Subscribe(func(event domain.SessionEvent) {
		if event.Kind == domain.EventCompleted {
			immersiveAtCompletion = append(immersiveAtCompletion, app.immersive.IsImmersive())
		}
	})

	record, err := newSessionRun(app, application.MenuSelection{UserName: "erin"}).headless(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, domain.OutcomeCompleted, record.Outcome)
	assert.Equal(t, []bool{true}, immersiveAtCompletion)
	assert.Equal(t, domain.SceneMainMenu, app.scenes.Current())
	assert.False(t, app.immersive.IsImmersive())

	enters, exits := app.immersive.Transitions()
	assert.Equal(t, 1, enters)
	assert.Equal(t, 1, exits)
}

func TestSessionStartDefaultsToGuestAndClampsSelection(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "toml"))

	stdout, _, err := executeCLI(t, home, "session", "start", "--tui=false", "--pattern", "42", "--duration=-3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session completed: user guest, pattern SplineTrack")
}

func TestHistoryJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "toml"))

	_, _, err := executeCLI(t, home, "session", "start", "--tui=false", "--user", "bob")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "history", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0]["user_id"])
	assert.Equal(t, "glow", entries[0]["pattern_id"])
	assert.Equal(t, "Glow", entries[0]["pattern"])
	assert.Equal(t, "completed", entries[0]["outcome"])
	assert.NotEmpty(t, entries[0]["id"])
}

func TestHistoryJSONHonorsLimit(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "toml"))

	for _, user := range []string{"first", "second", "third"} {
		_, _, err := executeCLI(t, home, "session", "start", "--tui=false", "--user", user)
		require.NoError(t, err)
	}

	stdout, _, err := executeCLI(t, home, "history", "--json", "--limit", "2")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0]["user_id"])
	assert.Equal(t, "third", entries[1]["user_id"])
}

func TestHistoryEmpty(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "toml"))

	stdout, _, err := executeCLI(t, home, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 0")
	assert.Contains(t, stdout, "No sessions logged yet.")

	stdout, _, err = executeCLI(t, home, "history", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}

func TestSessionHistoryWithSQLiteBackend(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "sqlite"))

	_, _, err := executeCLI(t, home, "session", "start", "--tui=false", "--user", "carol", "--pattern", "2")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "session", "start", "--tui=false", "--user", "dave")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 2")
	assert.Contains(t, stdout, "dave")
	assert.NotContains(t, stdout, "carol")
	assert.FileExists(t, filepath.Join(home, ".vrt", "history.db"))
}

func TestPatternsListsCatalog(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "patterns")
	require.NoError(t, err)
	assert.Contains(t, stdout, "glow")
	assert.Contains(t, stdout, "3 VR Glow")
	assert.Contains(t, stdout, "5 VR SplineTrack")
	assert.Contains(t, stdout, "10m0s")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUnsupportedHistoryBackendFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "postgres"))

	_, _, err := executeCLI(t, home, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported history backend")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "account")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"account\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, backend string) error {
	return writeConfigBody(home, fmt.Sprintf(fastConfig, backend))
}

func writeConfigBody(home, body string) error {
	configDir := filepath.Join(home, ".vrt")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(body), 0o644)
}
