package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"paranoid-users/internal/core/auth"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`
log:
  level: error
jwt:
  secret: cli-secret
  issuer: paranoid-users
db:
  driver: sqlite
  dsn: file:%s
  logLevel: silent
`, filepath.ToSlash(filepath.Join(dir, "users.db")))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestMigratePrintsColumns(t *testing.T) {
	cfg := writeConfig(t)
	out, err := run(t, cfg, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "deletedAt")
	require.Contains(t, out, "isActive")
}

func TestToken(t *testing.T) {
	cfg := writeConfig(t)
	out, err := run(t, cfg, "token", "--uid", "ops-7")
	require.NoError(t, err)

	c, err := auth.NewJWTer("cli-secret", "paranoid-users", time.Hour).Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, "ops-7", c.UID)
	require.Equal(t, auth.RoleAdmin, c.Role)
}

func TestUsersLifecycle(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "users", "create", "Ada", "Lovelace")
	require.NoError(t, err)
	var u struct {
		ID        string     `json:"id"`
		DeletedAt *time.Time `json:"deletedAt"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	require.NotEmpty(t, u.ID)

	_, err = run(t, cfg, "users", "delete", u.ID)
	require.NoError(t, err)

	_, err = run(t, cfg, "users", "get", u.ID)
	require.ErrorContains(t, err, "not found")

	out, err = run(t, cfg, "users", "get", "--with-deleted", u.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	require.NotNil(t, u.DeletedAt)

	out, err = run(t, cfg, "users", "list")
	require.NoError(t, err)
	var list struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Items, 1)

	out, err = run(t, cfg, "users", "restore", u.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	require.Nil(t, u.DeletedAt)

	_, err = run(t, cfg, "users", "purge", u.ID)
	require.NoError(t, err)

	_, err = run(t, cfg, "users", "restore", u.ID)
	require.ErrorContains(t, err, "not found")
}
