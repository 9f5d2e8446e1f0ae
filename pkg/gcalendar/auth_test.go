package gcalendar_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"task-assistant/pkg/gcalendar"
)

const installedAppCreds = `{"installed":{"client_id":"cid.apps.googleusercontent.com","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`

func TestTokenPath(t *testing.T) {
	assert.Equal(t, filepath.Join("secrets", "token.json"), gcalendar.TokenPath(filepath.Join("secrets", "google.json")))
}

func TestInstalledAppConfig(t *testing.T) {
	cfg, err := gcalendar.InstalledAppConfig([]byte(installedAppCreds))
	require.NoError(t, err)
	assert.Equal(t, "cid.apps.googleusercontent.com", cfg.ClientID)
	assert.Contains(t, cfg.AuthCodeURL("state", oauth2.AccessTypeOffline), "access_type=offline")

	_, err = gcalendar.InstalledAppConfig([]byte(`{"type":"unknown"}`))
	assert.Error(t, err)
}

func TestSaveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{AccessToken: "at", RefreshToken: "rt", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, gcalendar.SaveToken(path, tok))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got oauth2.Token
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "rt", got.RefreshToken)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
