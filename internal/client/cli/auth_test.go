package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kouden/internal/client/client"
)

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func loggedOut(ta *testApp) *testApp {
	ta.userName, ta.session, ta.mode = "", false, ""
	return ta
}

func TestRegister_Success(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	stubInputs(t, "alice", []byte("secret"))

	require.NoError(t, ta.Register(context.Background()))
	assert.Equal(t, "alice", ta.auth.regUser)
	assert.Equal(t, "secret", string(ta.auth.regPass))
	assert.Contains(t, ta.buf.String(), "Success!")
}

func TestRegister_Error(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	ta.auth.regErr = client.ErrAlreadyExists
	stubInputs(t, "alice", []byte("secret"))

	assert.ErrorIs(t, ta.Register(context.Background()), client.ErrAlreadyExists)
	assert.Contains(t, ta.buf.String(), "Registration failed")
}

func TestLogin_Online(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	stubInputs(t, "alice", []byte("pw"))

	require.NoError(t, ta.Login(context.Background()))
	assert.True(t, ta.isLoggedIn())
	assert.True(t, ta.hasSession())
	assert.Equal(t, ModeOnline, ta.Mode())
	assert.Empty(t, ta.auth.offlineUser)
}

func TestLogin_OfflineFallback(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	ta.auth.onlineErr = client.ErrUnavailable
	stubInputs(t, "alice", []byte("pw"))

	require.NoError(t, ta.Login(context.Background()))
	assert.Equal(t, "alice", ta.auth.offlineUser)
	assert.Equal(t, ModeOffline, ta.Mode())
	assert.False(t, ta.hasSession())
}

func TestLogin_OfflineFails(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	ta.auth.onlineErr = client.ErrUnavailable
	ta.auth.offlineErr = client.ErrLocalDataNotAvailable
	stubInputs(t, "alice", []byte("pw"))

	assert.ErrorIs(t, ta.Login(context.Background()), client.ErrLocalDataNotAvailable)
	assert.False(t, ta.isLoggedIn())
	assert.Equal(t, ModeDisabled, ta.Mode())
}

func TestLogin_WrongPassword(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	ta.auth.onlineErr = client.ErrUnauthorized
	stubInputs(t, "alice", []byte("pw"))

	assert.ErrorIs(t, ta.Login(context.Background()), client.ErrUnauthorized)
	assert.False(t, ta.isLoggedIn())
	assert.Empty(t, ta.auth.offlineUser)
}

func TestLogin_ReopensLastLedger(t *testing.T) {
	ta := loggedOut(newTestApp(t, ""))
	ta.ledgers.ledgers = append(ta.ledgers.ledgers, ledgerL1)
	ta.ledgers.last = "l1"
	stubInputs(t, "alice", []byte("pw"))

	require.NoError(t, ta.Login(context.Background()))
	w := ta.currentWorkspace()
	require.NotNil(t, w)
	assert.Equal(t, "l1", w.Ledger.ID)
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t, "")
	ta.open(t, "")

	require.NoError(t, ta.Logout(context.Background()))
	assert.True(t, ta.auth.clearCalled)
	assert.True(t, ta.auth.loggedOut)
	assert.False(t, ta.isLoggedIn())
	assert.Nil(t, ta.currentWorkspace())
}

func TestLogout_ErrorPropagates(t *testing.T) {
	ta := newTestApp(t, "")
	ta.auth.clearErr = errors.New("clean-fail")
	assert.Error(t, ta.Logout(context.Background()))
}
