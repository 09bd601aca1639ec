package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/trackhabit/trackhabit/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func withMockProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	t.Cleanup(func() { findProcessFunc = old })
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: executable}, nil
	}
}

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.NotifierLockfileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLockfile(t *testing.T) {
	withMockProcess(t, "trackhabit-tray")

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "4477|1234|s3cret", false},
		{"missing fields", "4477|1234", true},
		{"too many fields", "4477|1234|s3cret|extra", true},
		{"non-numeric port", "abc|1234|s3cret", true},
		{"port out of range", "70000|1234|s3cret", true},
		{"empty secret", "4477|1234| ", true},
		{"non-numeric pid", "4477|abc|s3cret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLockfile(t, tt.content)
			port, secret, err := readLockfile(path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("readLockfile: %v", err)
			}
			if port != "4477" || secret != "s3cret" {
				t.Errorf("port, secret = %q, %q", port, secret)
			}
		})
	}
}

func TestReadLockfileMissing(t *testing.T) {
	_, _, err := readLockfile(filepath.Join(t.TempDir(), "nope.lock"))
	if err == nil {
		t.Error("expected error for missing lockfile")
	}
}

func TestReadLockfileWrongProcess(t *testing.T) {
	withMockProcess(t, "some-other-binary")

	path := writeLockfile(t, "4477|1234|s3cret")
	if _, _, err := readLockfile(path); err == nil {
		t.Error("pid belonging to a foreign process should be rejected")
	}
}

func TestNotifyEndToEnd(t *testing.T) {
	var gotSecret string
	var gotPayload WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-TrackHabit-Secret")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	withMockProcess(t, "trackhabit-tray")

	configDir := t.TempDir()
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lockfile := fmt.Sprintf("%s|1234|s3cret", u.Port())
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lockfile), 0644); err != nil {
		t.Fatal(err)
	}

	oldConfigDir := userConfigDirFunc
	t.Cleanup(func() { userConfigDirFunc = oldConfigDir })
	userConfigDirFunc = func() (string, error) { return configDir, nil }

	n := New()
	if err := n.Notify("Parabéns! +10 XP ganhos! 🎉"); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if gotSecret != "s3cret" {
		t.Errorf("secret header = %q", gotSecret)
	}
	if gotPayload.Text != "Parabéns! +10 XP ganhos! 🎉" {
		t.Errorf("payload text = %q", gotPayload.Text)
	}
	if gotPayload.DurationMs != constants.NotificationDurationMs {
		t.Errorf("duration = %d", gotPayload.DurationMs)
	}
}

func TestSendNotificationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusForbidden)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	if err := sendNotification(u.Port(), "wrong", WebhookPayload{Text: "hi"}); err == nil {
		t.Error("expected error for rejected notification")
	}
}
