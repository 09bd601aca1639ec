// Package notifier forwards notifications to the companion tray application
// over its localhost webhook. The tray app advertises its port and shared
// secret through a lockfile; the process behind the lockfile is validated
// before anything is sent.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/trackhabit/trackhabit/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// Notify sends a desktop notification through the tray app. Returns an error
// when the tray app is not running or rejects the request; callers treat
// that as best-effort and only log it.
func (n *Notifier) Notify(text string) error {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return fmt.Errorf("failed to get user config dir: %w", err)
	}

	lockfilePath := filepath.Join(configDir, constants.TrayAppIdentifier, constants.NotifierLockfileName)
	port, secret, err := readLockfile(lockfilePath)
	if err != nil {
		return err
	}

	return sendNotification(port, secret, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// readLockfile parses "port|pid|secret" and verifies the pid belongs to a
// running tray process.
func readLockfile(path string) (string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.New("trackhabit-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port, pidStr, secret := parts[0], parts[1], parts[2]
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return "", "", errors.New("invalid port in lockfile")
	}
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("trackhabit-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not trackhabit-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func sendNotification(port, secret string, payload WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://127.0.0.1:%s", port), bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-TrackHabit-Secret", secret)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
