package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

type Visibility string

const (
	VisibilityForeground Visibility = "foreground"
	VisibilityBackground Visibility = "background"
)

type Permission string

const (
	PermissionUndetermined Permission = "undetermined"
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
)

// Notification is one OS-level alert.
type Notification struct {
	Title  string
	Body   string
	Silent bool
}

// Notifier delivers OS-level notifications.
type Notifier interface {
	Send(Notification) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Notification) error { return nil }

// ExecNotifier shells out to the platform notification command.
type ExecNotifier struct{}

func (ExecNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		args := []string{n.Title, n.Body}
		if n.Silent {
			args = append([]string{"--hint=boolean:suppress-sound:true"}, args...)
		}
		return exec.Command("notify-send", args...).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// Available reports whether the platform notification command exists.
// Used as the permission probe at startup.
func (ExecNotifier) Available() bool {
	switch runtime.GOOS {
	case "linux":
		_, err := exec.LookPath("notify-send")
		return err == nil
	case "darwin":
		_, err := exec.LookPath("osascript")
		return err == nil
	default:
		return false
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
