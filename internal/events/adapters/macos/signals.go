// Package macos samples the frontmost application, the active Chrome tab
// and the HID idle time through osascript and ioreg.
package macos

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"activity-tracker/internal/events/core/ports"
)

const frontmostAppScript = `tell application "System Events" to get name of first application process whose frontmost is true`

// Iterates Chrome windows in z-order and picks the first non-minimized one,
// which is more reliable than "front window" when several windows are open.
const chromeTabScript = `tell application "Google Chrome"
  repeat with w in windows
    if not minimized of w then
      return (title of active tab of w) & " | " & (URL of active tab of w)
    end if
  end repeat
end tell`

type SignalSource struct{}

func NewSignalSource() *SignalSource {
	return &SignalSource{}
}

var _ ports.SignalSourcePort = (*SignalSource)(nil)

func (s *SignalSource) FrontmostApp(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", frontmostAppScript).Output()
	if err != nil {
		return "", fmt.Errorf("%w: frontmost app: %v", ports.ErrSignalUnavailable, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (s *SignalSource) FrontmostTabTitle(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", chromeTabScript).Output()
	if err != nil {
		return "", fmt.Errorf("%w: chrome tab: %v", ports.ErrSignalUnavailable, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// IdleSeconds reads HIDIdleTime (nanoseconds) from the IOHIDSystem registry.
func (s *SignalSource) IdleSeconds(ctx context.Context) (float64, error) {
	out, err := exec.CommandContext(ctx, "ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, fmt.Errorf("%w: idle time: %v", ports.ErrSignalUnavailable, err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		_, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		idleNs, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: idle time: %v", ports.ErrSignalUnavailable, err)
		}
		return float64(idleNs) / 1e9, nil
	}
	return 0, fmt.Errorf("%w: idle time: HIDIdleTime not reported", ports.ErrSignalUnavailable)
}
