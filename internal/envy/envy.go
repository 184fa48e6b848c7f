package envy

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ApplyResult is the outcome of the last envycontrol invocation.
type ApplyResult struct {
	Success bool
	Mode    Mode // the mode that was requested; valid only on success of a switch
	Message string
}

// Switch applies a mode change through envycontrol. Every failure shape
// (tool missing, permission denied, non-zero exit) resolves to a failed
// ApplyResult so the UI can display it; this never panics or returns an
// error.
func Switch(opts SwitchOptions) ApplyResult {
	if _, err := runPrivileged(SwitchArgs(opts)); err != nil {
		return ApplyResult{Message: "Failed to switch mode: " + err.Error()}
	}
	return ApplyResult{
		Success: true,
		Mode:    opts.Mode,
		Message: fmt.Sprintf("Switched to %s mode.", opts.Mode.Label()),
	}
}

// Reset reverts envycontrol's changes to the default configuration.
func Reset() ApplyResult {
	if _, err := runPrivileged(ResetArgs()); err != nil {
		return ApplyResult{Message: "Failed to reset: " + err.Error()}
	}
	return ApplyResult{Success: true, Message: "Reset to default configuration."}
}

// runPrivileged runs envycontrol through pkexec. envycontrol prompts for
// confirmation on stdin, hence the yes pipe.
func runPrivileged(args []string) (string, error) {
	script := "yes | envycontrol " + strings.Join(args, " ")
	return DefaultRunner.Run("pkexec", "sh", "-c", script)
}

// QueryMode asks envycontrol which mode is currently configured. The
// second return is false when the mode could not be determined.
func QueryMode() (Mode, bool) {
	out, err := DefaultRunner.Run("envycontrol", "--query")
	if err != nil {
		return ModeIntegrated, false
	}

	stdout := strings.ToLower(out)
	switch {
	case strings.Contains(stdout, "integrated"):
		return ModeIntegrated, true
	case strings.Contains(stdout, "hybrid"):
		return ModeHybrid, true
	case strings.Contains(stdout, "nvidia"):
		return ModeNvidia, true
	}
	return ModeIntegrated, false
}

// IsInstalled reports whether envycontrol is on PATH.
func IsInstalled() bool {
	_, err := DefaultRunner.Run("which", "envycontrol")
	return err == nil
}

// Reboot asks systemd to restart the machine.
func Reboot() error {
	_, err := DefaultRunner.Run("systemctl", "reboot")
	return err
}

// GPUInfo is a snapshot of nvidia-smi telemetry shown in the header.
type GPUInfo struct {
	Name        string
	Temperature string
	MemoryUsed  string
	MemoryTotal string
}

// MemoryDisplay formats the memory columns for display.
func (g GPUInfo) MemoryDisplay() string {
	return g.MemoryUsed + " / " + g.MemoryTotal + " MiB"
}

// QueryGPUInfo reads one line of CSV from nvidia-smi. Returns false when
// the tool is unavailable or its output does not parse; callers treat
// that as "no telemetry", not an error.
func QueryGPUInfo() (GPUInfo, bool) {
	out, err := DefaultRunner.Run("nvidia-smi",
		"--query-gpu=name,temperature.gpu,memory.used,memory.total",
		"--format=csv,noheader,nounits")
	if err != nil {
		return GPUInfo{}, false
	}

	parts := strings.Split(strings.TrimSpace(out), ",")
	if len(parts) < 4 {
		return GPUInfo{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return GPUInfo{
		Name:        parts[0],
		Temperature: parts[1] + "°C",
		MemoryUsed:  parts[2],
		MemoryTotal: parts[3],
	}, true
}

// CopyToClipboard copies text to the system clipboard
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
