// Package fingerprint collects the device metadata bundle that is merged into
// the final trip submission for backend auditing.
package fingerprint

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// appVersion and buildNumber identify this client build in submissions.
// Overridden at release time via -ldflags.
var (
	appVersion  = "1.0.0"
	buildNumber = "1"
)

// Fingerprint is the flat key/value device bundle. Keys match what the
// submission endpoint already receives from the mobile client.
type Fingerprint struct {
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	DeviceID      string `json:"deviceId"`
	SystemName    string `json:"systemName"`
	SystemVersion string `json:"systemVersion"`
	UniqueID      string `json:"uniqueId"`
	Manufacturer  string `json:"manufacturer"`
	IsEmulator    bool   `json:"isEmulator"`
	AppVersion    string `json:"appVersion"`
	BuildNumber   string `json:"buildNumber"`
	DeviceName    string `json:"deviceName"`
}

// Fields returns the bundle as a flat map ready to be merged verbatim into a
// submission payload.
func (f Fingerprint) Fields() map[string]any {
	return map[string]any{
		"brand":         f.Brand,
		"model":         f.Model,
		"deviceId":      f.DeviceID,
		"systemName":    f.SystemName,
		"systemVersion": f.SystemVersion,
		"uniqueId":      f.UniqueID,
		"manufacturer":  f.Manufacturer,
		"isEmulator":    f.IsEmulator,
		"appVersion":    f.AppVersion,
		"buildNumber":   f.BuildNumber,
		"deviceName":    f.DeviceName,
	}
}

// Collector produces the device fingerprint. The flow depends on this
// interface so tests can substitute a fixed bundle or a failing lookup.
type Collector interface {
	Collect() (Fingerprint, error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func() (Fingerprint, error)

// Collect calls f.
func (f CollectorFunc) Collect() (Fingerprint, error) { return f() }

// Static returns a Collector that always yields fp. Intended for tests.
func Static(fp Fingerprint) Collector {
	return CollectorFunc(func() (Fingerprint, error) { return fp, nil })
}

// Host is a Collector reading what the local OS exposes: hostname, GOOS/GOARCH,
// kernel version where available, and the machine ID. On a phone these values
// come from the device-info API; on a host they come from the filesystem.
type Host struct{}

// NewHost returns a Host collector.
func NewHost() Host { return Host{} }

// Collect assembles the fingerprint. Missing sources (no machine-id file, no
// kernel version) leave their field empty rather than failing; an error is
// returned only when not even a hostname can be determined.
func (Host) Collect() (Fingerprint, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return Fingerprint{}, fmt.Errorf("fingerprint.Host.Collect: %w", err)
	}

	fp := Fingerprint{
		Brand:         runtime.GOOS,
		Model:         runtime.GOARCH,
		DeviceID:      hostname,
		SystemName:    runtime.GOOS,
		SystemVersion: kernelVersion(),
		UniqueID:      machineID(),
		Manufacturer:  runtime.GOOS,
		IsEmulator:    false,
		AppVersion:    appVersion,
		BuildNumber:   buildNumber,
		DeviceName:    hostname,
	}
	return fp, nil
}

// machineID reads the stable per-install identifier Linux systems expose.
// Empty on platforms without one.
func machineID() string {
	for _, path := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		if data, err := os.ReadFile(path); err == nil {
			if id := strings.TrimSpace(string(data)); id != "" {
				return id
			}
		}
	}
	return ""
}

// kernelVersion reads the running kernel release on Linux. Empty elsewhere.
func kernelVersion() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

var _ Collector = Host{}
