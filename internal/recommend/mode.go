package recommend

import (
	"fmt"
	"strings"
)

// ProcessingMode selects where recommendations are computed.
type ProcessingMode int

const (
	// OnDevice uses only the local engine.
	OnDevice ProcessingMode = iota
	// Cloud uses only the cloud suggester.
	Cloud
	// Hybrid uses the local engine and adds any new cloud suggestions.
	Hybrid
)

var modeNames = map[ProcessingMode]string{
	OnDevice: "on-device",
	Cloud:    "cloud",
	Hybrid:   "hybrid",
}

func (m ProcessingMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ProcessingMode(%d)", int(m))
}

// ParseProcessingMode parses a mode name. "ondevice" and "local" are accepted for OnDevice.
func ParseProcessingMode(name string) (ProcessingMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "on-device", "ondevice", "on_device", "local", "":
		return OnDevice, nil
	case "cloud":
		return Cloud, nil
	case "hybrid":
		return Hybrid, nil
	default:
		return OnDevice, fmt.Errorf("unknown processing mode: %s (valid: on-device, cloud, hybrid)", name)
	}
}

// Set implements pflag.Value.
func (m *ProcessingMode) Set(value string) error {
	parsed, err := ParseProcessingMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *ProcessingMode) Type() string {
	return "mode"
}
