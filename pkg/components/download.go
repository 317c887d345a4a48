package components

import (
	"fmt"
	"strings"
)

// DownloadFlag is the tri-state download eligibility of a filename under a
// link-map URL. Unknown means the filename should be auto-discovered at
// download time rather than skipped or forced.
type DownloadFlag int

// Download eligibility states.
const (
	DownloadUnknown DownloadFlag = iota // auto-discover at download time
	DownloadYes                         // always download
	DownloadNo                          // never download
)

// String returns the string representation of a DownloadFlag.
func (f DownloadFlag) String() string {
	switch f {
	case DownloadYes:
		return "yes"
	case DownloadNo:
		return "no"
	case DownloadUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so YAML and TOML manifests
// serialize the flag identically.
func (f DownloadFlag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Boolean spellings are
// accepted for manifests written before the tri-state existed.
func (f *DownloadFlag) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "yes", "true":
		*f = DownloadYes
	case "no", "false":
		*f = DownloadNo
	case "unknown", "", "null", "~":
		*f = DownloadUnknown
	default:
		return fmt.Errorf("unrecognized download flag %q", string(text))
	}
	return nil
}
