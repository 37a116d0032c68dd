package normalize

import "strings"

// Transmission is a canonical transmission category.
type Transmission string

const (
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionManual    Transmission = "MANUAL"
	TransmissionCVT       Transmission = "CVT"
	TransmissionUnknown   Transmission = "UNKNOWN"
)

// NormalizeTransmission maps a raw gearbox string to a canonical
// Transmission. Robotized and sequential gearboxes count as automatic.
func NormalizeTransmission(raw string) Transmission {
	if strings.TrimSpace(raw) == "" {
		return TransmissionUnknown
	}
	trans := strings.TrimSpace(FoldAccents(raw))

	switch {
	case containsAny(trans, "automatic", "auto", "dsg", "dct", "robotizzato", "sequenziale"):
		return TransmissionAutomatic
	case containsAny(trans, "manual", "manuale", "meccanico"):
		return TransmissionManual
	case strings.Contains(trans, "cvt"):
		return TransmissionCVT
	}
	return TransmissionUnknown
}
