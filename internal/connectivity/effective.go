package connectivity

import (
	"time"

	"github.com/MKhiriev/go-bus-pass/models"
)

// Round-trip thresholds of the effective connection type buckets.
const (
	slow2GRTT = 2000 * time.Millisecond
	twoGRTT   = 1400 * time.Millisecond
	threeGRTT = 270 * time.Millisecond
)

// ClassifyRTT maps a probe round-trip time to an effective network type.
func ClassifyRTT(rtt time.Duration) models.EffectiveNetworkType {
	switch {
	case rtt >= slow2GRTT:
		return models.NetworkSlow2G
	case rtt >= twoGRTT:
		return models.Network2G
	case rtt >= threeGRTT:
		return models.Network3G
	default:
		return models.Network4G
	}
}
