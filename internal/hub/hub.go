// Package hub implements the Move Hub connection lifecycle: discovery,
// connect, control-characteristic subscription, and command writes. The BLE
// transport itself is supplied through the ble.Adapter interface.
package hub

import (
	"strings"

	"github.com/rafal-rumanek/movehub/internal/ble"
)

// LEGO hub GATT identifiers. All motor and LED commands are written to the
// single control characteristic; the same characteristic notifies telemetry.
const (
	ServiceUUID               = "00001623-1212-efde-1623-785feabcd123"
	ControlCharacteristicUUID = "00001624-1212-efde-1623-785feabcd123"
)

// Hub identifies a discovered Move Hub. The value is immutable; re-discovery
// produces a fresh one. On macOS the Address is the CoreBluetooth peripheral
// UUID rather than a MAC.
type Hub struct {
	Address string
	Name    string
	RSSI    int
}

func fromAdvertisement(adv ble.Advertisement) Hub {
	return Hub{
		Address: adv.Address,
		Name:    adv.LocalName,
		RSSI:    adv.RSSI,
	}
}

// MatchesHub reports whether an advertisement belongs to a Move Hub: the
// first advertised service UUID must be the LEGO hub service. UUIDs compare
// equal regardless of case or dashes, so both the canonical dashed form and
// the compact form some stacks report will match.
func MatchesHub(adv ble.Advertisement) bool {
	if len(adv.ServiceUUIDs) == 0 {
		return false
	}
	return normalizeUUID(adv.ServiceUUIDs[0]) == normalizeUUID(ServiceUUID)
}

func normalizeUUID(u string) string {
	return strings.ToLower(strings.ReplaceAll(u, "-", ""))
}
