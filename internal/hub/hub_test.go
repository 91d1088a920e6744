package hub

import (
	"testing"

	"github.com/rafal-rumanek/movehub/internal/ble"
)

func TestMatchesHub(t *testing.T) {
	tests := []struct {
		name string
		adv  ble.Advertisement
		want bool
	}{
		{
			name: "canonical dashed form",
			adv:  ble.Advertisement{ServiceUUIDs: []string{"00001623-1212-efde-1623-785feabcd123"}},
			want: true,
		},
		{
			name: "compact lowercase form",
			adv:  ble.Advertisement{ServiceUUIDs: []string{"000016231212efde1623785feabcd123"}},
			want: true,
		},
		{
			name: "uppercase form",
			adv:  ble.Advertisement{ServiceUUIDs: []string{"00001623-1212-EFDE-1623-785FEABCD123"}},
			want: true,
		},
		{
			name: "foreign service",
			adv:  ble.Advertisement{ServiceUUIDs: []string{"0000180f-0000-1000-8000-00805f9b34fb"}},
			want: false,
		},
		{
			// The match key is the primary (first) service UUID only.
			name: "hub service in second position",
			adv: ble.Advertisement{ServiceUUIDs: []string{
				"0000180f-0000-1000-8000-00805f9b34fb",
				"00001623-1212-efde-1623-785feabcd123",
			}},
			want: false,
		},
		{
			name: "no services",
			adv:  ble.Advertisement{ServiceUUIDs: nil},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesHub(tt.adv); got != tt.want {
				t.Errorf("MatchesHub(%v) = %v, want %v", tt.adv.ServiceUUIDs, got, tt.want)
			}
		})
	}
}

func TestFromAdvertisement(t *testing.T) {
	adv := hubAdvertisement()
	h := fromAdvertisement(adv)
	if h.Address != adv.Address || h.Name != adv.LocalName || h.RSSI != adv.RSSI {
		t.Errorf("fromAdvertisement(%+v) = %+v", adv, h)
	}
}
