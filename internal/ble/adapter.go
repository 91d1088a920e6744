// Package ble abstracts the Bluetooth Low Energy transport used to reach a
// Move Hub. The hub session only needs scan, connect, characteristic
// discovery, write, and notification subscribe; everything else (pairing,
// bonding, GATT server) is out of scope.
package ble

import "context"

// Advertisement is one advertisement record seen during a scan.
type Advertisement struct {
	Address      string
	LocalName    string
	RSSI         int
	ServiceUUIDs []string // advertised service UUIDs, primary first
}

// Characteristic represents a BLE GATT characteristic.
type Characteristic interface {
	// Write sends data to the characteristic.
	Write(data []byte) error
	// Subscribe registers a callback for notifications on this characteristic.
	Subscribe(callback func(data []byte)) error
}

// Connection represents an active BLE connection to a peripheral.
type Connection interface {
	// DiscoverCharacteristic finds a characteristic by UUID within a service.
	DiscoverCharacteristic(serviceUUID, charUUID string) (Characteristic, error)
	// Disconnect terminates the connection.
	Disconnect() error
	// OnDisconnect registers a callback invoked when the connection drops.
	OnDisconnect(callback func())
}

// Adapter abstracts the BLE hardware adapter for testing.
type Adapter interface {
	// Enable powers on the BLE adapter.
	Enable() error
	// Scan streams advertisements for peripherals advertising the given
	// service UUID. It blocks until ctx is cancelled or StopScan is called.
	Scan(ctx context.Context, serviceUUID string, found func(Advertisement)) error
	// StopScan ends an in-progress Scan.
	StopScan() error
	// Connect establishes a connection to the peripheral at the given address.
	Connect(ctx context.Context, address string) (Connection, error)
}
