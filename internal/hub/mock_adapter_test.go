package hub

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rafal-rumanek/movehub/internal/ble"
)

// mockCharacteristic records writes and supports simulated notifications.
type mockCharacteristic struct {
	mu           sync.Mutex
	writes       [][]byte
	writeErr     error
	subscribeErr error
	callback     func([]byte)
}

func (c *mockCharacteristic) Write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return c.writeErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	c.writes = append(c.writes, cp)
	return nil
}

func (c *mockCharacteristic) Subscribe(cb func([]byte)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subscribeErr != nil {
		return c.subscribeErr
	}
	c.callback = cb
	return nil
}

// SimulateNotification delivers bytes to the subscriber, if any.
func (c *mockCharacteristic) SimulateNotification(data []byte) {
	c.mu.Lock()
	cb := c.callback
	c.mu.Unlock()
	if cb != nil {
		cb(data)
	}
}

func (c *mockCharacteristic) writtenFrames() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.writes))
	copy(out, c.writes)
	return out
}

// mockConnection simulates a BLE connection to a hub.
type mockConnection struct {
	mu             sync.Mutex
	control        *mockCharacteristic
	missingControl bool
	disconnectCb   func()
	disconnected   bool
}

func newMockConnection() *mockConnection {
	return &mockConnection{control: &mockCharacteristic{}}
}

func (c *mockConnection) DiscoverCharacteristic(serviceUUID, charUUID string) (ble.Characteristic, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.missingControl || charUUID != ControlCharacteristicUUID {
		return nil, fmt.Errorf("mock: characteristic %q not found", charUUID)
	}
	return c.control, nil
}

func (c *mockConnection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected = true
	return nil
}

func (c *mockConnection) OnDisconnect(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnectCb = cb
}

// SimulateDisconnect triggers the registered disconnect callback.
func (c *mockConnection) SimulateDisconnect() {
	c.mu.Lock()
	cb := c.disconnectCb
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// mockAdapter streams canned advertisements and hands out one connection.
type mockAdapter struct {
	mu             sync.Mutex
	advertisements []ble.Advertisement
	connection     *mockConnection
	connectErr     error
	connectCount   int
	lastAddress    string
	stop           chan struct{}
}

func newMockAdapter(advs []ble.Advertisement) *mockAdapter {
	return &mockAdapter{
		advertisements: advs,
		connection:     newMockConnection(),
		stop:           make(chan struct{}, 1),
	}
}

func (a *mockAdapter) Enable() error { return nil }

func (a *mockAdapter) Scan(ctx context.Context, _ string, found func(ble.Advertisement)) error {
	for _, adv := range a.advertisements {
		if a.stopRequested() || ctx.Err() != nil {
			return nil
		}
		found(adv)
	}
	select {
	case <-ctx.Done():
	case <-a.stop:
	}
	return nil
}

func (a *mockAdapter) StopScan() error {
	select {
	case a.stop <- struct{}{}:
	default:
	}
	return nil
}

func (a *mockAdapter) stopRequested() bool {
	select {
	case <-a.stop:
		return true
	default:
		return false
	}
}

func (a *mockAdapter) Connect(_ context.Context, address string) (ble.Connection, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.connectCount++
	a.lastAddress = address
	if a.connectErr != nil {
		return nil, a.connectErr
	}
	return a.connection, nil
}

func TestMockAdapterImplementsInterface(t *testing.T) {
	var _ ble.Adapter = (*mockAdapter)(nil)
}

func TestMockConnectionImplementsInterface(t *testing.T) {
	var _ ble.Connection = (*mockConnection)(nil)
}

func TestMockCharacteristicImplementsInterface(t *testing.T) {
	var _ ble.Characteristic = (*mockCharacteristic)(nil)
}
