package hub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rafal-rumanek/movehub/internal/ble"
	"github.com/rafal-rumanek/movehub/internal/protocol"
)

// State is the session's position in the discovery-to-disconnect lifecycle.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected // transport link up, control characteristic not yet subscribed
	StateSubscribing
	StateReady
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateSubscribing:
		return "subscribing"
	case StateReady:
		return "ready"
	case StateDisconnected:
		return "disconnected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session owns one discovery-to-disconnect lifecycle with a Move Hub.
// Commands are valid only once the session is Ready, which requires both the
// transport connect and the control-characteristic subscribe to succeed.
// A Session is not reusable across hubs but may reconnect after a disconnect.
type Session struct {
	adapter ble.Adapter
	events  Events

	mu      sync.Mutex
	state   State
	hub     Hub
	conn    ble.Connection
	control ble.Characteristic

	// writeMu serializes transport writes so at most one is outstanding.
	writeMu sync.Mutex
}

// NewSession creates an idle session on the given transport.
func NewSession(adapter ble.Adapter, events Events) *Session {
	return &Session{adapter: adapter, events: events}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Hub returns the hub this session last connected (or tried to connect) to.
func (s *Session) Hub() Hub {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hub
}

// Discover scans until the first advertising Move Hub appears, then connects
// to it. The scan runs until a hub is matched or ctx ends; with no timeout
// on ctx a hubless room blocks forever, so callers supply one.
func (s *Session) Discover(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle && s.state != StateDisconnected {
		st := s.state
		s.mu.Unlock()
		return &InvalidStateError{Op: "discover", State: st}
	}
	s.mu.Unlock()

	var (
		foundMu sync.Mutex
		found   *Hub
	)
	s.emitScanning(true)
	err := s.adapter.Scan(ctx, ServiceUUID, func(adv ble.Advertisement) {
		if !MatchesHub(adv) {
			return
		}
		foundMu.Lock()
		if found != nil {
			foundMu.Unlock()
			return
		}
		h := fromAdvertisement(adv)
		found = &h
		foundMu.Unlock()

		s.emitHubFound(h)
		if err := s.adapter.StopScan(); err != nil {
			slog.Warn("hub: stop scan", "error", err)
		}
	})
	s.emitScanning(false)
	if err != nil {
		werr := fmt.Errorf("hub: scan: %w", err)
		s.emitError(werr)
		return werr
	}

	foundMu.Lock()
	h := found
	foundMu.Unlock()
	if h == nil {
		return ErrNoHubFound
	}
	return s.Connect(ctx, *h)
}

// Connect establishes the transport connection to a discovered hub, locates
// the control characteristic, and subscribes to its notifications. The
// session reaches Ready (and fires Events.Connected) only after both steps
// succeed. Valid from Idle or Disconnected.
func (s *Session) Connect(ctx context.Context, h Hub) error {
	s.mu.Lock()
	if s.state != StateIdle && s.state != StateDisconnected {
		st := s.state
		s.mu.Unlock()
		return &InvalidStateError{Op: "connect", State: st}
	}
	s.state = StateConnecting
	s.hub = h
	s.mu.Unlock()

	conn, err := s.adapter.Connect(ctx, h.Address)
	if err != nil {
		s.setState(StateDisconnected)
		werr := fmt.Errorf("hub: connect %s: %w", h.Address, err)
		s.emitError(werr)
		return werr
	}

	s.mu.Lock()
	s.conn = conn
	s.state = StateConnected
	s.mu.Unlock()
	conn.OnDisconnect(s.transportDisconnected)

	control, err := conn.DiscoverCharacteristic(ServiceUUID, ControlCharacteristicUUID)
	if err != nil {
		// Non-fatal: the session stays connected, just without a write path.
		werr := fmt.Errorf("hub: discover control characteristic: %w", err)
		slog.Warn("hub: control characteristic unavailable", "hub", h.Address, "error", err)
		s.emitError(werr)
		return werr
	}

	s.mu.Lock()
	s.control = control
	s.state = StateSubscribing
	s.mu.Unlock()

	if err := control.Subscribe(s.notified); err != nil {
		// The session keeps the characteristic reference but never reaches
		// Ready. No automatic retry.
		werr := fmt.Errorf("hub: subscribe: %w", err)
		s.emitError(werr)
		return werr
	}

	s.setState(StateReady)
	s.emitConnected()
	return nil
}

// Disconnect tears down the transport connection and fires
// Events.Disconnected. A session with no connection is left untouched.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	conn := s.conn
	if conn == nil {
		s.mu.Unlock()
		return nil
	}
	s.state = StateDisconnected
	s.conn = nil
	s.control = nil
	s.mu.Unlock()

	err := conn.Disconnect()
	s.emitDisconnected()
	if err != nil {
		return fmt.Errorf("hub: disconnect: %w", err)
	}
	return nil
}

// RunMotorFor runs the motor on the named port for ms milliseconds at the
// given duty cycle (sign selects direction). Durations whose scaled value
// exceeds 16 bits wrap on the wire; see protocol.EncodeMotorTime.
func (s *Session) RunMotorFor(port string, ms int, duty int) error {
	code, err := protocol.ResolvePort(port)
	if err != nil {
		return err
	}
	if err := protocol.ValidateDutyCycle(duty); err != nil {
		return err
	}
	if ms < 0 {
		return fmt.Errorf("hub: negative duration %d ms", ms)
	}
	return s.write(protocol.EncodeMotorTime(code, ms, duty))
}

// RunMotorToAngle turns the motor on the named port to the given angle in
// encoder units at the given duty cycle.
func (s *Session) RunMotorToAngle(port string, angle int, duty int) error {
	code, err := protocol.ResolvePort(port)
	if err != nil {
		return err
	}
	if err := protocol.ValidateDutyCycle(duty); err != nil {
		return err
	}
	if angle < 0 {
		return fmt.Errorf("hub: negative angle %d", angle)
	}
	return s.write(protocol.EncodeMotorAngle(code, angle, duty))
}

// SetLED sets the hub's LED to a named color from the fixed palette.
func (s *Session) SetLED(color string) error {
	frame, err := protocol.EncodeLED(color)
	if err != nil {
		return err
	}
	return s.write(frame)
}

// SetLEDOn switches the LED to white (true) or off (false).
func (s *Session) SetLEDOn(on bool) error {
	return s.write(protocol.EncodeLEDState(on))
}

// write sends one encoded frame to the control characteristic. Valid only in
// Ready. Write failures are returned to the caller of the command that
// produced the frame; the session never retries.
func (s *Session) write(frame []byte) error {
	s.mu.Lock()
	if s.state != StateReady {
		st := s.state
		s.mu.Unlock()
		return &InvalidStateError{Op: "write", State: st}
	}
	control := s.control
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := control.Write(frame); err != nil {
		return fmt.Errorf("hub: write: %w", err)
	}
	return nil
}

// notified forwards raw notification bytes to consumers without decoding.
// Notifications arriving after the session disconnected are dropped.
func (s *Session) notified(data []byte) {
	s.mu.Lock()
	gone := s.state == StateDisconnected
	s.mu.Unlock()
	if gone {
		return
	}
	s.emitData(data)
}

// transportDisconnected handles a link drop reported by the transport.
// Late or duplicate callbacks after the session already left the connection
// are ignored so post-disconnect completions cannot mutate state.
func (s *Session) transportDisconnected() {
	s.mu.Lock()
	if s.conn == nil {
		s.mu.Unlock()
		return
	}
	s.state = StateDisconnected
	s.conn = nil
	s.control = nil
	s.mu.Unlock()
	s.emitDisconnected()
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
