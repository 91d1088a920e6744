package hub

// Events carries the session's lifecycle and data callbacks. Any field may
// be nil. Callbacks are invoked synchronously from the session; long-running
// handlers should hand off to their own goroutine.
type Events struct {
	// ScanningChanged fires when discovery starts (true) and ends (false).
	ScanningChanged func(scanning bool)
	// HubFound fires once per discovery for the matched hub.
	HubFound func(hub Hub)
	// Connected fires when the session reaches Ready.
	Connected func()
	// Disconnected fires when the transport connection ends, whether
	// requested or dropped by the peer.
	Disconnected func()
	// Error surfaces transport-layer failures.
	Error func(err error)
	// DataReceived passes through raw notification bytes, undecoded.
	DataReceived func(data []byte)
}

func (s *Session) emitScanning(scanning bool) {
	if s.events.ScanningChanged != nil {
		s.events.ScanningChanged(scanning)
	}
}

func (s *Session) emitHubFound(h Hub) {
	if s.events.HubFound != nil {
		s.events.HubFound(h)
	}
}

func (s *Session) emitConnected() {
	if s.events.Connected != nil {
		s.events.Connected()
	}
}

func (s *Session) emitDisconnected() {
	if s.events.Disconnected != nil {
		s.events.Disconnected()
	}
}

func (s *Session) emitError(err error) {
	if s.events.Error != nil {
		s.events.Error(err)
	}
}

func (s *Session) emitData(data []byte) {
	if s.events.DataReceived != nil {
		s.events.DataReceived(data)
	}
}
