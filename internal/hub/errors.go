package hub

import (
	"errors"
	"fmt"
)

// ErrNoHubFound is returned when a scan ends without seeing a Move Hub.
var ErrNoHubFound = errors.New("hub: no hub found")

// InvalidStateError reports an operation attempted in a session state that
// does not permit it, such as writing a command before the session is Ready.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("hub: %s not valid in state %s", e.Op, e.State)
}
