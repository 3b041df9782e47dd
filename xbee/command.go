package xbee

import "github.com/pkg/errors"

// RemoteCommand is one outbound remote configuration command: set the named
// pin high or low. The transport applies the fixed apply-changes and
// encryption parameters when it puts the command on the link.
type RemoteCommand struct {
	PinName string
	Param   byte
}

// EncodePinCommand maps an on/off write for an endpoint onto the module's
// remote configuration command. Values other than 0 and 1 are not pin writes
// and fail with ErrUnsupportedCommand so the caller can fall through to the
// generic on/off cluster path; endpoints without a pin name fail with
// ErrUnsupportedEndpoint.
func EncodePinCommand(endpointID uint16, value uint8) (cmd RemoteCommand, err error) {
	pinName, found := PinNames[endpointID]
	if !found {
		err = errors.Wrapf(ErrUnsupportedEndpoint, "endpoint %#04x", endpointID)
		return
	}

	switch value {
	case 0:
		cmd = RemoteCommand{PinName: pinName, Param: PinCmdLow}
	case 1:
		cmd = RemoteCommand{PinName: pinName, Param: PinCmdHigh}
	default:
		err = errors.Wrapf(ErrUnsupportedCommand, "value %d", value)
	}

	return
}
