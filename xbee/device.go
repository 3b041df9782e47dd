package xbee

import (
	"context"

	"github.com/pkg/errors"
)

// Sender delivers outbound commands to the radio link. Implementations must
// send remote AT writes with apply-changes and encryption enabled; delivery
// is fire and forget, the core never waits for on-device confirmation.
type Sender interface {
	SendRemoteAT(ctx context.Context, cmd RemoteCommand) error
	SendClusterCommand(ctx context.Context, endpointID uint16, commandID uint8) error
}

// PinUpdateFunc receives one endpoint write directive from a decoded sample.
type PinUpdateFunc func(update PinUpdate)

// AnalogFunc receives one analog pin reading from a decoded sample.
type AnalogFunc func(pin int, value uint16)

// Device ties the pure decode, encode and propagate functions to one module
// on the network. It holds no pin state of its own.
type Device struct {
	Addr string

	sender   Sender
	onPin    PinUpdateFunc
	onAnalog AnalogFunc
}

func NewDevice(addr string, sender Sender) *Device {
	return &Device{Addr: addr, sender: sender}
}

// OnPinUpdate registers the listener for digital pin state directives.
func (d *Device) OnPinUpdate(fn PinUpdateFunc) {
	d.onPin = fn
}

// OnAnalogSample registers the listener for analog readings.
func (d *Device) OnAnalogSample(fn AnalogFunc) {
	d.onAnalog = fn
}

// HandleFrame decodes one inbound cluster frame and pushes the resulting pin
// states to the registered listeners. Frames that fail to decode change
// nothing.
func (d *Device) HandleFrame(data []byte) error {
	sample, err := DecodeFrame(data)
	if err != nil {
		return errors.Wrapf(err, "device %s", d.Addr)
	}

	if d.onPin != nil {
		for _, update := range Propagate(sample) {
			d.onPin(update)
		}
	}

	if d.onAnalog != nil {
		for pin := 0; pin < analogPinCount; pin++ {
			if sample.AnalogEnabled[pin] {
				d.onAnalog(pin, sample.AnalogValues[pin])
			}
		}
	}

	return nil
}

// WritePin sets one endpoint's pin output through the sender. Writes that
// the encoder cannot express as a pin command, because the value is not 0 or
// 1 or the endpoint has no pin name, fall through to the generic on/off
// cluster command instead.
func (d *Device) WritePin(ctx context.Context, endpointID uint16, value uint8) error {
	cmd, err := EncodePinCommand(endpointID, value)
	if err == nil {
		return errors.Wrapf(d.sender.SendRemoteAT(ctx, cmd), "remote at write to %s", d.Addr)
	}

	if errors.Is(err, ErrUnsupportedCommand) || errors.Is(err, ErrUnsupportedEndpoint) {
		return errors.Wrapf(d.sender.SendClusterCommand(ctx, endpointID, value),
			"cluster command fallback to %s", d.Addr)
	}

	return err
}
