package xbee

import "github.com/pkg/errors"

// CmdIOSample is the single cluster command the module emits.
const CmdIOSample = 0x00

// Frame is one inbound cluster frame: transaction sequence number, command
// id, payload.
type Frame struct {
	TSN       uint8
	CommandID uint8
	Payload   []byte
}

// ParseFrame splits the frame header off an inbound buffer. The payload
// aliases data, valid for the duration of one dispatch.
func ParseFrame(data []byte) (frame Frame, err error) {
	if len(data) < 2 {
		err = errors.Wrapf(ErrMalformedSample, "frame too short: %d bytes", len(data))
		return
	}

	frame.TSN = data[0]
	frame.CommandID = data[1]
	frame.Payload = data[2:]
	return
}

// DecodeFrame routes an inbound cluster frame to the io sample decoder.
//
// The module misnumbers some reports: sample data can arrive under an
// arbitrary command id, with what should be the tsn and command id actually
// being the first two mask bytes. A frame with an unknown id therefore gets
// one reinterpretation attempt over the full frame bytes; only when that
// fails too is it rejected, as ErrUnknownCommand rather than
// ErrMalformedSample, so the host can log and drop it.
func DecodeFrame(data []byte) (sample IOSample, err error) {
	frame, err := ParseFrame(data)
	if err != nil {
		return
	}

	if frame.CommandID == CmdIOSample {
		return ParseIOSample(frame.Payload)
	}

	repacked, repackErr := ParseIOSample(data)
	if repackErr == nil {
		sample = repacked
		return
	}

	err = errors.Wrapf(ErrUnknownCommand, "command %#02x", frame.CommandID)
	return
}
