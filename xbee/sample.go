package xbee

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const ioSampleHeaderLen = 5

// IOSample is one decoded periodic report from the module: which pins are
// configured for sampling and what was read from them. Digital fields always
// carry 13 entries and analog fields 8, no matter how many bits were present
// on the wire; analog values of pins that did not report are zero.
type IOSample struct {
	DigitalEnabled [digitalPinCount]bool
	DigitalValues  [digitalPinCount]bool
	AnalogEnabled  [analogPinCount]bool
	AnalogValues   [analogPinCount]uint16
}

// maskBits expands the low count bits of mask into per-pin booleans, bit i
// belonging to pin i. The module documentation enumerates mask bits from the
// high end down; indexing from the low end is what that enumeration nets out
// to once un-reversed, so pin 0 always sits at bit 0 here.
func maskBits(mask uint16, count int) []bool {
	bits := make([]bool, count)
	for i := range bits {
		bits[i] = mask>>uint(i)&1 == 1
	}
	return bits
}

// ParseIOSample decodes an io sample report buffer.
//
// Wire layout, big-endian: 16-bit digital enable mask (13 meaningful bits),
// 8-bit analog enable mask, 16-bit digital sample word, then one 16-bit word
// per enabled analog pin in ascending pin order. Decoding is all or nothing;
// a buffer shorter than its own masks imply fails with ErrMalformedSample.
func ParseIOSample(buf []byte) (sample IOSample, err error) {
	if len(buf) < ioSampleHeaderLen {
		err = errors.Wrapf(ErrMalformedSample, "buffer too short: %d bytes", len(buf))
		return
	}

	digitalMask := binary.BigEndian.Uint16(buf[0:2])
	analogMask := uint16(buf[2])
	digitalWord := binary.BigEndian.Uint16(buf[3:5])

	copy(sample.DigitalEnabled[:], maskBits(digitalMask, digitalPinCount))
	copy(sample.DigitalValues[:], maskBits(digitalWord, digitalPinCount))
	copy(sample.AnalogEnabled[:], maskBits(analogMask, analogPinCount))

	need := ioSampleHeaderLen
	for _, enabled := range sample.AnalogEnabled {
		if enabled {
			need += 2
		}
	}
	if len(buf) < need {
		err = errors.Wrapf(ErrMalformedSample,
			"analog mask %#02x implies %d bytes, got %d", analogMask, need, len(buf))
		sample = IOSample{}
		return
	}

	offset := ioSampleHeaderLen
	for pin, enabled := range sample.AnalogEnabled {
		if !enabled {
			continue
		}
		sample.AnalogValues[pin] = binary.BigEndian.Uint16(buf[offset : offset+2])
		offset += 2
	}

	return
}
