package xbee

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseFrame(t *testing.T) {
	frame, err := ParseFrame([]byte{0x2A, 0x00, 0x01, 0x02})
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if frame.TSN != 0x2A || frame.CommandID != 0x00 {
		t.Errorf("got header %#02x/%#02x want 0x2a/0x00", frame.TSN, frame.CommandID)
	}
	if len(frame.Payload) != 2 {
		t.Errorf("got payload len %d want 2", len(frame.Payload))
	}

	_, err = ParseFrame([]byte{0x2A})
	if !errors.Is(err, ErrMalformedSample) {
		t.Errorf("got %v want ErrMalformedSample", err)
	}
}

func TestDecodeFrame(t *testing.T) {
	t.Run("io sample command", func(t *testing.T) {
		data := []byte{0x01, CmdIOSample, 0x00, 0x03, 0x00, 0x00, 0x01}
		sample, err := DecodeFrame(data)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		if !sample.DigitalEnabled[0] || !sample.DigitalEnabled[1] {
			t.Error("pins 0 and 1 should be enabled")
		}
		if !sample.DigitalValues[0] {
			t.Error("pin 0 should read high")
		}
	})

	t.Run("misnumbered report is reinterpreted", func(t *testing.T) {
		// whole frame reads as a valid sample: mask 0x0001, no analog
		data := []byte{0x00, 0x01, 0x00, 0x00, 0x01}
		sample, err := DecodeFrame(data)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		if !sample.DigitalEnabled[0] {
			t.Error("pin 0 should be enabled after reinterpretation")
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := DecodeFrame([]byte{0x00, 0x07, 0xFF})
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("got %v want ErrUnknownCommand", err)
		}
		if errors.Is(err, ErrMalformedSample) {
			t.Error("unknown command must not read as malformed")
		}
	})

	t.Run("malformed io sample payload", func(t *testing.T) {
		_, err := DecodeFrame([]byte{0x00, CmdIOSample, 0x00, 0x03})
		if !errors.Is(err, ErrMalformedSample) {
			t.Errorf("got %v want ErrMalformedSample", err)
		}
	})
}
