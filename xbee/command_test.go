package xbee

import (
	"testing"

	"github.com/pkg/errors"
)

func TestEncodePinCommand(t *testing.T) {
	t.Run("set high", func(t *testing.T) {
		cmd, err := EncodePinCommand(0xD0, 1)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		if cmd.PinName != "D0" || cmd.Param != PinCmdHigh {
			t.Errorf("got %+v want {D0 %#02x}", cmd, PinCmdHigh)
		}
	})

	t.Run("set low", func(t *testing.T) {
		cmd, err := EncodePinCommand(0xD0, 0)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		if cmd.PinName != "D0" || cmd.Param != PinCmdLow {
			t.Errorf("got %+v want {D0 %#02x}", cmd, PinCmdLow)
		}
	})

	t.Run("pwm pins use the P names", func(t *testing.T) {
		cmd, err := EncodePinCommand(0xDA, 1)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		if cmd.PinName != "P0" {
			t.Errorf("got pin name %s want P0", cmd.PinName)
		}
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		_, err := EncodePinCommand(0x9999, 1)
		if !errors.Is(err, ErrUnsupportedEndpoint) {
			t.Errorf("got %v want ErrUnsupportedEndpoint", err)
		}
	})

	t.Run("non pin value falls through", func(t *testing.T) {
		_, err := EncodePinCommand(0xD0, 2)
		if !errors.Is(err, ErrUnsupportedCommand) {
			t.Errorf("got %v want ErrUnsupportedCommand", err)
		}
	})
}
