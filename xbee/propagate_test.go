package xbee

import "testing"

func TestPropagate(t *testing.T) {
	t.Run("single enabled pin", func(t *testing.T) {
		sample := IOSample{}
		sample.DigitalEnabled[10] = true
		sample.DigitalValues[10] = true

		updates := Propagate(sample)
		if len(updates) != 1 {
			t.Fatalf("got %d updates want 1", len(updates))
		}
		if updates[0].Endpoint != 0xDA || updates[0].Value != 1 {
			t.Errorf("got %+v want {0xDA 1}", updates[0])
		}
	})

	t.Run("unmapped pins are skipped", func(t *testing.T) {
		sample := IOSample{}
		sample.DigitalEnabled[6] = true
		sample.DigitalValues[6] = true
		sample.DigitalEnabled[7] = true

		updates := Propagate(sample)
		if len(updates) != 0 {
			t.Errorf("got %d updates want 0: %v", len(updates), updates)
		}
	})

	t.Run("ascending pin order", func(t *testing.T) {
		sample := IOSample{}
		sample.DigitalEnabled[12] = true
		sample.DigitalEnabled[0] = true
		sample.DigitalValues[0] = true
		sample.DigitalEnabled[3] = true

		updates := Propagate(sample)
		want := []PinUpdate{{0xD0, 1}, {0xD3, 0}, {0xDC, 0}}
		if len(updates) != len(want) {
			t.Fatalf("got %d updates want %d", len(updates), len(want))
		}
		for i, update := range updates {
			if update != want[i] {
				t.Errorf("update [%d] got %+v want %+v", i, update, want[i])
			}
		}
	})

	t.Run("disabled pins emit nothing", func(t *testing.T) {
		sample := IOSample{}
		sample.DigitalValues[0] = true

		if updates := Propagate(sample); len(updates) != 0 {
			t.Errorf("got %d updates want 0", len(updates))
		}
	})
}
