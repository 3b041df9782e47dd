package zhakit

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/brutella/hap/accessory"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/jurriaan/zhakit/xbee"
)

const writePinTimeout = 5 * time.Second

// PinSwitch exposes one mapped digital pin endpoint as an on/off switch. The
// device reports drive its state; a remote HomeKit update writes the pin
// back through the device.
type PinSwitch struct {
	Name           string
	Endpoint       uint16
	State          bool
	DisableHomekit bool

	device *xbee.Device
	hk     *accessory.Switch

	lock sync.Mutex
}

func (ps *PinSwitch) GetUniqueId() uint64 {
	hash := fnv.New64()
	hash.Write([]byte("PinSwitch_" + ps.Name))
	return hash.Sum64()
}

func (ps *PinSwitch) Init(device *xbee.Device) error {
	pinName, found := xbee.PinNames[ps.Endpoint]
	if !found {
		return errors.Errorf("Init failed, endpoint %#04x is not a pin endpoint", ps.Endpoint)
	}

	ps.device = device

	if ps.DisableHomekit {
		return nil
	}

	info := accessory.Info{
		Name:         ps.Name,
		SerialNumber: fmt.Sprintf("xbee:%s:%s", device.Addr, pinName),
	}
	ps.hk = accessory.NewSwitch(info)
	ps.hk.Switch.On.OnValueRemoteUpdate(ps.writeRemote)

	return nil
}

// SetState applies one propagated pin update.
func (ps *PinSwitch) SetState(value uint8) {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	oldState := ps.State
	ps.State = value == 1

	if oldState != ps.State && ps.hk != nil {
		ps.hk.Switch.On.SetValue(ps.State)
	}
}

func (ps *PinSwitch) GetState() bool {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	return ps.State
}

func (ps *PinSwitch) writeRemote(state bool) {
	var value uint8
	if state {
		value = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), writePinTimeout)
	defer cancel()

	err := ps.device.WritePin(ctx, ps.Endpoint, value)
	if err != nil {
		log.Error("failed to write pin", "pin", ps.Name, "err", err)
		return
	}

	ps.lock.Lock()
	ps.State = state
	ps.lock.Unlock()
}

func (ps *PinSwitch) GetHk() *accessory.A {
	if ps.hk == nil {
		return nil
	}
	return ps.hk.A
}
