package zhakit

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/eclipse/paho.golang/paho"
	"github.com/pkg/errors"

	"github.com/jurriaan/zhakit/xbee"
)

// XBee is one radio module on the network: its address, its bridge topics
// and the digital pins it exposes as switches. Decoded analog readings go to
// the kit's sample writer when one is configured.
type XBee struct {
	Name    string
	Addr    string
	RxTopic string
	TxTopic string

	Pins []*PinSwitch

	device  *xbee.Device
	samples *InfluxSamples
	byEp    map[uint16]*PinSwitch
	logger  *log.Logger
}

func (xb *XBee) rxTopic() string {
	if len(xb.RxTopic) > 0 {
		return xb.RxTopic
	}
	return fmt.Sprintf("zha/%s/rx", xb.Addr)
}

func (xb *XBee) txTopic() string {
	if len(xb.TxTopic) > 0 {
		return xb.TxTopic
	}
	return fmt.Sprintf("zha/%s/tx", xb.Addr)
}

func (xb *XBee) Init(sender xbee.Sender, samples *InfluxSamples) error {
	if len(xb.Addr) == 0 {
		return errors.New("device address not set")
	}

	xb.logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "XBee " + xb.Addr + ": ",
		Level:  log.GetLevel(),
	})

	xb.device = xbee.NewDevice(xb.Addr, sender)
	xb.samples = samples

	xb.byEp = make(map[uint16]*PinSwitch)
	for _, pin := range xb.Pins {
		err := pin.Init(xb.device)
		if err != nil {
			return errors.Wrapf(err, "failed to init pin %s", pin.Name)
		}
		xb.byEp[pin.Endpoint] = pin
	}

	xb.device.OnPinUpdate(func(update xbee.PinUpdate) {
		pin, found := xb.byEp[update.Endpoint]
		if !found {
			xb.logger.Debug("sampled pin has no switch configured", "endpoint", update.Endpoint)
			return
		}
		pin.SetState(update.Value)
	})

	if xb.samples != nil {
		xb.device.OnAnalogSample(func(pin int, value uint16) {
			xb.samples.WriteReading(xb.Addr, pin, value)
		})
	}

	return nil
}

// HandleFrame feeds one inbound cluster frame to the device. Unknown command
// ids are logged and dropped, never fatal.
func (xb *XBee) HandleFrame(data []byte) {
	err := xb.device.HandleFrame(data)
	switch {
	case err == nil:
	case errors.Is(err, xbee.ErrUnknownCommand):
		xb.logger.Warn("ignoring frame with unknown command", "err", err)
	default:
		xb.logger.Error("failed to handle frame", "err", err)
	}
}

func (xb *XBee) MqttHandle(pub *paho.Publish) {
	xb.HandleFrame(pub.Payload)
}

func (xb *XBee) MqttSubscribeTopic() string {
	return xb.rxTopic()
}
