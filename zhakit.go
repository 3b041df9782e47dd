package zhakit

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	dnslog "github.com/brutella/dnssd/log"
	"github.com/brutella/hap"
	"github.com/brutella/hap/accessory"
	hklog "github.com/brutella/hap/log"
	"github.com/pkg/errors"

	"github.com/jurriaan/zhakit/mqtt"
	"github.com/jurriaan/zhakit/xbee"
)

const defaultHomeKitDirectory = "./homekit"
const homeKitBridgeName = "zhakit"
const homeKitBridgeAuthor = "github.com/jurriaan"

type Kit struct {
	Name string

	Devices []*XBee

	HkPin       string
	HkDirectory string
	HkAddress   string
	HkDebug     bool

	MqttBroker string
	StatusAddr string

	Influx *InfluxSamples

	MockSender *MockSender

	mqttClient *mqtt.MqttClient
	logger     *log.Logger
}

func (kit *Kit) bridgeName() string {
	if len(kit.Name) > 0 {
		return kit.Name
	}
	return homeKitBridgeName
}

// InitDevices wires every configured radio module to its transport and its
// endpoint switches. The mock sender, when set, replaces the MQTT transport
// for all devices.
func (kit *Kit) InitDevices(ctx context.Context) error {
	kit.logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "zhakit: ",
		Level:  log.GetLevel(),
	})

	if len(kit.Devices) == 0 {
		return errors.New("no devices configured")
	}

	if kit.Influx != nil {
		err := kit.Influx.Setup()
		if err != nil {
			return errors.Wrap(err, "failed to setup influx sample writer")
		}
	}

	if kit.MockSender == nil {
		if len(kit.MqttBroker) == 0 {
			return errors.New("mqtt broker not set and no mock sender present")
		}
		mc, err := mqtt.NewMqttClient(kit.MqttBroker, kit.bridgeName())
		if err != nil {
			return errors.Wrap(err, "failed to create mqtt client")
		}
		kit.mqttClient = mc
	}

	for _, device := range kit.Devices {
		var sender xbee.Sender
		if kit.MockSender != nil {
			sender = kit.MockSender
		} else {
			sender = mqtt.NewRemoteSender(device.txTopic(), kit.mqttClient)
		}
		err := device.Init(sender, kit.Influx)
		if err != nil {
			return errors.Wrapf(err, "failed to init device %s", device.Addr)
		}
		kit.logger.Info("device ready", "addr", device.Addr, "pins", len(device.Pins))
	}

	return nil
}

// ConnectMqtt subscribes every device's rx topic on the broker. A no-op when
// running on the mock sender.
func (kit *Kit) ConnectMqtt(ctx context.Context) error {
	if kit.mqttClient == nil {
		return nil
	}

	handlers := []mqtt.MqttHandler{}
	for _, device := range kit.Devices {
		handlers = append(handlers, device)
	}

	err := kit.mqttClient.Connect(ctx, handlers)
	return errors.Wrap(err, "failed to connect to mqtt broker")
}

func (kit *Kit) GetHkAccessories(firmwareVersion string) (acc []*accessory.A) {
	acc = []*accessory.A{}

	for _, device := range kit.Devices {
		for _, pin := range device.Pins {
			accessory := pin.GetHk()
			if accessory != nil {
				if accessory.Info != nil && accessory.Info.FirmwareRevision != nil {
					accessory.Info.FirmwareRevision.SetValue(firmwareVersion)
				}
				accessory.Id = pin.GetUniqueId()
				acc = append(acc, accessory)
			}
		}
	}

	return
}

func (kit *Kit) StartHomeKit(ctx context.Context, firmwareVersion string) error {
	bridge := accessory.NewBridge(accessory.Info{
		Name:         kit.bridgeName(),
		Manufacturer: homeKitBridgeAuthor,
		Firmware:     firmwareVersion,
	})

	var store hap.Store
	if len(kit.HkDirectory) > 1 {
		store = hap.NewFsStore(kit.HkDirectory)
	} else {
		store = hap.NewFsStore(defaultHomeKitDirectory)
	}
	hkServer, err := hap.NewServer(store, bridge.A, kit.GetHkAccessories(firmwareVersion)...)
	if err != nil {
		return errors.Wrap(err, "failed to create HomeKit server")
	}
	hkServer.Pin = kit.HkPin
	if len(kit.HkAddress) > 0 {
		hkServer.Addr = kit.HkAddress
	}

	if kit.HkDebug {
		hklog.Debug.Enable()
		dnslog.Debug.Enable()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		<-c
		signal.Stop(c)
		cancel()
	}()

	return hkServer.ListenAndServe(ctx)
}

func (kit *Kit) Close() (err error) {
	if kit.mqttClient != nil {
		disconnectErr := kit.mqttClient.Disconnect(context.Background())
		if disconnectErr != nil {
			err = errors.Wrap(disconnectErr, "failed to disconnect mqtt")
		}
	}

	if kit.Influx != nil {
		kit.Influx.Close()
	}

	return
}

func (kit *Kit) PrintIoStatus(writer io.Writer) {
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "=== configured devices ===")
	for _, device := range kit.Devices {
		fmt.Fprintln(writer, "________")
		fmt.Fprintf(writer, "| device: %s (%s)\n", device.Name, device.Addr)
		fmt.Fprintf(writer, "| rx: %s tx: %s\n", device.rxTopic(), device.txTopic())
		for _, pin := range device.Pins {
			fmt.Fprintf(writer, "| pin %s endpoint %#04x state %v\n", pin.Name, pin.Endpoint, pin.GetState())
		}
		fmt.Fprintln(writer, "--------")
	}
	fmt.Fprintln(writer, "-----------------------------")
	fmt.Fprintln(writer)
}
