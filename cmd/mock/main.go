package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jurriaan/zhakit"
)

var (
	Version string
	Build   string
)

// Frames a real module would emit: pins 0 and 10 digital, analog pin 1,
// toggling states between reports.
var mockFrames = [][]byte{
	{0x01, 0x00, 0x04, 0x01, 0x02, 0x00, 0x01, 0x01, 0x80},
	{0x02, 0x00, 0x04, 0x01, 0x02, 0x04, 0x00, 0x02, 0x40},
	{0x03, 0x00, 0x04, 0x01, 0x02, 0x04, 0x01, 0x03, 0x00},
	{0x04, 0x00, 0x04, 0x01, 0x02, 0x00, 0x00, 0x01, 0xC0},
}

func main() {
	log.Println("zhakit mock started")
	log.Println("mock instance for testing purposes, no broker or radio needed")

	kit := &zhakit.Kit{}
	kit.HkPin = "88008800"
	kit.HkDirectory = "./mock_homekit"
	kit.MockSender = &zhakit.MockSender{WriteTo: os.Stdout}
	kit.Devices = []*zhakit.XBee{
		{
			Name: "mock xbee",
			Addr: "0013a20000000001",
			Pins: []*zhakit.PinSwitch{
				{Name: "mock relay", Endpoint: 0xD0},
				{Name: "mock pump", Endpoint: 0xDA},
			},
		},
	}

	log.Println("will init zhakit devices...")
	err := kit.InitDevices(context.Background())
	defer kit.Close()
	if err != nil {
		panic(err)
	}

	kit.PrintIoStatus(os.Stdout)

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		frame := 0
		for range ticker.C {
			kit.Devices[0].HandleFrame(mockFrames[frame%len(mockFrames)])
			frame++
		}
	}()

	log.Println("starting mock with HomeKit service")
	log.Fatal(kit.StartHomeKit(context.Background(), "mock: "+Version))
}
