package xbee

const (
	ProfileID    = 0xC105
	IOClusterID  = 0x92
	DataEndpoint = 0xE8

	RemoteATFrameType = 0x17

	ApplyChanges = 0x02
	PinCmdHigh   = 0x05
	PinCmdLow    = 0x04
)

const (
	digitalPinCount = 13
	analogPinCount  = 8
)

// PinEndpoints maps a digital pin index to the endpoint exposing its on/off
// state. Pins 6 to 9 are reserved on the module and not exposed.
var PinEndpoints = map[int]uint16{
	0:  0xD0,
	1:  0xD1,
	2:  0xD2,
	3:  0xD3,
	4:  0xD4,
	5:  0xD5,
	10: 0xDA,
	11: 0xDB,
	12: 0xDC,
}

// PinNames maps an endpoint id to the native pin name the module expects in
// remote configuration commands.
var PinNames = map[uint16]string{
	0xD0: "D0",
	0xD1: "D1",
	0xD2: "D2",
	0xD3: "D3",
	0xD4: "D4",
	0xD5: "D5",
	0xDA: "P0",
	0xDB: "P1",
	0xDC: "P2",
}
