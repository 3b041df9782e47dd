package zhakit

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestHandleStatus(t *testing.T) {
	kit := &Kit{
		MockSender: &MockSender{},
		Devices: []*XBee{
			{
				Name: "test device",
				Addr: "0013a20000000003",
				Pins: []*PinSwitch{
					{Name: "relay", Endpoint: 0xD0, DisableHomekit: true},
					{Name: "pump", Endpoint: 0xDA, DisableHomekit: true},
				},
			},
		},
	}

	err := kit.InitDevices(context.Background())
	if err != nil {
		t.Fatalf("got error from InitDevices: %v", err)
	}

	// pin 0 high
	kit.Devices[0].HandleFrame([]byte{0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x01})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/status", nil)
	kit.handleStatus(recorder, request, nil)

	if recorder.Code != 200 {
		t.Fatalf("got status code %d", recorder.Code)
	}

	var report []deviceStatus
	err = json.NewDecoder(recorder.Body).Decode(&report)
	if err != nil {
		t.Fatalf("failed decoding response: %v", err)
	}

	if len(report) != 1 || len(report[0].Pins) != 2 {
		t.Fatalf("unexpected report shape: %+v", report)
	}
	if !report[0].Pins[0].State {
		t.Error("relay should report on")
	}
	if report[0].Pins[1].State {
		t.Error("pump should report off")
	}
}
