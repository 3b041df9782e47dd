package zhakit

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

type pinStatus struct {
	Name     string
	Endpoint uint16
	State    bool
}

type deviceStatus struct {
	Name string
	Addr string
	Pins []pinStatus
}

func (kit *Kit) statusReport() (report []deviceStatus) {
	for _, device := range kit.Devices {
		status := deviceStatus{Name: device.Name, Addr: device.Addr}
		for _, pin := range device.Pins {
			status.Pins = append(status.Pins, pinStatus{
				Name:     pin.Name,
				Endpoint: pin.Endpoint,
				State:    pin.GetState(),
			})
		}
		report = append(report, status)
	}

	return
}

func (kit *Kit) handleStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := json.Marshal(kit.statusReport())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// ServeStatus exposes the current pin states as a read-only json endpoint.
func (kit *Kit) ServeStatus(addr string) error {
	router := httprouter.New()
	router.GET("/status", kit.handleStatus)

	return errors.Wrap(http.ListenAndServe(addr, router), "status server failed")
}
