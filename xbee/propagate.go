package xbee

// PinUpdate directs the host to set one endpoint's on/off state.
type PinUpdate struct {
	Endpoint uint16
	Value    uint8
}

// Propagate lists the endpoint writes implied by a decoded sample, in
// ascending pin order. Only pins enabled in the sample are considered, and
// pins without an endpoint mapping are skipped; the host owns the endpoint
// state itself.
func Propagate(sample IOSample) (updates []PinUpdate) {
	for pin := 0; pin < digitalPinCount; pin++ {
		if !sample.DigitalEnabled[pin] {
			continue
		}
		endpoint, found := PinEndpoints[pin]
		if !found {
			continue
		}
		var value uint8
		if sample.DigitalValues[pin] {
			value = 1
		}
		updates = append(updates, PinUpdate{Endpoint: endpoint, Value: value})
	}

	return
}
