package zhakit

import (
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/pkg/errors"
)

const defaultSamplesMeasurement = "analog_samples"

// InfluxSamples writes decoded analog pin readings to an InfluxDB bucket,
// tagged by device address and pin index.
type InfluxSamples struct {
	Host         string
	Organization string
	Bucket       string
	Measurement  string
	Token        string

	client   influxdb2.Client
	writeApi api.WriteAPI
}

func (is *InfluxSamples) Setup() error {
	if len(is.Host) == 0 {
		return errors.New("influx host not set")
	}

	if len(is.Measurement) == 0 {
		is.Measurement = defaultSamplesMeasurement
	}

	is.client = influxdb2.NewClient(is.Host, is.Token)
	is.writeApi = is.client.WriteAPI(is.Organization, is.Bucket)

	return nil
}

// WriteReading queues one analog reading; the write api batches and flushes
// in the background.
func (is *InfluxSamples) WriteReading(deviceAddr string, pin int, value uint16) {
	point := influxdb2.NewPointWithMeasurement(is.Measurement).
		AddTag("device", deviceAddr).
		AddTag("pin", analogPinTag(pin)).
		AddField("value", int64(value)).
		SetTime(time.Now())

	is.writeApi.WritePoint(point)
}

func analogPinTag(pin int) string {
	return "AD" + strconv.Itoa(pin)
}

func (is *InfluxSamples) Close() {
	if is.client != nil {
		is.writeApi.Flush()
		is.client.Close()
	}
}
