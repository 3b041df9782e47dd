package mqtt

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jurriaan/zhakit/xbee"
)

// Bridge frame types on the device tx topic. Remote AT frames reuse the
// native frame type id; cluster commands go out as explicit-addressing
// frames for the gateway to wrap.
const clusterFrameType = 0x11

// Remote AT writes always request encryption on the link; the gateway reads
// this bit next to the native apply-changes flag.
const remoteATEncrypted = 0x01

// RemoteSender publishes outbound commands for one device to its tx topic.
// It implements xbee.Sender.
type RemoteSender struct {
	Topic string

	pub Publisher
}

func NewRemoteSender(topic string, pub Publisher) *RemoteSender {
	return &RemoteSender{Topic: topic, pub: pub}
}

func (rs *RemoteSender) SendRemoteAT(ctx context.Context, cmd xbee.RemoteCommand) error {
	payload := make([]byte, 0, len(cmd.PinName)+3)
	payload = append(payload, xbee.RemoteATFrameType, xbee.ApplyChanges|remoteATEncrypted)
	payload = append(payload, []byte(cmd.PinName)...)
	payload = append(payload, cmd.Param)

	return errors.Wrapf(rs.pub.Publish(ctx, rs.Topic, payload),
		"failed to publish remote at frame to %s", rs.Topic)
}

func (rs *RemoteSender) SendClusterCommand(ctx context.Context, endpointID uint16, commandID uint8) error {
	payload := []byte{
		clusterFrameType,
		byte(endpointID >> 8), byte(endpointID),
		commandID,
	}

	return errors.Wrapf(rs.pub.Publish(ctx, rs.Topic, payload),
		"failed to publish cluster frame to %s", rs.Topic)
}
