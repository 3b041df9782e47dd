package mqtt

import (
	"context"
	"testing"

	"github.com/jurriaan/zhakit/xbee"
)

type fakePublisher struct {
	topics   []string
	payloads [][]byte
}

func (fp *fakePublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	fp.topics = append(fp.topics, topic)
	fp.payloads = append(fp.payloads, payload)
	return nil
}

func assertBytes(t testing.TB, got, want []byte) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len(got) = %d len(want) = %d (% x vs % x)", len(got), len(want), got, want)
	}
	for i, b := range got {
		if want[i] != b {
			t.Errorf("byte [%d] got %#02x want %#02x", i, b, want[i])
		}
	}
}

func TestRemoteSenderSendRemoteAT(t *testing.T) {
	pub := &fakePublisher{}
	sender := NewRemoteSender("zha/0013a200/tx", pub)

	err := sender.SendRemoteAT(context.Background(), xbee.RemoteCommand{PinName: "P0", Param: xbee.PinCmdHigh})
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	if len(pub.topics) != 1 || pub.topics[0] != "zha/0013a200/tx" {
		t.Errorf("got topics %v", pub.topics)
	}

	want := []byte{xbee.RemoteATFrameType, xbee.ApplyChanges | remoteATEncrypted, 'P', '0', xbee.PinCmdHigh}
	assertBytes(t, pub.payloads[0], want)
}

func TestRemoteSenderSendClusterCommand(t *testing.T) {
	pub := &fakePublisher{}
	sender := NewRemoteSender("zha/0013a200/tx", pub)

	err := sender.SendClusterCommand(context.Background(), 0xD0, 2)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}

	want := []byte{clusterFrameType, 0x00, 0xD0, 0x02}
	assertBytes(t, pub.payloads[0], want)
}
