package zhakit

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jurriaan/zhakit/xbee"
)

// MockSender swallows outbound commands and optionally writes them to an io
// writer, for tests and broker-less runs.
type MockSender struct {
	WriteTo io.Writer

	remoteAT []xbee.RemoteCommand
	lock     sync.Mutex
}

func (ms *MockSender) SendRemoteAT(ctx context.Context, cmd xbee.RemoteCommand) error {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	ms.remoteAT = append(ms.remoteAT, cmd)
	if ms.WriteTo != nil {
		fmt.Fprintf(ms.WriteTo, "[remote at] set pin %s param %#02x\n", cmd.PinName, cmd.Param)
	}
	return nil
}

func (ms *MockSender) SendClusterCommand(ctx context.Context, endpointID uint16, commandID uint8) error {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	if ms.WriteTo != nil {
		fmt.Fprintf(ms.WriteTo, "[cluster] endpoint %#04x command %#02x\n", endpointID, commandID)
	}
	return nil
}

// RemoteATCommands returns a copy of the recorded remote at commands.
func (ms *MockSender) RemoteATCommands() []xbee.RemoteCommand {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	return append([]xbee.RemoteCommand{}, ms.remoteAT...)
}
