// Program lifecycle: stop signals and systemd service notifications
package lifecycle

import (
	"fmt"
	"net"
	"os"
)

// Sends READY=1 to systemd to indicate service startup complete.
func NotifyReady() (err error) {
	err = notify("READY=1")
	return
}

// Sends STOPPING=1 to systemd to indicate shutdown is draining.
func NotifyStopping() (err error) {
	err = notify("STOPPING=1")
	return
}

// Sends custom status message to systemd for context.
func NotifyStatus(msg string) (err error) {
	err = notify("STATUS=" + msg)
	return
}

// Sends a raw sd_notify message.
// If NOTIFY_SOCKET is unset, this is a no-op and returns nil.
func notify(msg string) (err error) {
	sockPath := os.Getenv("NOTIFY_SOCKET")
	if sockPath == "" {
		// Not running under systemd
		return
	}

	addr := &net.UnixAddr{
		Name: sockPath,
		Net:  "unixgram",
	}

	conn, err := net.DialUnix("unixgram", nil, addr)
	if err != nil {
		err = fmt.Errorf("notify dial failed: %w", err)
		return
	}
	defer conn.Close()

	_, err = conn.Write([]byte(msg))
	if err != nil {
		err = fmt.Errorf("notify write failed: %w", err)
		return
	}
	return
}
