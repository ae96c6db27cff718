package chat

import (
	"fmt"
	"net"
	"time"
)

// formatMessage - formats a chat line with wall-clock timestamp,
// for example "[14:02:07] alice: hello".
func formatMessage(t time.Time, author, body string) string {
	return fmt.Sprintf("[%s] %s: %s", t.Format("15:04:05"), author, body)
}

// formatAddress - formats network address for logging purposes.
func formatAddress(a net.Addr) string {
	if a == nil {
		return "?"
	}
	return fmt.Sprintf("%s %s", a.Network(), a.String())
}
