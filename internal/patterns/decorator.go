package patterns

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Notifier formats a message for delivery.
type Notifier interface {
	Notify(msg string) string
}

// PlainNotifier delivers the message unchanged.
type PlainNotifier struct{}

func (PlainNotifier) Notify(msg string) string { return msg }

// TimestampNotifier prefixes the time.
type TimestampNotifier struct {
	Next Notifier
	Now  func() time.Time
}

func (n TimestampNotifier) Notify(msg string) string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return fmt.Sprintf("[%s] %s", now().Format(time.TimeOnly), n.Next.Notify(msg))
}

// UppercaseNotifier shouts.
type UppercaseNotifier struct {
	Next Notifier
}

func (n UppercaseNotifier) Notify(msg string) string {
	return strings.ToUpper(n.Next.Notify(msg))
}

// BorderNotifier frames the message in a line of Char above and below.
type BorderNotifier struct {
	Next Notifier
	Char string
}

func (n BorderNotifier) Notify(msg string) string {
	inner := n.Next.Notify(msg)
	line := strings.Repeat(n.Char, len([]rune(inner)))
	return line + "\n" + inner + "\n" + line
}

// RunDecorator stacks decorators one at a time.
func RunDecorator(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	header(w, "Decorator: notifications")

	const msg = "stage separation confirmed"
	layers := []struct {
		name     string
		notifier Notifier
	}{
		{"plain", PlainNotifier{}},
		{"uppercase", UppercaseNotifier{Next: PlainNotifier{}}},
		{"timestamp+uppercase", TimestampNotifier{Next: UppercaseNotifier{Next: PlainNotifier{}}}},
		{"border+uppercase", BorderNotifier{Next: UppercaseNotifier{Next: PlainNotifier{}}, Char: "="}},
	}

	for _, l := range layers {
		fmt.Fprintf(w, "  %s:\n", l.name)
		for _, line := range strings.Split(l.notifier.Notify(msg), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	logger.Debug("decorators applied", "layers", len(layers))
	return nil
}
