package notify

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
)

// fakeNotifier records notifications and hands out increasing IDs
type fakeNotifier struct {
	sent         []Notification
	closed       []uint32
	disconnected bool
	err          error
	nextID       uint32
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	f.sent = append(f.sent, n)
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func (f *fakeNotifier) Disconnect() error {
	f.disconnected = true
	return nil
}

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 || UrgencyNormal != 1 || UrgencyCritical != 2 {
		t.Errorf("urgency values = %d/%d/%d, want 0/1/2", UrgencyLow, UrgencyNormal, UrgencyCritical)
	}
}

func TestDesktop_ShowReplacesPrevious(t *testing.T) {
	fake := &fakeNotifier{}
	d := NewDesktop(zap.NewNop(), fake)

	d.Show("Now Playing", "A - T")
	d.Show("Now Playing", "B - U")

	if len(fake.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(fake.sent))
	}
	if fake.sent[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", fake.sent[0].ReplacesID)
	}
	if fake.sent[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", fake.sent[1].ReplacesID)
	}
	if fake.sent[1].Body != "B - U" || fake.sent[1].Urgency != UrgencyNormal {
		t.Errorf("second notification = %+v", fake.sent[1])
	}
}

func TestDesktop_FailureKeepsLastID(t *testing.T) {
	fake := &fakeNotifier{}
	d := NewDesktop(zap.NewNop(), fake)

	d.Show("Now Playing", "A - T")
	fake.err = fmt.Errorf("org.freedesktop.DBus.Error.ServiceUnknown")
	d.Show("Now Playing", "B - U")
	fake.err = nil
	d.Show("Now Playing", "C - V")

	if got := fake.sent[2].ReplacesID; got != 1 {
		t.Errorf("ReplacesID after failure = %d, want 1", got)
	}
}

func TestDesktop_ShowError(t *testing.T) {
	fake := &fakeNotifier{}
	d := NewDesktop(zap.NewNop(), fake)

	d.ShowError("traympd", "initialize tray: no display")

	n := fake.sent[0]
	if n.Urgency != UrgencyCritical || n.Timeout != 0 {
		t.Errorf("error notification = %+v, want critical and persistent", n)
	}
}

func TestDesktop_Shutdown(t *testing.T) {
	fake := &fakeNotifier{}
	d := NewDesktop(zap.NewNop(), fake)

	// Nothing shown: only disconnect
	if err := d.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if len(fake.closed) != 0 || !fake.disconnected {
		t.Errorf("closed=%v disconnected=%v", fake.closed, fake.disconnected)
	}

	d.Show("Now Playing", "A - T")
	if err := d.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if len(fake.closed) != 1 || fake.closed[0] != 1 {
		t.Errorf("closed = %v, want [1]", fake.closed)
	}
}

func TestStubNotifier(t *testing.T) {
	var n Notifier = &stubNotifier{}
	id, err := n.Notify(Notification{Title: "x"})
	if id != 0 || err != nil {
		t.Errorf("Notify() = %d, %v", id, err)
	}
	if err := n.Close(1); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := n.Disconnect(); err != nil {
		t.Errorf("Disconnect() error: %v", err)
	}
}
