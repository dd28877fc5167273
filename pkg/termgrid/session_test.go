package termgrid

import (
	"errors"
	"sync"
	"testing"

	"termgrid/pkg/driver"
)

func TestOpenSingleton(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	defer session.Close()

	if _, _, err := openFake(80, 24); !errors.Is(err, ErrLocked) {
		t.Fatalf("second open returned %v, want ErrLocked", err)
	}
	if !session.IsOpen() {
		t.Fatal("first session affected by failed second open")
	}

	session.Close()
	if fake.shutdownCalls != 1 {
		t.Fatalf("shutdown called %d times, want 1", fake.shutdownCalls)
	}

	reopened, _, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("reopen after close failed: %v", err)
	}
	reopened.Close()
}

func TestOpenConcurrent(t *testing.T) {
	const attempts = 32

	var wg sync.WaitGroup
	sessions := make([]*Session, attempts)
	failures := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i], _, failures[i] = openFake(80, 24)
		}(i)
	}
	wg.Wait()

	opened := 0
	for i := 0; i < attempts; i++ {
		if failures[i] == nil {
			opened++
			defer sessions[i].Close()
		} else if !errors.Is(failures[i], ErrLocked) {
			t.Fatalf("attempt %d failed with %v, want ErrLocked", i, failures[i])
		}
	}
	if opened != 1 {
		t.Fatalf("%d concurrent opens succeeded, want exactly 1", opened)
	}
}

func TestOpenInitFailure(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr error
	}{
		{"unsupported terminal", driver.ErrUnsupportedTerminal, ErrUnsupportedTerminal},
		{"failed to open device", driver.ErrFailedToOpen, ErrFailedToOpenDevice},
		{"pipe trap", driver.ErrPipeTrap, ErrPipeTrap},
		{"unknown code", -42, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeDriver(80, 24)
			fake.initCode = tt.code
			session, err := OpenDriver(fake)
			if session != nil {
				t.Fatal("got a session despite init failure")
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if fake.shutdownCalls != 0 {
				t.Fatal("shutdown called for a driver that never initialized")
			}

			// The lock must be released on every failing path.
			ok, _, err := openFake(80, 24)
			if err != nil {
				t.Fatalf("lock still held after failed open: %v", err)
			}
			ok.Close()
		})
	}
}

func TestCloseIdempotent(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	session.Close()
	session.Close()
	if fake.shutdownCalls != 1 {
		t.Fatalf("shutdown called %d times, want 1", fake.shutdownCalls)
	}
	if session.IsOpen() {
		t.Fatal("session still reports open after close")
	}

	// Everything degrades to safe no-ops on a closed session.
	session.Clear()
	session.Present()
	session.ChangeCell(0, 0, 'x', Default, Default)
	session.SetString(0, 0, "x", Default, Default)
	session.SetCursor(3, 4)
	session.HideCursor()
	session.SetInputMode(InputAlt)
	session.SetMouseEnabled(true)
	session.SetOutputMode(Output256)
	if w, h := session.Size(); w != 0 || h != 0 {
		t.Fatalf("closed session reports size %dx%d", w, h)
	}
	if _, err := session.CellBuffer(); !errors.Is(err, ErrClosed) {
		t.Fatalf("CellBuffer after close returned %v, want ErrClosed", err)
	}
	if _, err := session.PollEvent(); !errors.Is(err, ErrClosed) {
		t.Fatalf("PollEvent after close returned %v, want ErrClosed", err)
	}
	if _, err := session.PeekEvent(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("PeekEvent after close returned %v, want ErrClosed", err)
	}
}

func TestInputModePreservesMouse(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	session.SetMouseEnabled(true)
	if !session.IsMouseEnabled() {
		t.Fatal("mouse not enabled")
	}

	// Toggling the Esc/Alt axis must not clobber the mouse flag.
	session.SetInputMode(InputAlt)
	if !session.IsMouseEnabled() {
		t.Fatal("switching to alt mode disabled the mouse")
	}
	if mode, err := session.InputMode(); err != nil || mode != InputAlt {
		t.Fatalf("input mode = %v, %v; want alt", mode, err)
	}

	session.SetInputMode(InputEsc)
	if !session.IsMouseEnabled() {
		t.Fatal("switching to esc mode disabled the mouse")
	}

	// Enabling twice stays enabled and does not disturb the mode.
	session.SetMouseEnabled(true)
	session.SetMouseEnabled(true)
	if mode, _ := session.InputMode(); mode != InputEsc {
		t.Fatalf("input mode drifted to %v", mode)
	}

	session.SetMouseEnabled(false)
	if session.IsMouseEnabled() {
		t.Fatal("mouse still enabled after disable")
	}
	if fake.inputMode&driver.InputModeMask != driver.InputEsc {
		t.Fatalf("driver mode bits = %#x, want esc", fake.inputMode)
	}
}

func TestOutputModeRoundTrip(t *testing.T) {
	session, _, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	for _, mode := range []OutputMode{OutputNormal, Output256, Output216, OutputGrayscale} {
		session.SetOutputMode(mode)
		got, err := session.OutputMode()
		if err != nil {
			t.Fatalf("OutputMode after set %v: %v", mode, err)
		}
		if got != mode {
			t.Fatalf("output mode round trip: set %v, got %v", mode, got)
		}
	}
}

func TestModeDecodeFailures(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	fake.inputMode = 0 // neither esc nor alt
	if _, err := session.InputMode(); !errors.Is(err, ErrUnknownInputMode) {
		t.Fatalf("got %v, want ErrUnknownInputMode", err)
	}

	fake.outputMode = 9
	if _, err := session.OutputMode(); !errors.Is(err, ErrUnknownOutputMode) {
		t.Fatalf("got %v, want ErrUnknownOutputMode", err)
	}
}

func TestPollEvent(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	fake.pushEvent(driver.RawEvent{Type: driver.EventResize, W: 100, H: 40})
	event, err := session.PollEvent()
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	resize, ok := event.(ResizeEvent)
	if !ok || resize.Width != 100 || resize.Height != 40 {
		t.Fatalf("got %#v, want ResizeEvent{100, 40}", event)
	}

	// Queue drained: a non-positive driver return is a hard failure.
	if _, err := session.PollEvent(); err == nil {
		t.Fatal("expected a hard failure on negative poll return")
	}
}

func TestPollDecodeFailureIsHard(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	fake.pushEvent(driver.RawEvent{Type: 99})
	if _, err := session.PollEvent(); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("got %v, want ErrUnknownEvent", err)
	}
}

func TestPeekEvent(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	// Timeout is a normal outcome: no event, no error.
	event, err := session.PeekEvent(0)
	if err != nil || event != nil {
		t.Fatalf("timeout returned (%#v, %v), want (nil, nil)", event, err)
	}

	fake.pushEvent(driver.RawEvent{Type: driver.EventKey, Key: driver.KeyEnter})
	event, err = session.PeekEvent(0)
	if err != nil {
		t.Fatalf("peek failed: %v", err)
	}
	if key, ok := event.(KeyEvent); !ok || key.Key != KeyEnter {
		t.Fatalf("got %#v, want enter key event", event)
	}

	fake.peekFallback = -2
	if _, err := session.PeekEvent(0); err == nil {
		t.Fatal("expected a hard failure on negative peek return")
	}
}

func TestHideCursor(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	session.SetCursor(5, 6)
	if fake.cursorX != 5 || fake.cursorY != 6 {
		t.Fatalf("cursor at (%d, %d), want (5, 6)", fake.cursorX, fake.cursorY)
	}
	session.HideCursor()
	if fake.cursorX != driver.HiddenCursor || fake.cursorY != driver.HiddenCursor {
		t.Fatalf("cursor at (%d, %d), want hidden", fake.cursorX, fake.cursorY)
	}
}

// End-to-end: open on an 80x24 terminal, clear, write "Hi", present, then
// poll a synthetic Esc key press.
func TestSessionScenario(t *testing.T) {
	session, fake, err := openFake(80, 24)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer session.Close()

	session.SetClearAttributes(Default, Default)
	session.Clear()
	session.SetString(0, 0, "Hi", White, Default)
	session.Present()

	if fake.clears != 1 || fake.presents != 1 {
		t.Fatalf("clears=%d presents=%d, want 1 and 1", fake.clears, fake.presents)
	}
	if fake.cells[0].Ch != 'H' || fake.cells[1].Ch != 'i' {
		t.Fatalf("buffer holds %q%q, want \"Hi\"", fake.cells[0].Ch, fake.cells[1].Ch)
	}

	fake.pushEvent(driver.RawEvent{Type: driver.EventKey, Key: driver.KeyEsc, Ch: 0x1b})
	event, err := session.PollEvent()
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	key, ok := event.(KeyEvent)
	if !ok {
		t.Fatalf("got %#v, want KeyEvent", event)
	}
	if key.Key != KeyEsc || key.Ch != 0x1b || key.Alt {
		t.Fatalf("got %+v, want key=esc ch=U+001B alt=false", key)
	}
}
