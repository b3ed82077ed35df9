// Package universetest provides helpers for testing code built on the
// universe container.
//
// # Capturing Messages
//
// CaptureCore wraps a state's Core so tests can assert on message traffic
// without mutating state:
//
//	core := universetest.NewCaptureCore[appMsg](&appState{})
//	u := universe.New[*universetest.CaptureCore[appMsg], appMsg](core)
//
//	core.SetCapture(true)
//	u.Dispatch(msgSignOut{}) // recorded, not applied
//
//	if got := len(core.Messages()); got != 1 {
//	    t.Errorf("captured %d messages, want 1", got)
//	}
//
// # Recording Instrumentation
//
// Recorder is an observe.Observer that stores events for assertions:
//
//	recorder := universetest.NewRecorder()
//	u := universe.New[*appState, appMsg](state, universe.WithObserver(recorder))
//
// # Message Fixtures
//
// LoadMessages reads a YAML list of messages from testdata, and Replay
// dispatches a slice in order:
//
//	msgs, err := universetest.LoadMessages[appMsg]("testdata/signup_flow.yaml")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	universetest.Replay(u, msgs)
package universetest
