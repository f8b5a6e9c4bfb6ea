package tui

import "github.com/vito/progrock"

// MsgTapeUpdate wraps a raw update from the progrock recorder.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded is sent when the recorder is closed.
type MsgTapeEnded struct{}

// MsgLog carries a log line to print above the progress view.
type MsgLog struct {
	Line string
}
