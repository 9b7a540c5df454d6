package tui

import "testing"

func TestTickCmdClampsRate(t *testing.T) {
	for _, rate := range []int{0, -5, 1, 60} {
		if cmd := tickCmd(rate); cmd == nil {
			t.Errorf("tickCmd(%d) = nil, want a command", rate)
		}
	}
}
