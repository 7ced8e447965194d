package main

import (
	"errors"
	"testing"
)

type fakeApp struct {
	err        error
	usageError bool
}

func (a fakeApp) Run() error       { return a.err }
func (a fakeApp) UsageError() bool { return a.usageError }

func TestRun(t *testing.T) {
	cases := map[string]struct {
		app  fakeApp
		want int
	}{
		"success":     {app: fakeApp{}, want: 0},
		"run error":   {app: fakeApp{err: errors.New("boom")}, want: 1},
		"usage error": {app: fakeApp{err: errors.New("bad flag"), usageError: true}, want: 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := run(tc.app); got != tc.want {
				t.Fatalf("expected exit code %d, got %d", tc.want, got)
			}
		})
	}
}
