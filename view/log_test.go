// SPDX-License-Identifier: Unlicense OR MIT

package view_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/cocosgo/glview/f32"
	"github.com/cocosgo/glview/headless"
	"github.com/cocosgo/glview/view"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	view.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { view.SetLogger(nil) })
	return &buf
}

func TestLogging(t *testing.T) {
	buf := captureLog(t)
	e := newTestEnv(f32.Rect(0, 0, 32, 32), 1)
	v := newTestView(t, e)
	v.Close()
	out := buf.String()
	for _, msg := range []string{"surface created", "surface destroyed", "width=32"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output %q lacks %q", out, msg)
		}
	}
}

func TestClearCurrentFailureLogged(t *testing.T) {
	buf := captureLog(t)
	p := &headless.Platform{BindErr: errors.New("refused")}
	tr := view.NewTracker(p)
	if tr.ClearCurrent() {
		t.Fatal("ClearCurrent succeeded")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestTrackerSave(t *testing.T) {
	p := new(headless.Platform)
	c1, c2 := headless.NewContext(p), headless.NewContext(p)
	tr := view.NewTracker(p)

	restore := tr.Save()
	if err := tr.MakeCurrent(c1); err != nil {
		t.Fatal(err)
	}
	if !tr.IsCurrent(c1) || tr.IsCurrent(c2) {
		t.Error("wrong context current")
	}
	restore()
	if tr.Current() != nil {
		t.Error("restore did not clear the binding")
	}

	if err := tr.MakeCurrent(c2); err != nil {
		t.Fatal(err)
	}
	restore = tr.Save()
	if err := tr.MakeCurrent(c1); err != nil {
		t.Fatal(err)
	}
	restore()
	if !tr.IsCurrent(c2) {
		t.Error("restore did not rebind the saved context")
	}
	if err := tr.MakeCurrent(nil); err == nil {
		t.Error("binding a nil context succeeded")
	}
}
