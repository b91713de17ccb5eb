package canopy

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{MouseDown{}, "MouseDown"},
		{KeyUp{}, "KeyUp"},
		{CommandEvent{Command: NewCommand("x.y", nil)}, "CommandEvent(x.y)"},
		{TargetedCommand{Command: NewCommand(SelectorQuit, nil)}, "TargetedCommand(canopy.quit)"},
	}
	for _, tt := range tests {
		if got := eventName(tt.ev); got != tt.want {
			t.Errorf("eventName(%T) = %q, want %q", tt.ev, got, tt.want)
		}
	}
	if got := lifecycleName(RouteFocusChanged{}); got != "RouteFocusChanged" {
		t.Errorf("lifecycleName = %q", got)
	}
}

func TestDebugModeLogsPasses(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)
	f := newFixture()
	if f.w.DebugMode() {
		t.Fatal("debug mode should start off")
	}
	f.w.SetDebugMode(true)

	f.w.Event(MouseMove{mouse(5, 5)})
	f.w.Layout(Size{Width: 100, Height: 100})
	f.w.Paint(NewDisplayList())

	for _, pass := range []string{"event", "update", "layout", "paint"} {
		if logs.FilterField(zap.String("pass", pass)).Len() == 0 {
			t.Errorf("no timing logged for the %s pass", pass)
		}
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)
	f := newFixture()
	f.w.Event(MouseMove{mouse(5, 5)})
	if n := logs.FilterField(zap.String("pass", "event")).Len(); n != 0 {
		t.Errorf("pass timings logged with debug mode off: %d", n)
	}
}

func TestDebugSlowPassWarns(t *testing.T) {
	logs := observeLogs(t, zapcore.WarnLevel)
	f := newFixture()
	f.w.debugPass("paint", 10*time.Millisecond)
	f.w.debugPass("paint", time.Millisecond)
	if n := logs.FilterMessage("slow pass").Len(); n != 1 {
		t.Errorf("slow pass warnings = %d, want 1", n)
	}
}

func TestDebugCheckFocusChain(t *testing.T) {
	logs := observeLogs(t, zapcore.WarnLevel)
	a, b := NextWidgetID(), NextWidgetID()
	debugCheckFocusChain([]WidgetID{a, b})
	if logs.Len() != 0 {
		t.Fatalf("unexpected warnings: %v", logs.All())
	}
	debugCheckFocusChain([]WidgetID{a, b, a})
	if n := logs.FilterMessage("widget registered for focus twice").Len(); n != 1 {
		t.Errorf("duplicate warnings = %d, want 1", n)
	}

	long := make([]WidgetID, debugMaxFocusChain+1)
	for i := range long {
		long[i] = NextWidgetID()
	}
	debugCheckFocusChain(long)
	if n := logs.FilterMessage("focus chain is unusually long").Len(); n != 1 {
		t.Errorf("length warnings = %d, want 1", n)
	}
}

func TestDebugRegisterDetectsDoubleFocus(t *testing.T) {
	logs := observeLogs(t, zapcore.WarnLevel)
	f := newFixture()
	f.w.SetDebugMode(true)
	f.a.onLifecycle = func(ctx *LifeCycleCtx, ev LifeCycle) {
		if _, ok := ev.(Register); ok {
			ctx.RegisterForFocus()
		}
	}
	f.w.Register()
	if n := logs.FilterMessage("widget registered for focus twice").Len(); n != 1 {
		t.Errorf("warnings = %d, want 1", n)
	}
}
