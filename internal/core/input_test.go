package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionDrop) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionDrop)
	f.Set(ActionLeft)
	if !f.Has(ActionDrop) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	f.Clear()

	if f.Has(ActionDrop) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCW.String() != "RotateCW" {
		t.Errorf("ActionRotateCW.String() = %q", ActionRotateCW.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("out-of-range action should be Unknown, got %q", Action(999).String())
	}
}
