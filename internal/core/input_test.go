package core

import "testing"

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	got := f.Actions()
	if len(got) != 2 || got[0] != ActionLeft || got[1] != ActionRotate {
		t.Fatalf("Actions() = %v, expected [Left Rotate]", got)
	}
	if !f.Has(ActionRotate) || f.Has(ActionHardDrop) {
		t.Error("Has() mismatch")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionHardDrop) {
		t.Error("clone should keep its actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionCounterRotate.String() != "CounterRotate" {
		t.Errorf("String() = %q", ActionCounterRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() of an unknown action = %q", Action(99).String())
	}
}
