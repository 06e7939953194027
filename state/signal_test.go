package state

import "testing"

func TestSignal_SetNotifies(t *testing.T) {
	sig := NewSignal(1)
	calls := 0
	unsub := sig.Subscribe(func() { calls++ })

	if !sig.Set(2) {
		t.Fatal("set should report a change")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	unsub()
	unsub()
	sig.Set(3)
	if calls != 1 {
		t.Fatalf("calls after unsubscribe = %d, want 1", calls)
	}
	if got := sig.Get(); got != 3 {
		t.Fatalf("value = %d, want 3", got)
	}
}

func TestSignal_EqualFuncSuppresses(t *testing.T) {
	sig := NewSignal(5)
	sig.SetEqualFunc(EqualComparable[int])
	if sig.Set(5) {
		t.Fatal("equal set should not notify")
	}
	if !sig.Update(func(v int) int { return v + 1 }) || sig.Get() != 6 {
		t.Fatalf("update = %d, want 6", sig.Get())
	}
	if sig.Update(nil) {
		t.Fatal("nil update should be ignored")
	}
}

func TestSignal_NotifyOrder(t *testing.T) {
	sig := NewSignal("a")
	var order []int
	for i := 0; i < 3; i++ {
		sig.Subscribe(func() { order = append(order, i) })
	}
	sig.Set("b")
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("order = %v, want [0 1 2]", order)
	}
}

func TestSignal_NilReceiver(t *testing.T) {
	var sig *Signal[int]
	if sig.Get() != 0 || sig.Set(1) {
		t.Fatal("nil signal should be inert")
	}
	sig.Subscribe(func() {})()
}
