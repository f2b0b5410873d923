//go:build leakcheck && (darwin || linux)

package obs

import "testing"

// Run with: go test -tags leakcheck -run TestLeakTracker
func TestLeakTrackerBalance(t *testing.T) {
	if !IsAvailable() {
		t.Skip("libobs not available")
	}

	ResetTracker()

	d := NewDataObj()
	a := NewDataArray()
	if got := TrackedCount(); got != 2 {
		t.Errorf("TrackedCount() = %d after two acquisitions, want 2", got)
	}

	leaks := DumpLeaks()
	kinds := map[ResourceKind]int{}
	for _, rec := range leaks {
		kinds[rec.Kind]++
		if rec.Addr == 0 {
			t.Error("leak record with zero address")
		}
		if rec.Stack == "" {
			t.Error("leak record without an acquisition stack")
		}
	}
	if kinds[ResDataObj] != 1 || kinds[ResDataArray] != 1 {
		t.Errorf("leak kinds = %v, want one obs_data_t and one obs_data_array_t", kinds)
	}

	a.Release()
	d.Release()
	if got := TrackedCount(); got != 0 {
		t.Errorf("TrackedCount() = %d after releases, want 0 (leaked: %v)", got, DumpLeaks())
	}
}

func TestLeakTrackerSeesNestedHandles(t *testing.T) {
	if !IsAvailable() {
		t.Skip("libobs not available")
	}

	ResetTracker()

	parent, ok := DataFromJSON(`{"child": {"x": 1}}`)
	if !ok {
		t.Fatal("DataFromJSON failed")
	}
	child, ok := Get[*DataObj](parent, "child")
	if !ok {
		t.Fatal("child extraction failed")
	}

	// The extracted child is its own tracked handle.
	if got := TrackedCount(); got != 2 {
		t.Errorf("TrackedCount() = %d, want 2", got)
	}

	parent.Release()
	child.Release()
	if got := TrackedCount(); got != 0 {
		t.Errorf("TrackedCount() = %d after releases, want 0", got)
	}
}
