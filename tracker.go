package obs

// Native handle tracker for detecting reference leaks at runtime.
//
// Usage: build with -tags leakcheck to enable tracking.
// In production builds (default), all tracker calls are no-ops.
//
// Example:
//
//	d := obs.NewDataObj()
//	defer d.Release()
//	// ... use d ...
//	leaks := obs.DumpLeaks() // returns all un-released handles (empty if none)

// ResourceKind identifies the type of tracked native handle.
type ResourceKind string

const (
	ResDataObj   ResourceKind = "obs_data_t"
	ResDataArray ResourceKind = "obs_data_array_t"
)

// LeakRecord describes a tracked handle that has not been released.
type LeakRecord struct {
	Kind  ResourceKind
	Addr  uintptr
	Stack string // call stack at acquisition time (when available)
}
