//go:build darwin || linux

package obs

// DataArray is an ordered container of data objects backed by a native
// obs_data_array_t handle. The same ownership discipline as DataObj applies:
// one native reference, released exactly once, no-ops after Release.
type DataArray struct {
	raw uintptr
}

// wrapDataArray takes ownership of a native reference the caller already holds.
func wrapDataArray(raw uintptr) *DataArray {
	trackAlloc(ResDataArray, raw)
	return &DataArray{raw: raw}
}

// NewDataArray creates an empty array. It panics when libobs cannot be
// loaded or the native allocation fails.
func NewDataArray() *DataArray {
	mustLibobs()
	raw := obsDataArrayCreate()
	if raw == 0 {
		panic("obs: obs_data_array_create returned NULL")
	}
	return wrapDataArray(raw)
}

// Len returns the number of elements, 0 on a released array.
func (a *DataArray) Len() int {
	if a == nil || a.raw == 0 {
		return 0
	}
	return int(obsDataArrayCount(a.raw))
}

// IsEmpty reports whether the array has no elements.
func (a *DataArray) IsEmpty() bool {
	return a.Len() == 0
}

// Get returns the element at index i. Out-of-range indexes report
// (nil, false); the bounds check is the native one. The returned object
// holds its own native reference, must be released by the caller, and stays
// valid after the array is released.
func (a *DataArray) Get(i int) (*DataObj, bool) {
	if a == nil || a.raw == 0 || i < 0 {
		return nil, false
	}
	raw := obsDataArrayItem(a.raw, uintptr(i))
	if raw == 0 {
		return nil, false
	}
	return wrapDataObj(raw), true
}

// PushBack appends obj and returns its index, or -1 when either handle is
// released. The array takes its own reference; obj still belongs to the
// caller.
func (a *DataArray) PushBack(obj *DataObj) int {
	if a == nil || a.raw == 0 || obj == nil || obj.raw == 0 {
		return -1
	}
	return int(obsDataArrayPushBack(a.raw, obj.raw))
}

// Insert places obj at index i, shifting later elements up. i may equal
// Len, which appends. Indexes beyond that are a no-op; the native call does
// not bounds-check them.
func (a *DataArray) Insert(i int, obj *DataObj) {
	if a == nil || a.raw == 0 || obj == nil || obj.raw == 0 || i < 0 || i > a.Len() {
		return
	}
	obsDataArrayInsert(a.raw, uintptr(i), obj.raw)
}

// Erase removes the element at index i, shifting later elements down.
// Out-of-range indexes are a no-op.
func (a *DataArray) Erase(i int) {
	if a == nil || a.raw == 0 || i < 0 || i >= a.Len() {
		return
	}
	obsDataArrayErase(a.raw, uintptr(i))
}

// Raw exposes the native handle for interop with other libobs bindings. The
// reference still belongs to the wrapper; callers must not release it.
func (a *DataArray) Raw() uintptr {
	if a == nil {
		return 0
	}
	return a.raw
}

// Release drops the wrapper's native reference. Only the first call has an
// effect; elements extracted with Get are unaffected.
func (a *DataArray) Release() {
	if a == nil || a.raw == 0 {
		return
	}
	trackFree(a.raw)
	obsDataArrayRelease(a.raw)
	a.raw = 0
}
