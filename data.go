//go:build darwin || linux

package obs

import (
	"runtime"
	"unsafe"
)

// DataObj is a dynamically typed string-keyed container backed by a native
// obs_data_t handle. It distinguishes user values, which serialize to JSON,
// from schema defaults, which do not; Get consults both.
//
// A DataObj owns exactly one native reference and must be released exactly
// once with Release. Methods on a released (or nil) DataObj are no-ops or
// report absence.
type DataObj struct {
	raw uintptr
}

// wrapDataObj takes ownership of a native reference the caller already holds.
func wrapDataObj(raw uintptr) *DataObj {
	trackAlloc(ResDataObj, raw)
	return &DataObj{raw: raw}
}

// NewDataObj creates an empty data object. It panics when libobs cannot be
// loaded or the native allocation fails.
func NewDataObj() *DataObj {
	mustLibobs()
	raw := obsDataCreate()
	if raw == 0 {
		panic("obs: obs_data_create returned NULL")
	}
	return wrapDataObj(raw)
}

// DataFromJSON parses a JSON document into a data object. Malformed input
// reports (nil, false).
func DataFromJSON(jsonStr string) (*DataObj, bool) {
	mustLibobs()
	buf := cstring(jsonStr)
	raw := obsDataCreateFromJSON(cstringPtr(buf))
	runtime.KeepAlive(buf)
	if raw == 0 {
		return nil, false
	}
	return wrapDataObj(raw), true
}

// DataFromJSONFile loads a JSON document from path. With a non-empty
// backupExt the native loader falls back to path+"."+backupExt when the
// primary file is missing or malformed. (nil, false) when neither loads.
func DataFromJSONFile(path, backupExt string) (*DataObj, bool) {
	mustLibobs()
	pathBuf := cstring(path)
	var raw uintptr
	if backupExt == "" {
		raw = obsDataCreateFromJSONFile(cstringPtr(pathBuf))
	} else {
		extBuf := cstring(backupExt)
		raw = obsDataCreateFromJSONFileSafe(cstringPtr(pathBuf), cstringPtr(extBuf))
		runtime.KeepAlive(extBuf)
	}
	runtime.KeepAlive(pathBuf)
	if raw == 0 {
		return nil, false
	}
	return wrapDataObj(raw), true
}

// JSON serializes the user values (never defaults) to compact JSON.
// ("", false) on a released object or native serialization failure.
func (d *DataObj) JSON() (string, bool) {
	if d == nil || d.raw == 0 {
		return "", false
	}
	ptr := obsDataGetJSON(d.raw)
	if ptr == 0 {
		return "", false
	}
	return goString(ptr), true
}

// PrettyJSON serializes the user values to indented JSON. Older libobs
// releases do not export the underlying function; ("", false) when the
// loaded library lacks it.
func (d *DataObj) PrettyJSON() (string, bool) {
	if d == nil || d.raw == 0 || obsDataGetJSONPretty == nil {
		return "", false
	}
	ptr := obsDataGetJSONPretty(d.raw)
	if ptr == 0 {
		return "", false
	}
	return goString(ptr), true
}

// SaveJSON writes the user values to path as JSON, reporting whether the
// native write succeeded.
func (d *DataObj) SaveJSON(path string) bool {
	if d == nil || d.raw == 0 {
		return false
	}
	pathBuf := cstring(path)
	ok := obsDataSaveJSON(d.raw, cstringPtr(pathBuf))
	runtime.KeepAlive(pathBuf)
	return ok
}

// SaveJSONSafe writes via a temporary file and keeps the previous content as
// a backup: the data is written to path+"."+tempExt first, any existing file
// is renamed to path+"."+backupExt, and the temporary is moved into place.
// A crash mid-save therefore never leaves a truncated primary file.
func (d *DataObj) SaveJSONSafe(path, tempExt, backupExt string) bool {
	if d == nil || d.raw == 0 {
		return false
	}
	pathBuf := cstring(path)
	tempBuf := cstring(tempExt)
	backupBuf := cstring(backupExt)
	ok := obsDataSaveJSONSafe(d.raw, cstringPtr(pathBuf), cstringPtr(tempBuf), cstringPtr(backupBuf))
	runtime.KeepAlive(pathBuf)
	runtime.KeepAlive(tempBuf)
	runtime.KeepAlive(backupBuf)
	return ok
}

// Apply merges src's user values into d, overwriting on key collision and
// merging nested objects recursively. No-op when either side is released.
func (d *DataObj) Apply(src *DataObj) {
	if d == nil || d.raw == 0 || src == nil || src.raw == 0 {
		return
	}
	obsDataApply(d.raw, src.raw)
}

// Remove erases the item stored under name, user value and default alike.
// Removing a missing name is a no-op.
func (d *DataObj) Remove(name string) {
	if d == nil || d.raw == 0 {
		return
	}
	nameBuf := cstring(name)
	obsDataErase(d.raw, cstringPtr(nameBuf))
	runtime.KeepAlive(nameBuf)
}

// Clear removes every user value. Defaults survive.
func (d *DataObj) Clear() {
	if d == nil || d.raw == 0 {
		return
	}
	obsDataClear(d.raw)
}

// HasUserValue reports whether a user value (not merely a default) is stored
// under name.
func (d *DataObj) HasUserValue(name string) bool {
	if d == nil || d.raw == 0 {
		return false
	}
	nameBuf := cstring(name)
	ok := obsDataHasUserValue(d.raw, cstringPtr(nameBuf))
	runtime.KeepAlive(nameBuf)
	return ok
}

// HasDefaultValue reports whether a schema default is stored under name.
func (d *DataObj) HasDefaultValue(name string) bool {
	if d == nil || d.raw == 0 {
		return false
	}
	nameBuf := cstring(name)
	ok := obsDataHasDefaultValue(d.raw, cstringPtr(nameBuf))
	runtime.KeepAlive(nameBuf)
	return ok
}

// Each calls fn for every item in the object with its name and runtime tag.
// fn returning false stops the iteration. The traversal holds one item
// reference at a time and releases it before moving on, so fn must not
// release or clear d.
func (d *DataObj) Each(fn func(name string, typ DataType) bool) {
	if d == nil || d.raw == 0 || fn == nil {
		return
	}
	pp := new(uintptr)
	*pp = obsDataFirst(d.raw)
	for *pp != 0 {
		name := goString(obsDataItemGetName(*pp))
		typ := itemTag(*pp)
		if !fn(name, typ) {
			obsDataItemRelease(uintptr(unsafe.Pointer(pp)))
			break
		}
		// item_next releases the current reference and acquires the next.
		if !obsDataItemNext(uintptr(unsafe.Pointer(pp))) {
			break
		}
	}
	runtime.KeepAlive(pp)
}

// Raw exposes the native handle for interop with other libobs bindings. The
// reference still belongs to the wrapper; callers must not release it.
func (d *DataObj) Raw() uintptr {
	if d == nil {
		return 0
	}
	return d.raw
}

// Release drops the wrapper's native reference. Only the first call has an
// effect; the object may stay alive inside libobs if containers still
// reference it.
func (d *DataObj) Release() {
	if d == nil || d.raw == 0 {
		return
	}
	trackFree(d.raw)
	obsDataRelease(d.raw)
	d.raw = 0
}
