//go:build darwin || linux

package obs

import (
	"runtime"
	"unsafe"
)

// Value is the set of Go types a data field can be read as or written from.
// Each constituent maps to exactly one DataType tag:
//
//	string                      String
//	bool                        Boolean
//	int, int8..int64,
//	uint, uint8..uint64,
//	uintptr                     Int
//	float32, float64            Double
//	*DataObj                    Object
//	*DataArray                  Array
//
// Lookups succeed only when the stored tag equals the requested type's tag;
// there is no coercion between Int and Double or any other pair of tags.
type Value interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 |
		*DataObj | *DataArray
}

// tagOf returns the DataType tag declared for T.
func tagOf[T Value]() DataType {
	var zero T
	switch any(zero).(type) {
	case string:
		return DataTypeString
	case bool:
		return DataTypeBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return DataTypeInt
	case float32, float64:
		return DataTypeDouble
	case *DataObj:
		return DataTypeObject
	case *DataArray:
		return DataTypeArray
	}
	panic("unreachable")
}

// releaseItem drops the extra reference that obs_data_item_byname and
// obs_data_first add to the item they return. The native call takes an
// obs_data_item_t** and zeroes the slot only when the refcount hits zero,
// which must not happen here: the container still holds its own reference,
// and a zeroed slot means that discipline was broken somewhere.
func releaseItem(item uintptr) {
	pp := new(uintptr)
	*pp = item
	obsDataItemRelease(uintptr(unsafe.Pointer(pp)))
	if *pp == 0 {
		panic("obs: data item refcount dropped to zero while its container still holds it")
	}
	runtime.KeepAlive(pp)
}

// itemTag resolves the runtime tag of an item handle.
func itemTag(item uintptr) DataType {
	return dataTypeFromNative(obsDataItemGettype(item), obsDataItemNumtype(item))
}

// decodeItem reads the value of an item whose tag already matched tagOf[T].
// Integer widths narrow from the native 64-bit value the same way the native
// getters themselves widen when storing. The bool result is false only in the
// degenerate case of a container item handing back a NULL nested handle.
func decodeItem[T Value](item uintptr) (T, bool) {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = goString(obsDataItemGetString(item))
	case *bool:
		*p = obsDataItemGetBool(item)
	case *int:
		*p = int(obsDataItemGetInt(item))
	case *int8:
		*p = int8(obsDataItemGetInt(item))
	case *int16:
		*p = int16(obsDataItemGetInt(item))
	case *int32:
		*p = int32(obsDataItemGetInt(item))
	case *int64:
		*p = obsDataItemGetInt(item)
	case *uint:
		*p = uint(obsDataItemGetInt(item))
	case *uint8:
		*p = uint8(obsDataItemGetInt(item))
	case *uint16:
		*p = uint16(obsDataItemGetInt(item))
	case *uint32:
		*p = uint32(obsDataItemGetInt(item))
	case *uint64:
		*p = uint64(obsDataItemGetInt(item))
	case *uintptr:
		*p = uintptr(obsDataItemGetInt(item))
	case *float32:
		*p = float32(obsDataItemGetDouble(item))
	case *float64:
		*p = obsDataItemGetDouble(item)
	case **DataObj:
		raw := obsDataItemGetObj(item)
		if raw == 0 {
			return v, false
		}
		*p = wrapDataObj(raw)
	case **DataArray:
		raw := obsDataItemGetArray(item)
		if raw == 0 {
			return v, false
		}
		*p = wrapDataArray(raw)
	}
	return v, true
}

// Get returns the value stored under name, which may come from a user value
// or a schema default. The lookup misses (ok == false) when no item exists
// under that name or when the stored tag does not match T's tag. Nested
// *DataObj and *DataArray results hold their own native reference and must be
// released by the caller; they stay valid after the parent is released.
func Get[T Value](d *DataObj, name string) (T, bool) {
	var zero T
	if d == nil || d.raw == 0 {
		return zero, false
	}

	nameBuf := cstring(name)
	item := obsDataItemByname(d.raw, cstringPtr(nameBuf))
	runtime.KeepAlive(nameBuf)
	if item == 0 {
		return zero, false
	}

	// byname added a reference on top of the container's own. Drop it right
	// away; the container keeps the item alive for the rest of the lookup.
	releaseItem(item)

	if itemTag(item) != tagOf[T]() {
		return zero, false
	}
	return decodeItem[T](item)
}

// Set stores a user value under name, replacing any previous value and
// overriding any schema default. Storing a *DataObj or *DataArray makes the
// container take its own reference; the argument still belongs to the caller.
// No-op on released containers and nil nested handles.
func Set[T Value](d *DataObj, name string, value T) {
	if d == nil || d.raw == 0 {
		return
	}

	nameBuf := cstring(name)
	namePtr := cstringPtr(nameBuf)

	switch v := any(value).(type) {
	case string:
		valBuf := cstring(v)
		obsDataSetString(d.raw, namePtr, cstringPtr(valBuf))
		runtime.KeepAlive(valBuf)
	case bool:
		obsDataSetBool(d.raw, namePtr, v)
	case int:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case int8:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case int16:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case int32:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case int64:
		obsDataSetInt(d.raw, namePtr, v)
	case uint:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case uint8:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case uint16:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case uint32:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case uint64:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case uintptr:
		obsDataSetInt(d.raw, namePtr, int64(v))
	case float32:
		obsDataSetDouble(d.raw, namePtr, float64(v))
	case float64:
		obsDataSetDouble(d.raw, namePtr, v)
	case *DataObj:
		if v == nil || v.raw == 0 {
			break
		}
		obsDataSetObj(d.raw, namePtr, v.raw)
	case *DataArray:
		if v == nil || v.raw == 0 {
			break
		}
		obsDataSetArray(d.raw, namePtr, v.raw)
	}
	runtime.KeepAlive(nameBuf)
}

// SetDefault stores a schema default under name. Defaults surface through Get
// until a user value shadows them and are excluded from JSON serialization.
// libobs has no operation for array defaults, so a *DataArray value panics.
// No-op on released containers.
func SetDefault[T Value](d *DataObj, name string, value T) {
	if d == nil || d.raw == 0 {
		return
	}

	nameBuf := cstring(name)
	namePtr := cstringPtr(nameBuf)

	switch v := any(value).(type) {
	case string:
		valBuf := cstring(v)
		obsDataSetDefaultString(d.raw, namePtr, cstringPtr(valBuf))
		runtime.KeepAlive(valBuf)
	case bool:
		obsDataSetDefaultBool(d.raw, namePtr, v)
	case int:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case int8:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case int16:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case int32:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case int64:
		obsDataSetDefaultInt(d.raw, namePtr, v)
	case uint:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case uint8:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case uint16:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case uint32:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case uint64:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case uintptr:
		obsDataSetDefaultInt(d.raw, namePtr, int64(v))
	case float32:
		obsDataSetDefaultDouble(d.raw, namePtr, float64(v))
	case float64:
		obsDataSetDefaultDouble(d.raw, namePtr, v)
	case *DataObj:
		if v == nil || v.raw == 0 {
			break
		}
		obsDataSetDefaultObj(d.raw, namePtr, v.raw)
	case *DataArray:
		panic("obs: libobs has no default-value operation for arrays")
	}
	runtime.KeepAlive(nameBuf)
}
