package obs

import "fmt"

// DataType identifies the dynamic type of a data field.
type DataType int

const (
	DataTypeString DataType = iota
	DataTypeInt
	DataTypeDouble
	DataTypeBoolean
	DataTypeObject // nested DataObj
	DataTypeArray  // nested DataArray
)

func (t DataType) String() string {
	switch t {
	case DataTypeString:
		return "String"
	case DataTypeInt:
		return "Int"
	case DataTypeDouble:
		return "Double"
	case DataTypeBoolean:
		return "Boolean"
	case DataTypeObject:
		return "Object"
	case DataTypeArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// Native type discriminants from obs-data.h.
const (
	obsDataNull    int32 = 0
	obsDataString  int32 = 1
	obsDataNumber  int32 = 2
	obsDataBoolean int32 = 3
	obsDataObject  int32 = 4
	obsDataArray   int32 = 5

	obsDataNumInvalid int32 = 0
	obsDataNumInt     int32 = 1
	obsDataNumDouble  int32 = 2
)

// dataTypeFromNative resolves the native type discriminant (and, for
// numbers, the numeric sub-discriminant) to a DataType. libobs's type set
// is closed and stable; any other value means the loaded library does not
// match these bindings, which is unrecoverable.
func dataTypeFromNative(typ, numType int32) DataType {
	switch typ {
	case obsDataString:
		return DataTypeString
	case obsDataNumber:
		switch numType {
		case obsDataNumInt:
			return DataTypeInt
		case obsDataNumDouble:
			return DataTypeDouble
		default:
			panic(fmt.Sprintf("obs: unknown obs_data_number_type %d", numType))
		}
	case obsDataBoolean:
		return DataTypeBoolean
	case obsDataObject:
		return DataTypeObject
	case obsDataArray:
		return DataTypeArray
	default:
		panic(fmt.Sprintf("obs: unknown obs_data_type %d", typ))
	}
}
