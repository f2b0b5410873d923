package obs

import "testing"

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		typ  DataType
		want string
	}{
		{DataTypeString, "String"},
		{DataTypeInt, "Int"},
		{DataTypeDouble, "Double"},
		{DataTypeBoolean, "Boolean"},
		{DataTypeObject, "Object"},
		{DataTypeArray, "Array"},
		{DataType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("DataType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestDataTypeFromNative(t *testing.T) {
	tests := []struct {
		name    string
		typ     int32
		numType int32
		want    DataType
	}{
		{"string", obsDataString, obsDataNumInvalid, DataTypeString},
		{"int", obsDataNumber, obsDataNumInt, DataTypeInt},
		{"double", obsDataNumber, obsDataNumDouble, DataTypeDouble},
		{"boolean", obsDataBoolean, obsDataNumInvalid, DataTypeBoolean},
		{"object", obsDataObject, obsDataNumInvalid, DataTypeObject},
		{"array", obsDataArray, obsDataNumInvalid, DataTypeArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dataTypeFromNative(tt.typ, tt.numType); got != tt.want {
				t.Errorf("dataTypeFromNative(%d, %d) = %v, want %v", tt.typ, tt.numType, got, tt.want)
			}
		})
	}
}

func TestDataTypeFromNativePanics(t *testing.T) {
	tests := []struct {
		name    string
		typ     int32
		numType int32
	}{
		{"null", obsDataNull, obsDataNumInvalid},
		{"unknown type", 99, obsDataNumInvalid},
		{"number with invalid numtype", obsDataNumber, obsDataNumInvalid},
		{"number with unknown numtype", obsDataNumber, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("dataTypeFromNative(%d, %d) did not panic", tt.typ, tt.numType)
				}
			}()
			dataTypeFromNative(tt.typ, tt.numType)
		})
	}
}
