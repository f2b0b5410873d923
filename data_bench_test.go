//go:build darwin || linux

package obs

import "testing"

// BenchmarkDataCallOverhead measures the purego call overhead on the hot
// data-object operations.
func BenchmarkDataCallOverhead(b *testing.B) {
	if !IsAvailable() {
		b.Skip("libobs not available")
	}

	b.Run("CreateRelease", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			d := NewDataObj()
			d.Release()
		}
	})

	b.Run("SetInt", func(b *testing.B) {
		d := NewDataObj()
		defer d.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Set(d, "value", int64(i))
		}
	})

	b.Run("GetInt", func(b *testing.B) {
		d := NewDataObj()
		defer d.Release()
		Set(d, "value", int64(42))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, ok := Get[int64](d, "value"); !ok {
				b.Fatal("lookup missed")
			}
		}
	})

	b.Run("GetMiss", func(b *testing.B) {
		d := NewDataObj()
		defer d.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, ok := Get[int64](d, "absent"); ok {
				b.Fatal("lookup hit")
			}
		}
	})

	b.Run("JSON", func(b *testing.B) {
		d, ok := DataFromJSON(`{"name": "scene", "width": 1920, "height": 1080, "sources": [{"id": "v4l2"}]}`)
		if !ok {
			b.Fatal("DataFromJSON failed")
		}
		defer d.Release()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, ok := d.JSON(); !ok {
				b.Fatal("JSON failed")
			}
		}
	})
}
