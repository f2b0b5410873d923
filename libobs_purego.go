//go:build darwin || linux

// Dynamic loading of libobs via purego. Everything builds with
// CGO_ENABLED=0 and needs no OBS headers at compile time.

package obs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libobsOnce    sync.Once
	libobsHandle  uintptr
	libobsInitErr error
	libobsLoaded  bool
	libobsPath    string
)

// ErrLibraryNotFound is returned by Load when no candidate location yields a
// loadable libobs.
var ErrLibraryNotFound = errors.New("libobs not found in any standard location")

// libobs function pointers
var (
	// obs_data lifecycle
	obsDataCreate                 func() uintptr
	obsDataCreateFromJSON         func(jsonString uintptr) uintptr
	obsDataCreateFromJSONFile     func(jsonFile uintptr) uintptr
	obsDataCreateFromJSONFileSafe func(jsonFile, backupExt uintptr) uintptr
	obsDataRelease                func(data uintptr)

	// serialization
	obsDataGetJSON       func(data uintptr) uintptr
	obsDataGetJSONPretty func(data uintptr) uintptr // optional, absent from older releases
	obsDataSaveJSON      func(data, file uintptr) bool
	obsDataSaveJSONSafe  func(data, file, tempExt, backupExt uintptr) bool

	// mutation
	obsDataApply func(target, applyData uintptr)
	obsDataErase func(data, name uintptr)
	obsDataClear func(data uintptr)

	// user values
	obsDataSetString func(data, name, val uintptr)
	obsDataSetInt    func(data, name uintptr, val int64)
	obsDataSetDouble func(data, name uintptr, val float64)
	obsDataSetBool   func(data, name uintptr, val bool)
	obsDataSetObj    func(data, name, obj uintptr)
	obsDataSetArray  func(data, name, array uintptr)

	// schema defaults
	obsDataSetDefaultString func(data, name, val uintptr)
	obsDataSetDefaultInt    func(data, name uintptr, val int64)
	obsDataSetDefaultDouble func(data, name uintptr, val float64)
	obsDataSetDefaultBool   func(data, name uintptr, val bool)
	obsDataSetDefaultObj    func(data, name, obj uintptr)

	obsDataHasUserValue    func(data, name uintptr) bool
	obsDataHasDefaultValue func(data, name uintptr) bool

	// item handles
	obsDataFirst         func(data uintptr) uintptr
	obsDataItemByname    func(data, name uintptr) uintptr
	obsDataItemNext      func(item uintptr) bool // obs_data_item_t **
	obsDataItemRelease   func(item uintptr)      // obs_data_item_t **
	obsDataItemGetName   func(item uintptr) uintptr
	obsDataItemGettype   func(item uintptr) int32
	obsDataItemNumtype   func(item uintptr) int32
	obsDataItemGetString func(item uintptr) uintptr
	obsDataItemGetInt    func(item uintptr) int64
	obsDataItemGetDouble func(item uintptr) float64
	obsDataItemGetBool   func(item uintptr) bool
	obsDataItemGetObj    func(item uintptr) uintptr
	obsDataItemGetArray  func(item uintptr) uintptr

	// obs_data_array
	obsDataArrayCreate   func() uintptr
	obsDataArrayRelease  func(array uintptr)
	obsDataArrayCount    func(array uintptr) uintptr
	obsDataArrayItem     func(array uintptr, idx uintptr) uintptr
	obsDataArrayPushBack func(array, obj uintptr) uintptr
	obsDataArrayInsert   func(array uintptr, idx uintptr, obj uintptr)
	obsDataArrayErase    func(array uintptr, idx uintptr)

	// base
	obsGetVersionString func() uintptr
	baseSetLogHandler   func(handler, param uintptr)
)

// Load loads libobs and registers its symbols. It is safe to call from
// multiple goroutines; only the first call does work. Constructors call it
// lazily, so calling Load directly is only needed to check availability up
// front or to surface the underlying error.
func Load() error {
	libobsOnce.Do(func() {
		libobsInitErr = loadLibobsLib()
		if libobsInitErr == nil {
			libobsLoaded = true
		}
	})
	return libobsInitErr
}

func loadLibobsLib() error {
	paths := libobsCandidates()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			libobsHandle = handle
			if err := registerLibobsSymbols(); err != nil {
				purego.Dlclose(handle)
				libobsHandle = 0
				lastErr = err
				continue
			}
			libobsPath = path
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("%w: last attempt: %v", ErrLibraryNotFound, lastErr)
	}
	return ErrLibraryNotFound
}

// libobsNames returns the shared-library names to try, most specific first.
// Linux distributions ship versioned sonames without the dev symlink, so the
// plain name alone is not enough.
func libobsNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libobs.dylib", "libobs.framework/Versions/A/libobs"}
	default:
		return []string{
			"libobs.so",
			"libobs.so.31",
			"libobs.so.30",
			"libobs.so.1",
			"libobs.so.0",
		}
	}
}

func libobsCandidates() []string {
	var paths []string
	names := libobsNames()

	// Environment overrides
	if envPath := os.Getenv("OBS_LIBRARY_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}
	if envDir := os.Getenv("OBS_LIBRARY_DIR"); envDir != "" {
		for _, name := range names {
			paths = append(paths, filepath.Join(envDir, name))
		}
	}

	// Relative to the executable (apps that bundle libobs)
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		for _, name := range names {
			paths = append(paths,
				filepath.Join(exeDir, name),
				filepath.Join(exeDir, "..", "lib", name),
			)
		}
	}

	// Well-known OBS Studio install locations
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"/Applications/OBS.app/Contents/Frameworks/libobs.framework/Versions/A/libobs",
			"/opt/homebrew/lib/libobs.dylib",
			"/usr/local/lib/libobs.dylib",
		)
	case "linux":
		dirs := []string{
			"/usr/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/usr/local/lib",
		}
		for _, dir := range dirs {
			for _, name := range names {
				paths = append(paths, filepath.Join(dir, name))
			}
		}
	}

	// Bare names last: let the dynamic loader search its own path
	paths = append(paths, names...)

	return paths
}

// registerLibobsSymbols binds every required obs_data symbol. RegisterLibFunc
// panics when a symbol is missing; the recover converts that into an error so
// the loader can fall through to the next candidate library.
func registerLibobsSymbols() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("libobs symbol registration failed: %v", r)
		}
	}()

	// Lifecycle
	purego.RegisterLibFunc(&obsDataCreate, libobsHandle, "obs_data_create")
	purego.RegisterLibFunc(&obsDataCreateFromJSON, libobsHandle, "obs_data_create_from_json")
	purego.RegisterLibFunc(&obsDataCreateFromJSONFile, libobsHandle, "obs_data_create_from_json_file")
	purego.RegisterLibFunc(&obsDataCreateFromJSONFileSafe, libobsHandle, "obs_data_create_from_json_file_safe")
	purego.RegisterLibFunc(&obsDataRelease, libobsHandle, "obs_data_release")

	// Serialization
	purego.RegisterLibFunc(&obsDataGetJSON, libobsHandle, "obs_data_get_json")
	purego.RegisterLibFunc(&obsDataSaveJSON, libobsHandle, "obs_data_save_json")
	purego.RegisterLibFunc(&obsDataSaveJSONSafe, libobsHandle, "obs_data_save_json_safe")

	// Mutation
	purego.RegisterLibFunc(&obsDataApply, libobsHandle, "obs_data_apply")
	purego.RegisterLibFunc(&obsDataErase, libobsHandle, "obs_data_erase")
	purego.RegisterLibFunc(&obsDataClear, libobsHandle, "obs_data_clear")

	// User values
	purego.RegisterLibFunc(&obsDataSetString, libobsHandle, "obs_data_set_string")
	purego.RegisterLibFunc(&obsDataSetInt, libobsHandle, "obs_data_set_int")
	purego.RegisterLibFunc(&obsDataSetDouble, libobsHandle, "obs_data_set_double")
	purego.RegisterLibFunc(&obsDataSetBool, libobsHandle, "obs_data_set_bool")
	purego.RegisterLibFunc(&obsDataSetObj, libobsHandle, "obs_data_set_obj")
	purego.RegisterLibFunc(&obsDataSetArray, libobsHandle, "obs_data_set_array")

	// Schema defaults
	purego.RegisterLibFunc(&obsDataSetDefaultString, libobsHandle, "obs_data_set_default_string")
	purego.RegisterLibFunc(&obsDataSetDefaultInt, libobsHandle, "obs_data_set_default_int")
	purego.RegisterLibFunc(&obsDataSetDefaultDouble, libobsHandle, "obs_data_set_default_double")
	purego.RegisterLibFunc(&obsDataSetDefaultBool, libobsHandle, "obs_data_set_default_bool")
	purego.RegisterLibFunc(&obsDataSetDefaultObj, libobsHandle, "obs_data_set_default_obj")

	purego.RegisterLibFunc(&obsDataHasUserValue, libobsHandle, "obs_data_has_user_value")
	purego.RegisterLibFunc(&obsDataHasDefaultValue, libobsHandle, "obs_data_has_default_value")

	// Items
	purego.RegisterLibFunc(&obsDataFirst, libobsHandle, "obs_data_first")
	purego.RegisterLibFunc(&obsDataItemByname, libobsHandle, "obs_data_item_byname")
	purego.RegisterLibFunc(&obsDataItemNext, libobsHandle, "obs_data_item_next")
	purego.RegisterLibFunc(&obsDataItemRelease, libobsHandle, "obs_data_item_release")
	purego.RegisterLibFunc(&obsDataItemGetName, libobsHandle, "obs_data_item_get_name")
	purego.RegisterLibFunc(&obsDataItemGettype, libobsHandle, "obs_data_item_gettype")
	purego.RegisterLibFunc(&obsDataItemNumtype, libobsHandle, "obs_data_item_numtype")
	purego.RegisterLibFunc(&obsDataItemGetString, libobsHandle, "obs_data_item_get_string")
	purego.RegisterLibFunc(&obsDataItemGetInt, libobsHandle, "obs_data_item_get_int")
	purego.RegisterLibFunc(&obsDataItemGetDouble, libobsHandle, "obs_data_item_get_double")
	purego.RegisterLibFunc(&obsDataItemGetBool, libobsHandle, "obs_data_item_get_bool")
	purego.RegisterLibFunc(&obsDataItemGetObj, libobsHandle, "obs_data_item_get_obj")
	purego.RegisterLibFunc(&obsDataItemGetArray, libobsHandle, "obs_data_item_get_array")

	// Arrays
	purego.RegisterLibFunc(&obsDataArrayCreate, libobsHandle, "obs_data_array_create")
	purego.RegisterLibFunc(&obsDataArrayRelease, libobsHandle, "obs_data_array_release")
	purego.RegisterLibFunc(&obsDataArrayCount, libobsHandle, "obs_data_array_count")
	purego.RegisterLibFunc(&obsDataArrayItem, libobsHandle, "obs_data_array_item")
	purego.RegisterLibFunc(&obsDataArrayPushBack, libobsHandle, "obs_data_array_push_back")
	purego.RegisterLibFunc(&obsDataArrayInsert, libobsHandle, "obs_data_array_insert")
	purego.RegisterLibFunc(&obsDataArrayErase, libobsHandle, "obs_data_array_erase")

	// Base
	purego.RegisterLibFunc(&obsGetVersionString, libobsHandle, "obs_get_version_string")
	purego.RegisterLibFunc(&baseSetLogHandler, libobsHandle, "base_set_log_handler")

	// Optional symbols, absent from older libobs releases.
	registerOptional(&obsDataGetJSONPretty, "obs_data_get_json_pretty")

	return nil
}

// registerOptional registers a symbol that may not exist in the loaded
// library version, leaving the function pointer nil when it does not.
func registerOptional[T any](fn *T, name string) {
	defer func() { _ = recover() }()
	purego.RegisterLibFunc(fn, libobsHandle, name)
}

// IsAvailable reports whether libobs could be loaded.
func IsAvailable() bool {
	if err := Load(); err != nil {
		return false
	}
	return libobsLoaded
}

// LibraryPath returns the path the loaded libobs came from, or "" when the
// library is not loaded.
func LibraryPath() string {
	if !IsAvailable() {
		return ""
	}
	return libobsPath
}

// Version returns the libobs version string, e.g. "30.1.2", or "" when the
// library is not loaded.
func Version() string {
	if !IsAvailable() {
		return ""
	}
	return goString(obsGetVersionString())
}

// mustLibobs guards constructors that have no error return.
func mustLibobs() {
	if err := Load(); err != nil {
		panic(fmt.Sprintf("obs: libobs unavailable (call obs.Load to inspect the error): %v", err))
	}
}
