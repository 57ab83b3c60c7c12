package vkinit

import "fmt"

// Result is a native driver result code (VkResult).
type Result int32

const (
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	EventSet                  Result = 3
	EventReset                Result = 4
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorMemoryMapFailed      Result = -5
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorTooManyObjects       Result = -10
	ErrorFormatNotSupported   Result = -11
	ErrorFragmentedPool       Result = -12
	ErrorUnknown              Result = -13
	ErrorValidationFailed     Result = -1000011001
)

var resultNames = map[Result]string{
	Success:                   "SUCCESS",
	NotReady:                  "NOT_READY",
	Timeout:                   "TIMEOUT",
	EventSet:                  "EVENT_SET",
	EventReset:                "EVENT_RESET",
	Incomplete:                "INCOMPLETE",
	ErrorOutOfHostMemory:      "ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:    "ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed: "ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:           "ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:      "ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:      "ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:  "ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:    "ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:   "ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:       "ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:   "ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:       "ERROR_FRAGMENTED_POOL",
	ErrorUnknown:              "ERROR_UNKNOWN",
	ErrorValidationFailed:     "ERROR_VALIDATION_FAILED_EXT",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

// Error makes a non-success Result usable as an error value.
func (r Result) Error() string {
	return "vulkan: " + r.String()
}
