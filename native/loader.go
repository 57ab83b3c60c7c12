package native

import (
	"errors"
	"sync"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vkinit"
)

var (
	loadOnce sync.Once
	loaded   *Driver
	loadErr  error
)

// Load resolves the Vulkan entry points from the platform's default loader
// library. The dispatch table is loaded at most once per process; later calls
// return the same Driver or the same error.
func Load() (*Driver, error) {
	return load(vk.SetDefaultGetInstanceProcAddr)
}

// LoadWith resolves the Vulkan entry points from procAddr, a
// vkGetInstanceProcAddr pointer, e.g. glfw.GetVulkanGetInstanceProcAddress().
func LoadWith(procAddr unsafe.Pointer) (*Driver, error) {
	if procAddr == nil {
		return nil, &vkinit.DriverLoadError{Err: errors.New("vkGetInstanceProcAddr is nil")}
	}
	return load(func() error {
		vk.SetGetInstanceProcAddr(procAddr)
		return nil
	})
}

func load(resolve func() error) (*Driver, error) {
	loadOnce.Do(func() {
		if err := resolve(); err != nil {
			loadErr = &vkinit.DriverLoadError{Err: err}
			return
		}
		if err := vk.Init(); err != nil {
			loadErr = &vkinit.DriverLoadError{Err: err}
			return
		}
		loaded = &Driver{}
	})
	return loaded, loadErr
}
