package native

import (
	"runtime/cgo"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/celer/vkinit"
)

// Driver is the loaded Vulkan dispatch table.
type Driver struct{}

var _ vkinit.Driver = (*Driver)(nil)

// EnumerateInstanceLayers returns the instance layers known to the loader.
func (d *Driver) EnumerateInstanceLayers() ([]vkinit.LayerDescriptor, error) {
	var count uint32
	if ret := vk.EnumerateInstanceLayerProperties(&count, nil); ret != vk.Success {
		return nil, vkinit.Result(ret)
	}
	if count == 0 {
		return nil, nil
	}
	list := make([]vk.LayerProperties, count)
	if ret := vk.EnumerateInstanceLayerProperties(&count, list); ret != vk.Success {
		return nil, vkinit.Result(ret)
	}
	layers := make([]vkinit.LayerDescriptor, 0, count)
	for _, layer := range list[:count] {
		layer.Deref()
		layers = append(layers, vkinit.LayerDescriptor{
			Name:                  vk.ToString(layer.LayerName[:]),
			Description:           vk.ToString(layer.Description[:]),
			SpecVersion:           layer.SpecVersion,
			ImplementationVersion: layer.ImplementationVersion,
		})
	}
	return layers, nil
}

// EnumerateInstanceExtensions returns the names of the instance extensions
// the loader and its implicit layers provide.
func (d *Driver) EnumerateInstanceExtensions() ([]string, error) {
	var count uint32
	if ret := vk.EnumerateInstanceExtensionProperties("", &count, nil); ret != vk.Success {
		return nil, vkinit.Result(ret)
	}
	list := make([]vk.ExtensionProperties, count)
	if ret := vk.EnumerateInstanceExtensionProperties("", &count, list); ret != vk.Success {
		return nil, vkinit.Result(ret)
	}
	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// CreateInstance creates a Vulkan instance from req. When req carries a
// messenger registration its create info is chained through pNext so the
// callback also sees messages from vkCreateInstance and vkDestroyInstance.
func (d *Driver) CreateInstance(req *vkinit.InstanceCreationRequest) (vkinit.Instance, error) {
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(req.App.Name),
		ApplicationVersion: req.App.Version.VKVersion(),
		PEngineName:        safeString(req.App.EngineName),
		EngineVersion:      req.App.EngineVersion.VKVersion(),
		ApiVersion:         req.App.APIVersion.VKVersion(),
	}

	extensions := safeStrings(req.ExtensionNames)
	layers := safeStrings(req.EnabledLayerNames)

	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}

	instance := &Instance{}
	if reg := req.Diagnostics; reg != nil && reg.Callback != nil {
		instance.callback = cgo.NewHandle(reg.Callback)
		info := newMessengerCreateInfo(reg.SeverityMask, reg.CategoryMask, instance.callback)
		defer freeMessengerCreateInfo(info)
		createInfo.PNext = info
	}

	if ret := vk.CreateInstance(&createInfo, nil, &instance.VKInstance); ret != vk.Success {
		instance.release()
		return nil, vkinit.Result(ret)
	}
	if err := vk.InitInstance(instance.VKInstance); err != nil {
		vk.DestroyInstance(instance.VKInstance, nil)
		instance.release()
		return nil, err
	}
	return instance, nil
}

// Instance is an instance of the Vulkan subsystem
type Instance struct {
	// VKInstance is the native Vulkan instance object
	VKInstance vk.Instance

	callback cgo.Handle
}

// Handle returns the native VkInstance as an integer.
func (i *Instance) Handle() uintptr {
	return uintptr(unsafe.Pointer(i.VKInstance))
}

// Destroy destroys the instance. The diagnostic callback stays reachable
// until vkDestroyInstance has returned.
func (i *Instance) Destroy() error {
	vk.DestroyInstance(i.VKInstance, nil)
	i.VKInstance = nil
	i.release()
	return nil
}

func (i *Instance) release() {
	if i.callback != 0 {
		i.callback.Delete()
		i.callback = 0
	}
}
