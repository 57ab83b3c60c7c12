/*
Package native implements vkinit.Driver on top of the system Vulkan loader.

The dispatch table is resolved through github.com/vulkan-go/vulkan, either from
the default loader library (Load) or from a vkGetInstanceProcAddr pointer
supplied by a windowing library such as glfw (LoadWith). Building this package
requires the Vulkan headers on the C include path, since the debug messenger
create info and its callback trampoline are defined in C.

	driver, err := native.Load()
	...
	instance, err := vkinit.NewInstanceBuilder(driver, vkinit.DefaultValidation()).
		Build(app, requiredExtensions)
	...
	defer instance.(*native.Instance).Destroy()
*/
package native
