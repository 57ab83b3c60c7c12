package vkinit

//go:generate mockgen -source=driver.go -destination=mocks/mocks.go -package=mocks Driver

// Driver is the loaded dispatch table as seen by the bootstrap code. The
// process owns exactly one; everything here only borrows it.
type Driver interface {
	// EnumerateInstanceLayers lists the instance layers the loader can enable.
	EnumerateInstanceLayers() ([]LayerDescriptor, error)
	// CreateInstance materializes an instance from req. A rejection by the
	// driver is reported as a Result.
	CreateInstance(req *InstanceCreationRequest) (Instance, error)
}

// Instance is an opaque handle returned by the driver. Its destruction is
// defined by the Driver implementation that created it.
type Instance interface {
	Handle() uintptr
}
