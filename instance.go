package vkinit

import (
	"errors"
	"log"
	"log/slog"
)

// Version is used to specify versions of components
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns a Vulkan compatible version representation
func (v Version) VKVersion() uint32 {
	return uint32(v.Major)<<22 | uint32(v.Minor)<<12 | uint32(v.Patch)
}

// App is used to provide information about this specific application to Vulkan
type App struct {
	// Name the name of the application
	Name string
	// EngineName the name of the engine associated with the application
	EngineName string
	// Version the version of the application
	Version Version
	// EngineVersion the version of the engine
	EngineVersion Version
	// APIVersion the expected minimum version of the Vulkan API (i.e. 1.0.0)
	APIVersion Version
}

// InstanceCreationRequest is everything the driver needs to create an
// instance. It is assembled by InstanceBuilder and consumed by a single
// CreateInstance call.
type InstanceCreationRequest struct {
	App               App
	ExtensionNames    []string
	EnabledLayerNames []string
	// Diagnostics, when set, is chained into the request so messages are
	// delivered during instance creation and destruction too.
	Diagnostics *MessengerRegistration
}

// InstanceBuilder creates instances after verifying validation layers. Build
// is the only entry point, so verification cannot be skipped.
type InstanceBuilder struct {
	driver   Driver
	config   ValidationConfig
	logger   *slog.Logger
	sink     *log.Logger
	metrics  *Metrics
	callback *DiagnosticCallback
}

// Option configures an InstanceBuilder.
type Option func(*InstanceBuilder)

// WithLogger sets the structured logger for bootstrap events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *InstanceBuilder) { b.logger = logger }
}

// WithDiagnosticSink sets where diagnostic lines are written.
func WithDiagnosticSink(sink *log.Logger) Option {
	return func(b *InstanceBuilder) { b.sink = sink }
}

// WithMetrics enables metric collection.
func WithMetrics(m *Metrics) Option {
	return func(b *InstanceBuilder) { b.metrics = m }
}

// NewInstanceBuilder returns a builder borrowing d.
func NewInstanceBuilder(d Driver, cfg ValidationConfig, opts ...Option) *InstanceBuilder {
	b := &InstanceBuilder{driver: d, config: cfg}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.callback = NewDiagnosticCallback(b.sink, b.logger, b.metrics)
	return b
}

// Callback returns the diagnostic callback registered with instances built by b.
func (b *InstanceBuilder) Callback() *DiagnosticCallback {
	return b.callback
}

// Build verifies the required layers, assembles the creation request and asks
// the driver for an instance. requestedExtensions is used as given; the
// diagnostics extension is appended when validation is enabled.
func (b *InstanceBuilder) Build(app App, requestedExtensions []string) (Instance, error) {
	verifier := &LayerVerifier{Logger: b.logger, Metrics: b.metrics}
	if err := verifier.Verify(b.driver, b.config); err != nil {
		return nil, err
	}

	req := b.request(app, requestedExtensions)
	if err := checkRequestStrings(req); err != nil {
		return nil, err
	}

	b.logger.Debug("creating instance",
		"app", req.App.Name,
		"engine", req.App.EngineName,
		"api_version", req.App.APIVersion,
		"extensions", req.ExtensionNames,
		"layers", req.EnabledLayerNames,
		"diagnostics", req.Diagnostics != nil,
	)

	instance, err := b.create(req)
	b.metrics.instanceCreation(err)
	if err != nil {
		return nil, err
	}
	b.logger.Info("instance created", "app", req.App.Name)
	return instance, nil
}

func (b *InstanceBuilder) request(app App, requestedExtensions []string) *InstanceCreationRequest {
	if app.APIVersion.Major < 1 {
		app.APIVersion.Major = 1
	}

	extensions := make([]string, 0, len(requestedExtensions)+1)
	extensions = append(extensions, requestedExtensions...)

	req := &InstanceCreationRequest{
		App:               app,
		EnabledLayerNames: b.config.enabledLayers(),
	}
	if b.config.Enabled {
		extensions = append(extensions, DebugUtilsExtensionName)
		req.Diagnostics = NewMessengerRegistration(b.callback)
	}
	req.ExtensionNames = extensions
	return req
}

func (b *InstanceBuilder) create(req *InstanceCreationRequest) (Instance, error) {
	instance, err := b.driver.CreateInstance(req)
	if err != nil {
		var res Result
		if errors.As(err, &res) {
			return nil, &InstanceCreationError{Result: res}
		}
		return nil, err
	}
	if instance == nil {
		return nil, &InstanceCreationError{Result: ErrorUnknown}
	}
	return instance, nil
}
