package vkinit

const (
	// KhronosValidationLayer is the standard validation layer shipped with the SDK.
	KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"

	// DebugUtilsExtensionName is the instance extension needed for the
	// diagnostic messenger.
	DebugUtilsExtensionName = "VK_EXT_debug_utils"
)

// ValidationConfig describes whether diagnostics are active and which layers
// they need. It is fixed per build and passed by value to the components that
// consult it.
type ValidationConfig struct {
	Enabled            bool
	RequiredLayerNames []string
}

// DefaultValidation returns the build's validation configuration. Diagnostics
// are on unless the module is built with the release tag.
func DefaultValidation() ValidationConfig {
	return ValidationConfig{
		Enabled:            DiagnosticsEnabled,
		RequiredLayerNames: []string{KhronosValidationLayer},
	}
}

// enabledLayers is the layer list handed to the driver.
func (c ValidationConfig) enabledLayers() []string {
	if !c.Enabled {
		return nil
	}
	return append([]string(nil), c.RequiredLayerNames...)
}
