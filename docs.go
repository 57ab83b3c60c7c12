/*
Package vkinit bootstraps a validated Vulkan instance: it checks that the
validation layers a build needs are present, assembles the instance creation
request and wires a diagnostic callback that the driver invokes while the
instance is created, used and destroyed.

Bootstrap sequence

 1. Load the driver's dispatch table (package native: Load or LoadWith)
 2. Verify the required validation layers (skipped when validation is off)
 3. Merge the window system's required extensions with VK_EXT_debug_utils
 4. Chain the debug messenger create info into the instance create info
 5. Create the instance

Steps 2-5 happen inside InstanceBuilder.Build, so verification cannot be
skipped and no instance is returned unless every step succeeded.

Validation is a build-time decision: it is on by default and off when built
with -tags release. It is never toggled at runtime.

# Diagnostics

The driver calls the DiagnosticCallback from its own threads, possibly while
Build is still running. Every event becomes one line on standard error:

	[Debug][Warning][Validation]<message>

The callback never asks the driver to abort the call that produced a message
and never lets a panic cross back into the driver.

Native Vulkan terms

	Instance 	the vulkan runtime instance
	Layer		an optional loader component intercepting API calls, e.g. VK_LAYER_KHRONOS_validation
	Extension	an optional API surface enabled at instance creation, e.g. VK_EXT_debug_utils
	Messenger	the debug utils object delivering layer messages to the application
*/
package vkinit
