package vkinit

import (
	"fmt"
	"log/slog"
)

// LayerDescriptor is one entry of the driver's instance layer list.
type LayerDescriptor struct {
	Name                  string
	Description           string
	SpecVersion           uint32
	ImplementationVersion uint32
}

// LayerVerifier confirms that every layer required by a ValidationConfig is
// offered by the driver. It never mutates driver state.
type LayerVerifier struct {
	Logger  *slog.Logger
	Metrics *Metrics
}

// VerifyLayers checks cfg against d using a default verifier.
func VerifyLayers(d Driver, cfg ValidationConfig) error {
	return (&LayerVerifier{}).Verify(d, cfg)
}

// Verify is a no-op when diagnostics are disabled. Otherwise it fails with
// ErrNoLayersAvailable on an empty layer list, or with a LayerNotFoundError
// naming the first required layer (in list order) that has no exact match.
func (v *LayerVerifier) Verify(d Driver, cfg ValidationConfig) error {
	if !cfg.Enabled {
		return nil
	}
	err := v.verify(d, cfg)
	v.Metrics.layerCheck(err)
	return err
}

func (v *LayerVerifier) verify(d Driver, cfg ValidationConfig) error {
	logger := v.logger()

	available, err := d.EnumerateInstanceLayers()
	if err != nil {
		return fmt.Errorf("enumerating instance layers: %w", err)
	}
	if len(available) == 0 {
		return ErrNoLayersAvailable
	}
	for _, l := range available {
		logger.Debug("available instance layer", "name", l.Name, "description", l.Description)
	}

	for _, required := range cfg.RequiredLayerNames {
		if !hasLayer(available, required) {
			logger.Error("required validation layer missing", "name", required)
			return &LayerNotFoundError{Name: required}
		}
	}
	logger.Debug("validation layers verified", "required", cfg.RequiredLayerNames)
	return nil
}

func (v *LayerVerifier) logger() *slog.Logger {
	if v.Logger == nil {
		return slog.Default()
	}
	return v.Logger
}

func hasLayer(layers []LayerDescriptor, name string) bool {
	for _, l := range layers {
		if l.Name == name {
			return true
		}
	}
	return false
}
