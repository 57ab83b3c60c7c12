package vkinit_test

import (
	"bytes"
	"io"
	"log"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celer/vkinit"
)

func newCallback(w io.Writer, m *vkinit.Metrics) *vkinit.DiagnosticCallback {
	return vkinit.NewDiagnosticCallback(log.New(w, "", 0), slog.New(slog.NewTextHandler(io.Discard, nil)), m)
}

func TestDiagnosticLine(t *testing.T) {
	var buf bytes.Buffer
	cb := newCallback(&buf, nil)

	abort := cb.Invoke(vkinit.SeverityWarningBit, vkinit.CategoryValidationBit, vkinit.CallbackData{Message: "X"})

	assert.False(t, abort)
	assert.Equal(t, "[Debug][Warning][Validation]X\n", buf.String())
}

func TestClassification(t *testing.T) {
	severities := map[uint32]vkinit.Severity{
		vkinit.SeverityVerboseBit: vkinit.SeverityVerbose,
		vkinit.SeverityInfoBit:    vkinit.SeverityInfo,
		vkinit.SeverityWarningBit: vkinit.SeverityWarning,
		vkinit.SeverityErrorBit:   vkinit.SeverityError,
		0:                         vkinit.SeverityUnknown,
		0x2:                       vkinit.SeverityUnknown,
		vkinit.SeverityWarningBit | vkinit.SeverityErrorBit: vkinit.SeverityUnknown,
	}
	for bits, want := range severities {
		assert.Equal(t, want, vkinit.ClassifySeverity(bits), "severity bits %#x", bits)
	}

	categories := map[uint32]vkinit.Category{
		vkinit.CategoryGeneralBit:     vkinit.CategoryGeneral,
		vkinit.CategoryValidationBit:  vkinit.CategoryValidation,
		vkinit.CategoryPerformanceBit: vkinit.CategoryPerformance,
		0x8:                           vkinit.CategoryUnknown,
		vkinit.CategoryGeneralBit | vkinit.CategoryValidationBit: vkinit.CategoryUnknown,
	}
	for bits, want := range categories {
		assert.Equal(t, want, vkinit.ClassifyCategory(bits), "category bits %#x", bits)
	}
}

func TestUnknownBitsAreLabelled(t *testing.T) {
	var buf bytes.Buffer
	cb := newCallback(&buf, nil)

	cb.Invoke(0x80, 0x40, vkinit.CallbackData{Message: "odd"})

	assert.Equal(t, "[Debug][Unknown][Unknown]odd\n", buf.String())
}

type panicWriter struct{}

func (panicWriter) Write([]byte) (int, error) { panic("sink failure") }

func TestCallbackSwallowsPanics(t *testing.T) {
	cb := newCallback(panicWriter{}, nil)

	require.NotPanics(t, func() {
		abort := cb.Invoke(vkinit.SeverityErrorBit, vkinit.CategoryGeneralBit, vkinit.CallbackData{Message: "boom"})
		assert.False(t, abort)
	})
}

func TestConcurrentInvocations(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	metrics := vkinit.NewMetrics(reg)
	cb := newCallback(&buf, metrics)

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				cb.Invoke(vkinit.SeverityInfoBit, vkinit.CategoryPerformanceBit, vkinit.CallbackData{Message: "tick"})
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, workers*perWorker)
	for _, l := range lines {
		assert.Equal(t, "[Debug][Info][Performance]tick", l)
	}
	assert.Equal(t, float64(workers*perWorker),
		testutil.ToFloat64(metrics.DiagnosticMessages.WithLabelValues("Info", "Performance")))
}

func TestMessengerRegistrationSubscribesToEverything(t *testing.T) {
	reg := vkinit.NewMessengerRegistration(nil)

	assert.Equal(t, uint32(0x1111), reg.SeverityMask)
	assert.Equal(t, uint32(0x7), reg.CategoryMask)
}
