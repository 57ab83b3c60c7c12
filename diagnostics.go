package vkinit

import (
	"log"
	"log/slog"
	"os"
)

// Severity and category bits as defined by VK_EXT_debug_utils.
const (
	SeverityVerboseBit uint32 = 0x00000001
	SeverityInfoBit    uint32 = 0x00000010
	SeverityWarningBit uint32 = 0x00000100
	SeverityErrorBit   uint32 = 0x00001000

	CategoryGeneralBit     uint32 = 0x00000001
	CategoryValidationBit  uint32 = 0x00000002
	CategoryPerformanceBit uint32 = 0x00000004
)

// Severity labels a diagnostic message.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityVerbose
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "Verbose"
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	}
	return "Unknown"
}

// ClassifySeverity maps a single severity bit to its label. Anything else,
// including combined bits, is SeverityUnknown.
func ClassifySeverity(bits uint32) Severity {
	switch bits {
	case SeverityVerboseBit:
		return SeverityVerbose
	case SeverityInfoBit:
		return SeverityInfo
	case SeverityWarningBit:
		return SeverityWarning
	case SeverityErrorBit:
		return SeverityError
	}
	return SeverityUnknown
}

// Category labels the kind of event a diagnostic message describes.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryGeneral
	CategoryPerformance
	CategoryValidation
)

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryPerformance:
		return "Performance"
	case CategoryValidation:
		return "Validation"
	}
	return "Unknown"
}

// ClassifyCategory maps a single category bit to its label.
func ClassifyCategory(bits uint32) Category {
	switch bits {
	case CategoryGeneralBit:
		return CategoryGeneral
	case CategoryPerformanceBit:
		return CategoryPerformance
	case CategoryValidationBit:
		return CategoryValidation
	}
	return CategoryUnknown
}

// CallbackData is the payload the driver passes with each event, already
// copied out of driver-owned memory.
type CallbackData struct {
	Message         string
	MessageIDName   string
	MessageIDNumber int32
}

// DiagnosticMessage is a classified event.
type DiagnosticMessage struct {
	Severity        Severity
	Category        Category
	Text            string
	MessageIDName   string
	MessageIDNumber int32
}

// FormatDiagnostic renders msg as a single sink line.
func FormatDiagnostic(msg DiagnosticMessage) string {
	return "[Debug][" + msg.Severity.String() + "][" + msg.Category.String() + "]" + msg.Text
}

// DiagnosticCallback receives events from the driver, possibly on driver
// threads and concurrently with itself. It only reads its own fields, so it
// needs no locking beyond what the sink provides.
type DiagnosticCallback struct {
	sink    *log.Logger
	logger  *slog.Logger
	metrics *Metrics
}

// NewDiagnosticCallback returns a callback writing to sink. A nil sink means
// standard error; a nil logger means slog.Default().
func NewDiagnosticCallback(sink *log.Logger, logger *slog.Logger, metrics *Metrics) *DiagnosticCallback {
	if sink == nil {
		sink = log.New(os.Stderr, "", 0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DiagnosticCallback{sink: sink, logger: logger, metrics: metrics}
}

// Invoke handles one event. It always returns false, telling the driver not to
// abort the call that triggered the message, and never lets a panic escape.
func (c *DiagnosticCallback) Invoke(severityBits, categoryBits uint32, data CallbackData) (abort bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("diagnostic callback failed", "panic", r)
			abort = false
		}
	}()

	msg := DiagnosticMessage{
		Severity:        ClassifySeverity(severityBits),
		Category:        ClassifyCategory(categoryBits),
		Text:            data.Message,
		MessageIDName:   data.MessageIDName,
		MessageIDNumber: data.MessageIDNumber,
	}
	c.sink.Print(FormatDiagnostic(msg))
	c.metrics.diagnostic(msg)
	return false
}

// MessengerRegistration is the filter and callback chained into an instance
// creation request.
type MessengerRegistration struct {
	SeverityMask uint32
	CategoryMask uint32
	Callback     *DiagnosticCallback
}

// NewMessengerRegistration subscribes cb to every severity and category.
func NewMessengerRegistration(cb *DiagnosticCallback) *MessengerRegistration {
	return &MessengerRegistration{
		SeverityMask: SeverityVerboseBit | SeverityInfoBit | SeverityWarningBit | SeverityErrorBit,
		CategoryMask: CategoryGeneralBit | CategoryPerformanceBit | CategoryValidationBit,
		Callback:     cb,
	}
}
