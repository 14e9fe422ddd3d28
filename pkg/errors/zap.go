package errors

import "go.uber.org/zap"

// ZapHandler is an ErrorHandler that forwards errors to a zap logger.
// Hosts that already run structured logging can install it once at startup:
//
//	errors.SetHandler(errors.NewZapHandler(logger))
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler writing to the given logger.
// A nil logger falls back to zap.NewNop.
func NewZapHandler(logger *zap.Logger) *ZapHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapHandler{logger: logger}
}

// HandleError logs a VesselError at error level with structured fields.
func (h *ZapHandler) HandleError(err *VesselError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Handle != "" {
		fields = append(fields, zap.String("handle", err.Handle))
	}
	h.logger.Error("vessel error", fields...)
}

// HandlePanic logs a PanicError at error level with the recovered value.
func (h *ZapHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.logger.Error("vessel panic",
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.String("stack", err.StackTrace),
	)
}
