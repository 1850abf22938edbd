package daqerr

// Check converts a status code into the error or warning taxonomy at the
// transport boundary. message is resolved lazily since looking up the
// driver's text is itself a call.
//
// Negative codes return a *DriverError. Positive codes are routed through the
// warning filters and only return an error when a filter promotes them.
func Check(code Code, message func(Code) string) error {
	switch {
	case code == Success:
		return nil
	case code < 0:
		msg := ""
		if message != nil {
			msg = message(code)
		}
		return &DriverError{Code: code, Message: msg}
	default:
		msg := ""
		if message != nil {
			msg = message(code)
		}
		return Warn(&DriverWarning{Code: code, Message: msg})
	}
}
