package rangeindex

import "github.com/sirupsen/logrus"

type rangeIndexOption func(*RangeIndex) error

// Logger sets where rejected operations are reported
//
// Rejections (out of range positions, malformed snapshots) are logged at
// debug level with the index name, the offending arguments and the
// current length. Successful operations are never logged. The default
// logger discards everything.
//
// Passing a nil logger makes the constructor fail with ErrInvalidInput.
func Logger(logger logrus.FieldLogger) rangeIndexOption {
	return func(ri *RangeIndex) error {
		if logger == nil {
			return invalidInput("logger must not be nil")
		}
		ri.log = logger
		return nil
	}
}

// Name labels the index in log entries and in String(). An empty name
// makes the constructor fail with ErrInvalidInput.
func Name(name string) rangeIndexOption {
	return func(ri *RangeIndex) error {
		if name == "" {
			return invalidInput("name must not be empty")
		}
		ri.name = name
		return nil
	}
}
