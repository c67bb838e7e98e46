package cli

import "errors"

// ErrUsage marks operator-facing errors: bad flags, bad config, unusable
// input. main prints these without a stack of wrapped context.
var ErrUsage = errors.New("cli usage error")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}
