package errors

import "fmt"

// Wrap prefixes err with msg, keeping it matchable with errors.Is.
// A nil err stays nil so it can be used inline:
//
//	return errors.Wrap(loadKey(path), "loading signing key")
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted prefix.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Classify tags cause with the sentinel kind. Both errors.Is(err, kind) and
// errors.Is(err, cause) hold on the result, and a nil cause yields nil.
//
//	return errors.Classify(errors.ErrIO, err, "reading %s", path)
func Classify(kind, cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", kind, fmt.Sprintf(format, args...), cause)
}
