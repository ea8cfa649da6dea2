package domain

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Match with errors.Is from either cockroachdb/errors or the
// standard library: the constructors below mark the error and also expose the
// kinds through an Is method, so both chains see them.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrExtraction        = errors.New("text extraction failed")
	ErrPersistence       = errors.New("persistence failed")
	ErrConflict          = errors.New("concurrent modification")
)

// kinded carries its kinds for the standard library's errors.Is, which does
// not read cockroachdb marks.
type kinded struct {
	cause error
	kinds []error
}

func (k *kinded) Error() string { return k.cause.Error() }
func (k *kinded) Unwrap() error { return k.cause }

func (k *kinded) Is(target error) bool {
	for _, kind := range k.kinds {
		if target == kind {
			return true
		}
	}
	return false
}

func withKinds(err error, kinds ...error) error {
	err = &kinded{cause: err, kinds: kinds}
	for _, kind := range kinds {
		err = errors.Mark(err, kind)
	}
	return err
}

func NotFoundf(format string, args ...any) error {
	return withKinds(errors.Newf(format, args...), ErrNotFound)
}

func Validationf(format string, args ...any) error {
	return withKinds(errors.Newf(format, args...), ErrValidation)
}

// InvalidTransition is also a validation failure.
func InvalidTransition(from, to Status) error {
	return withKinds(errors.Newf("cannot move document from %q to %q", from, to), ErrInvalidTransition, ErrValidation)
}

func Extraction(err error, format string, args ...any) error {
	return withKinds(errors.Wrapf(err, format, args...), ErrExtraction)
}

func Persistence(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return withKinds(errors.Wrapf(err, format, args...), ErrPersistence)
}

// Conflict is also a persistence failure.
func Conflict(id string, version int64) error {
	return withKinds(errors.Newf("document %s changed since version %d", id, version), ErrConflict, ErrPersistence)
}

// Kind names the error category for logs, metrics and HTTP mapping.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrExtraction):
		return "extraction"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	}
	return "internal"
}
