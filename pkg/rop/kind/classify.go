package kind

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// Kinded is implemented by every classified error.
type Kinded interface {
	Kind() Kind
}

// Of returns the kind of the first classified error in err's chain, or Other.
// Kinds outside the declared set are reported as Other.
func Of(err error) Kind {
	if err == nil {
		return Other
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind().normalize()
	}
	return Other
}

// Is reports whether err classifies as k.
func Is(err error, k Kind) bool {
	return err != nil && Of(err) == k
}

// Classify maps a raw cause to a kind. Already classified errors keep their
// kind; platform and context errors are recognised; everything else is Other.
func Classify(err error) Kind {
	if err == nil {
		return Other
	}

	var k Kinded
	if errors.As(err, &k) {
		return k.Kind().normalize()
	}

	switch {
	case errors.Is(err, context.Canceled):
		return Interrupted
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return TimedOut
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return InvalidInput
	case errors.Is(err, fs.ErrClosed):
		return Unavailable
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classifyErrno(errno)
	}
	return Other
}

func classifyErrno(errno syscall.Errno) Kind {
	switch errno {
	case syscall.ENOENT:
		return NotFound
	case syscall.EACCES, syscall.EPERM, syscall.EROFS:
		return PermissionDenied
	case syscall.EEXIST:
		return AlreadyExists
	case syscall.EINVAL, syscall.ENAMETOOLONG:
		return InvalidInput
	case syscall.ETIMEDOUT:
		return TimedOut
	case syscall.EINTR:
		return Interrupted
	case syscall.ENOTSUP:
		return Unsupported
	case syscall.ECONNREFUSED, syscall.EBADF:
		return Unavailable
	default:
		return Other
	}
}
