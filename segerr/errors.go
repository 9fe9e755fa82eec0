package segerr

import "errors"

// Kind classifies an Error into the pipeline's shared error taxonomy.
type Kind int

const (
	// KindInput covers missing files, bad extensions, malformed PLY
	// headers, non-triangular faces, and out-of-range vertex indices.
	KindInput Kind = iota
	// KindGeometry covers zero-area triangles and zero-length edges
	// encountered during normal computation.
	KindGeometry
	// KindConfig covers invalid CLI/pipeline configuration: levels < 1,
	// threads < 1, unknown segmenter kind.
	KindConfig
	// KindInternal covers invariant violations the pipeline should never
	// produce on valid input, such as a face-count mismatch after
	// recursive assembly.
	KindInternal
	// KindCancelled covers a user-initiated abort via context
	// cancellation.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindGeometry:
		return "geometry"
	case KindConfig:
		return "config"
	case KindInternal:
		return "internal"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error is a classified, wrapped error. Its Unwrap makes errors.Is/As see
// through to the wrapped cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func classify(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Err: err}
}

// Input classifies err as an InputError.
func Input(err error) error { return classify(KindInput, err) }

// Geometry classifies err as a GeometryError.
func Geometry(err error) error { return classify(KindGeometry, err) }

// Config classifies err as a ConfigError.
func Config(err error) error { return classify(KindConfig, err) }

// Internal classifies err as an InternalError.
func Internal(err error) error { return classify(KindInternal, err) }

// Cancelled classifies err as Cancelled.
func Cancelled(err error) error { return classify(KindCancelled, err) }

// ExitCode maps err to the process exit code specified for its Kind (0 is
// never returned here; callers only reach ExitCode when err != nil).
// Unclassified errors exit 1.
func ExitCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return 1
	}

	switch e.Kind {
	case KindInput, KindConfig:
		return 2
	case KindGeometry:
		return 3
	case KindInternal:
		return 4
	case KindCancelled:
		return 130
	default:
		return 1
	}
}
