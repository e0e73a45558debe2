// Package zerr implements the evaluator's error sum type and the trace of
// navigation frames that explains where, inside a nested term, a failure
// occurred (spec §7).
package zerr

import (
	"fmt"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zid"
)

// Namespace groups this package's structured error fields, in the style
// ygrebnov-model uses errorc.Namespace/errorc.KeyFactory to group its own.
const namespaceName = "zcore.eval"

var (
	errNotAMap          = errorc.Namespace(namespaceName).NewError("not a map")
	errNotAnArray       = errorc.Namespace(namespaceName).NewError("not an array")
	errNotAString       = errorc.Namespace(namespaceName).NewError("not a string")
	errMissingKey       = errorc.Namespace(namespaceName).NewError("missing key")
	errParseIdentifier  = errorc.Namespace(namespaceName).NewError("parse identifier")
	errWrongType        = errorc.Namespace(namespaceName).NewError("wrong type")
	errUnimplemented    = errorc.Namespace(namespaceName).NewError("unimplemented")
	errTestSuiteFailed  = errorc.Namespace(namespaceName).NewError("test suite failed")
	errTestResultInfo   = errorc.Namespace(namespaceName).NewError("test result info")
)

var fieldKey = errorc.KeyFactory(namespaceName)

var (
	fieldMissingKey = fieldKey("key")
	fieldFound      = fieldKey("found_type")
	fieldExpected   = fieldKey("expected_type")
	fieldDetail     = fieldKey("detail")
)

// Kind discriminates the error variants of spec §7. KindTraced marks the
// wrapper values built by Trace and WithFrame.
type Kind int

const (
	KindNotAMap Kind = iota
	KindNotAnArray
	KindNotAString
	KindMissingKey
	KindParseIdentifier
	KindWrongType
	KindUnimplemented
	KindTestSuiteFailed
	KindTestResultInfo
	KindTraced
)

// FrameKind discriminates the five navigation-frame shapes of spec §7.
type FrameKind int

const (
	FrameReference FrameKind = iota
	FrameInsideMap
	FrameInsideArray
	FrameProcessingResult
	FrameInsideInput
)

// Frame is a single step on the navigation path through nested terms that
// led to a failure, pushed bottom-up as the error propagates outward.
type Frame struct {
	Kind  FrameKind
	Key   zid.ID    // InsideMap, Reference
	Index int       // InsideArray
	Term  term.Term // ProcessingResult
	Name  string    // InsideInput
}

func (f Frame) String() string {
	switch f.Kind {
	case FrameReference:
		return fmt.Sprintf("dereferencing %s", f.Key)
	case FrameInsideMap:
		return fmt.Sprintf("inside %s", f.Key)
	case FrameInsideArray:
		return fmt.Sprintf("at array position %d", f.Index)
	case FrameProcessingResult:
		return fmt.Sprintf("processing result %s", term.DebugString(f.Term))
	case FrameInsideInput:
		return fmt.Sprintf("inside %s", f.Name)
	default:
		return "unknown frame"
	}
}

// Error is the evaluator's error type. A leaf Error carries one of the
// Kind variants above; Trace and WithFrame build new outer Error values
// that Unwrap back to the one they wrap, so errors.As/errors.Is work
// against any layer of the chain.
type Error struct {
	kind Kind

	// leaf payloads, populated according to kind
	missingKey    zid.ID
	parseCause    error
	foundType     zid.ID
	expectedType  zid.ID
	detail        string
	actual        term.Term

	// wrapper payloads
	message string
	frame   *Frame
	inner   error

	base error // the errorc-decorated sentinel backing Error()'s message
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.kind {
	case KindTraced:
		if e.frame != nil {
			return fmt.Sprintf("%s: %s", e.frame, e.inner)
		}
		return fmt.Sprintf("%s: %s", e.message, e.inner)
	case KindTestResultInfo:
		return fmt.Sprintf("test result %s: %s", term.DebugString(e.actual), e.inner)
	default:
		if e.base != nil {
			return e.base.Error()
		}
		return e.detail
	}
}

// Unwrap exposes the wrapped cause, if any, for errors.As/errors.Is.
func (e *Error) Unwrap() error {
	if e.inner != nil {
		return e.inner
	}
	return e.parseCause
}

// Kind returns the leaf kind of e itself (not of its wrapped cause).
func (e *Error) Kind() Kind { return e.kind }

// MissingKeyID returns the identifier of a KindMissingKey error.
func (e *Error) MissingKeyID() zid.ID { return e.missingKey }

// WrongTypes returns the found/expected tags of a KindWrongType error.
func (e *Error) WrongTypes() (found, expected zid.ID) { return e.foundType, e.expectedType }

// Actual returns the evaluated result carried by TestSuiteFailed/TestResultInfo.
func (e *Error) Actual() term.Term { return e.actual }

// Root walks the Unwrap chain to the innermost (leaf) *Error.
func Root(err error) *Error {
	var last *Error
	for err != nil {
		if ze, ok := err.(*Error); ok {
			last = ze
			err = ze.Unwrap()
			continue
		}
		break
	}
	return last
}

// Frames walks the chain collecting pushed frames in bottom-up (push)
// order — the innermost (first-pushed) frame first.
func Frames(err error) []Frame {
	var collected []Frame
	for err != nil {
		ze, ok := err.(*Error)
		if !ok {
			break
		}
		if ze.frame != nil {
			collected = append(collected, *ze.frame)
		}
		err = ze.Unwrap()
	}
	// collected is outermost-first (as walked); reverse to bottom-up order.
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected
}

// Display renders err with its frames reversed (most recent context
// first), per spec §7: "Frames are emitted in bottom-up order and
// reversed for display."
func Display(err error) string {
	frames := Frames(err)
	var b strings.Builder
	b.WriteString(Root(err).Error())
	for i := len(frames) - 1; i >= 0; i-- {
		b.WriteString("\n  while ")
		b.WriteString(frames[i].String())
	}
	return b.String()
}

// Wrap converts the small shape/missing-key error types from package
// term into the evaluator's Error sum type. Errors of any other type
// (including *Error itself) pass through unchanged.
func Wrap(err error) error {
	switch e := err.(type) {
	case *term.ShapeError:
		switch e.Want {
		case "map":
			return NotAMap()
		case "array":
			return NotAnArray()
		case "string":
			return NotAString()
		}
	case *term.MissingKeyError:
		return MissingKey(e.ID)
	}
	return err
}

// --- leaf constructors ---

func NotAMap() *Error { return &Error{kind: KindNotAMap, base: errNotAMap} }

func NotAnArray() *Error { return &Error{kind: KindNotAnArray, base: errNotAnArray} }

func NotAString() *Error { return &Error{kind: KindNotAString, base: errNotAString} }

func MissingKey(id zid.ID) *Error {
	return &Error{
		kind:       KindMissingKey,
		missingKey: id,
		base:       errorc.With(errMissingKey, errorc.String(fieldMissingKey, id.String())),
	}
}

func ParseIdentifier(cause error) *Error {
	return &Error{
		kind:       KindParseIdentifier,
		parseCause: cause,
		base:       errorc.With(errParseIdentifier, errorc.Error(fieldDetail, cause)),
	}
}

func WrongType(found, expected zid.ID) *Error {
	return &Error{
		kind:         KindWrongType,
		foundType:    found,
		expectedType: expected,
		base: errorc.With(errWrongType,
			errorc.String(fieldFound, found.String()),
			errorc.String(fieldExpected, expected.String()),
		),
	}
}

func Unimplemented(detail string) *Error {
	return &Error{
		kind:   KindUnimplemented,
		detail: detail,
		base:   errorc.With(errUnimplemented, errorc.String(fieldDetail, detail)),
	}
}

func TestSuiteFailed(actual term.Term) *Error {
	return &Error{kind: KindTestSuiteFailed, actual: actual, base: errTestSuiteFailed}
}

func TestResultInfo(actual term.Term, inner error) *Error {
	return &Error{kind: KindTestResultInfo, actual: actual, inner: inner, base: errTestResultInfo}
}

// --- wrapper constructors ---

// Trace wraps err with a free-text narrative step, mirroring the
// original implementation's `.trace(message)` call sites that do not
// decompose into one of the five structured frame kinds.
func Trace(err error, message string) *Error {
	return &Error{kind: KindTraced, message: message, inner: err}
}

// WithFrame wraps err with a structured navigation frame.
func WithFrame(err error, f Frame) *Error {
	return &Error{kind: KindTraced, frame: &f, inner: err}
}

// InsideMap pushes a frame recording descent into map key id.
func InsideMap(err error, id zid.ID) *Error {
	return WithFrame(err, Frame{Kind: FrameInsideMap, Key: id})
}

// InsideArray pushes a frame recording descent into array index i.
func InsideArray(err error, i int) *Error {
	return WithFrame(err, Frame{Kind: FrameInsideArray, Index: i})
}

// Reference pushes a frame recording a dereference of id.
func Reference(err error, id zid.ID) *Error {
	return WithFrame(err, Frame{Kind: FrameReference, Key: id})
}

// ProcessingResult pushes a frame recording that t was being processed.
func ProcessingResult(err error, t term.Term) *Error {
	return WithFrame(err, Frame{Kind: FrameProcessingResult, Term: t})
}

// InsideInput pushes a frame recording descent into a named top-level input.
func InsideInput(err error, name string) *Error {
	return WithFrame(err, Frame{Kind: FrameInsideInput, Name: name})
}
