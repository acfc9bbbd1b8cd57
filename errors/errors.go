// Package errors defines the two kinds of failure the front end reports:
// user syntax errors, which mean the input is bad, and internal errors,
// which mean the parser is.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ztrue/tracerr"

	"github.com/pontaoski/tawac/types"
)

// Error is implemented by every positioned front end error. Message is the
// bare text, Error the display form with the caret diagnostic.
type Error interface {
	error
	Message() string
	Location() types.Position
}

// SyntaxError is raised when the input violates the lexical grammar, the
// statement grammar or the descriptor rules.
type SyntaxError struct {
	Msg   string
	Pos   types.Position
	Cause error
}

func New(pos types.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrap keeps cause reachable through Unwrap while reporting at pos.
func Wrap(cause error, pos types.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos, Cause: cause}
}

func (e *SyntaxError) Message() string {
	if e.Cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + rootMessage(e.Cause)
}

func (e *SyntaxError) Location() types.Position { return e.Pos }
func (e *SyntaxError) Error() string            { return Display(e) }
func (e *SyntaxError) Unwrap() error            { return e.Cause }

type ExpectedKindGotKind struct {
	Expected     types.TokenKind
	ExpectedText string
	Got          types.Token
}

func (e ExpectedKindGotKind) Message() string {
	want := e.Expected.Describe()
	if e.ExpectedText != "" {
		want = fmt.Sprintf("'%s'", e.ExpectedText)
	}
	return fmt.Sprintf("expected %s, got %s", want, e.Got)
}

func (e ExpectedKindGotKind) Location() types.Position { return e.Got.Location }
func (e ExpectedKindGotKind) Error() string            { return Display(e) }

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.Token
}

func (e ExpectedOneOfKindGotKind) Message() string {
	var names []string
	for _, kind := range e.Expected {
		names = append(names, kind.Describe())
	}
	return fmt.Sprintf("expected one of %s, got %s", strings.Join(names, ", "), e.Got)
}

func (e ExpectedOneOfKindGotKind) Location() types.Position { return e.Got.Location }
func (e ExpectedOneOfKindGotKind) Error() string            { return Display(e) }

// DuplicateField is raised when a parameter list or a call repeats a name.
type DuplicateField struct {
	Name string
	Pos  types.Position
}

func (e DuplicateField) Message() string {
	return fmt.Sprintf("%s specified more than once", e.Name)
}

func (e DuplicateField) Location() types.Position { return e.Pos }
func (e DuplicateField) Error() string            { return Display(e) }

// IllegalDescriptors names the descriptors a statement kind does not accept.
type IllegalDescriptors struct {
	Descriptors []string
	Statement   string
	Pos         types.Position
}

func (e IllegalDescriptors) Message() string {
	quoted := make([]string, len(e.Descriptors))
	for i, d := range e.Descriptors {
		quoted[i] = "'" + d + "'"
	}
	noun := "descriptor"
	if len(quoted) > 1 {
		noun = "descriptors"
	}
	return fmt.Sprintf("illegal %s %s for %s", noun, strings.Join(quoted, ", "), e.Statement)
}

func (e IllegalDescriptors) Location() types.Position { return e.Pos }
func (e IllegalDescriptors) Error() string            { return Display(e) }

// InternalError reports a state the parser should never reach. It is never
// caused by bad input alone.
type InternalError struct {
	Msg string
	Pos types.Position
}

func Internal(pos types.Position, format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *InternalError) Message() string          { return "internal parser error: " + e.Msg }
func (e *InternalError) Location() types.Position { return e.Pos }
func (e *InternalError) Error() string            { return Display(e) }

// IsInternal reports whether err, or anything it wraps, is an InternalError.
// Errors carrying a tracerr stack trace are looked into as well.
func IsInternal(err error) bool {
	var internal *InternalError
	return stderrors.As(err, &internal) || stderrors.As(tracerr.Unwrap(err), &internal)
}

// AsError finds the positioned error inside err, if any.
func AsError(err error) (Error, bool) {
	var e Error
	if stderrors.As(err, &e) || stderrors.As(tracerr.Unwrap(err), &e) {
		return e, true
	}
	return nil, false
}

// Message is the bare message of a positioned error, and Error() for
// anything else.
func Message(err error) string {
	if e, ok := AsError(err); ok {
		return e.Message()
	}
	return err.Error()
}

// Caret renders the fixed two-line diagnostic for pos:
//
//	12: x = = 1
//	        ^
func Caret(pos types.Position) string {
	prefix := fmt.Sprintf("%d: ", pos.Line)
	return prefix + pos.LineText + "\n" + strings.Repeat(" ", len(prefix)+pos.Column) + "^"
}

// Display formats err with its file, line and caret diagnostic.
func Display(err Error) string {
	pos := err.Location()
	if !pos.IsValid() {
		return err.Message()
	}
	filename := pos.Filename
	if filename == "" {
		filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d: %s\n%s", filename, pos.Line, err.Message(), Caret(pos))
}

func rootMessage(err error) string {
	if e, ok := err.(Error); ok {
		return e.Message()
	}
	return err.Error()
}
