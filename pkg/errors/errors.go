// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// Error carries a code for the response envelope and the stack where it was built.
type Error struct {
	Stack      []runtime.Frame
	InnerError error
	Code       int
	Message    string
}

func (e *Error) Error() string {
	if e.InnerError == nil {
		return fmt.Sprintf("code %d message %s", e.Code, e.Message)
	}
	return fmt.Sprintf("code %d message %s error %s", e.Code, e.Message, e.InnerError.Error())
}

// IsClientError reports whether the code blames the caller (4xxx).
func (e *Error) IsClientError() bool {
	return e.Code >= 4000 && e.Code < 5000
}

func (e *Error) Unwrap() error {
	return e.InnerError
}

func (e *Error) GetStackString() string {
	var sb strings.Builder
	for _, frame := range e.Stack {
		sb.WriteString(formatFrame(frame))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatFrame(frame runtime.Frame) string {
	funcName := ""
	if frame.Func != nil {
		funcName = frame.Func.Name()
	}
	funcNames := strings.Split(funcName, "/")
	if len(funcNames) > 0 {
		funcName = funcNames[len(funcNames)-1]
	}
	return fmt.Sprintf("%s:%d %s", frame.File, frame.Line, funcName)
}

func (e *Error) WithCode(code int) *Error {
	e.Code = code
	return e
}

func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

func (e *Error) WithMessagef(message string, args ...interface{}) *Error {
	e.Message = fmt.Sprintf(message, args...)
	return e
}

func (e *Error) WithError(err error) *Error {
	e.InnerError = err
	return e
}

func NewError() *Error {
	return newError(2)
}

func newError(callerSkip int) *Error {
	return &Error{
		Stack: callers(callerSkip),
	}
}

func WrapError(err error, message string, code int) *Error {
	return newError(2).WithCode(code).WithMessage(message).WithError(err)
}

// CodeOf returns the code of the first *Error in err's chain, or InternalError.
func CodeOf(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return InternalError
}

func IsCode(err error, code int) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}

const maxStackDepth = 10

func callers(callerSkip int) []runtime.Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(callerSkip+2, pcs)
	result := make([]runtime.Frame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for n > 0 {
		frame, more := frames.Next()
		result = append(result, frame)
		if !more {
			break
		}
	}
	return result
}
