// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"fmt"
)

const DefaultSqlState = "HY000"

const (
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102

	// Group 2: numeric and functions
	ErrDivByZero     uint16 = 20200
	ErrOutOfRange    uint16 = 20201
	ErrDataTruncated uint16 = 20202
	ErrInvalidArg    uint16 = 20203

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301
	ErrParseError   uint16 = 20303

	// Group 4: unexpected state and io errors
	ErrInvalidState  uint16 = 20400
	ErrFileNotFound  uint16 = 20405
	ErrUnexpectedEOF uint16 = 20407

	// Group End: max value of error code
	ErrEnd uint16 = 65535
)

type errorMsgItem struct {
	sqlStates        []string
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]errorMsgItem{
	ErrInternal:      {[]string{DefaultSqlState}, "internal error: %s"},
	ErrNYI:           {[]string{DefaultSqlState}, "%s is not yet implemented"},
	ErrDivByZero:     {[]string{"22012"}, "division by zero"},
	ErrOutOfRange:    {[]string{"22003"}, "data out of range: data type %s, %s"},
	ErrDataTruncated: {[]string{"22003"}, "data truncated: data type %s, %s"},
	ErrInvalidArg:    {[]string{DefaultSqlState}, "invalid argument %s, bad value %s"},
	ErrBadConfig:     {[]string{DefaultSqlState}, "invalid configuration: %s"},
	ErrInvalidInput:  {[]string{DefaultSqlState}, "invalid input: %s"},
	ErrParseError:    {[]string{DefaultSqlState}, "parse error: %s"},
	ErrInvalidState:  {[]string{DefaultSqlState}, "invalid state %s"},
	ErrFileNotFound:  {[]string{DefaultSqlState}, "file %s is not found"},
	ErrUnexpectedEOF: {[]string{DefaultSqlState}, "unexpected end of file %s"},
}

func newError(code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("missing error message for error code %d", code))
	}
	if len(args) == 0 {
		return &Error{
			code:     code,
			message:  item.errorMsgOrFormat,
			sqlState: item.sqlStates[0],
		}
	}
	return &Error{
		code:     code,
		message:  fmt.Sprintf(item.errorMsgOrFormat, args...),
		sqlState: item.sqlStates[0],
	}
}

type Error struct {
	code     uint16
	message  string
	sqlState string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) SqlState() string {
	return e.sqlState
}

func (e *Error) Succeeded() bool {
	return e.code == Ok
}

func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}
	me, ok := e.(*Error)
	if !ok {
		// This is not a moerr
		return false
	}
	return me.code == rc
}

func NewInternalErrorNoCtx(msg string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(msg, args...))
}

func NewNYINoCtx(msg string, args ...any) *Error {
	return newError(ErrNYI, fmt.Sprintf(msg, args...))
}

func NewDivByZeroNoCtx() *Error {
	return newError(ErrDivByZero)
}

func NewOutOfRangeNoCtx(typ string, msg string, args ...any) *Error {
	return newError(ErrOutOfRange, typ, fmt.Sprintf(msg, args...))
}

func NewDataTruncatedNoCtx(typ string, msg string, args ...any) *Error {
	return newError(ErrDataTruncated, typ, fmt.Sprintf(msg, args...))
}

func NewInvalidArgNoCtx(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewBadConfigNoCtx(msg string, args ...any) *Error {
	return newError(ErrBadConfig, fmt.Sprintf(msg, args...))
}

func NewInvalidInputNoCtxf(msg string, args ...any) *Error {
	return newError(ErrInvalidInput, fmt.Sprintf(msg, args...))
}

func NewParseErrorNoCtx(msg string, args ...any) *Error {
	return newError(ErrParseError, fmt.Sprintf(msg, args...))
}

func NewInvalidStateNoCtx(msg string, args ...any) *Error {
	return newError(ErrInvalidState, fmt.Sprintf(msg, args...))
}

func NewFileNotFoundNoCtx(f string) *Error {
	return newError(ErrFileNotFound, f)
}

func NewUnexpectedEOFNoCtx(f string) *Error {
	return newError(ErrUnexpectedEOF, f)
}
