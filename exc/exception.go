// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

type Exception interface {
	error
	Code() string
	Message() string
}

type exc struct {
	code    string
	message string
}

// Error returns the message unchanged so that a panic carrying the
// exception prints exactly what the caller supplied.
func (e *exc) Error() string {
	return e.message
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func New(code string, message string) Exception {
	return &exc{
		message: message,
		code:    code,
	}
}
