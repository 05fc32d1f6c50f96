// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"errors"
	"fmt"
)

// ErrCard is the sentinel matched by every CardError.
var ErrCard = errors.New("driver: native error")

// CardError reports errors accumulated by the native
// implementation since the last check.
type CardError struct {
	Codes []Enum
}

func (e *CardError) Error() string {
	switch len(e.Codes) {
	case 0:
		return "driver: native error"
	case 1:
		return fmt.Sprintf("driver: native error 0x%04X (%s)", uint32(e.Codes[0]), ErrorString(e.Codes[0]))
	}
	return fmt.Sprintf("driver: %d native errors, first 0x%04X (%s)", len(e.Codes), uint32(e.Codes[0]), ErrorString(e.Codes[0]))
}

// Is reports whether target is ErrCard.
func (e *CardError) Is(target error) bool { return target == ErrCard }

// maxErrors bounds how many codes CheckError drains.
// GetError may keep returning the same flag forever when
// no native context is current.
const maxErrors = 16

// CheckError drains the native error flags of gl.
// It returns nil if no error was recorded, and a
// *CardError otherwise.
func CheckError(gl GL) error {
	var codes []Enum
	for range maxErrors {
		code := gl.GetError()
		if code == NoError {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &CardError{Codes: codes}
}
