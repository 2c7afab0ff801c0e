package core

import (
	"errors"
	"os"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Ecosystem: "cargo", Name: "serde"}
	if err.Error() != "cargo: package serde not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	err = &NotFoundError{Ecosystem: "cargo", Name: "serde", Version: "9"}
	if err.Error() != "cargo: package serde version 9 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := &DecodeError{Path: "/idx/se/rd/serde", Line: 3, Err: cause}

	if err.Error() != "decode /idx/se/rd/serde:3: unexpected end of input" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrDecode) {
		t.Error("DecodeError should match ErrDecode")
	}
	if !errors.Is(err, cause) {
		t.Error("DecodeError should unwrap to its cause")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("DecodeError should not match ErrNotFound")
	}

	noLine := &DecodeError{Path: "/idx/se/rd/serde", Err: cause}
	if noLine.Error() != "decode /idx/se/rd/serde: unexpected end of input" {
		t.Errorf("Error() = %q", noLine.Error())
	}

	byName := &DecodeError{Name: "serde", Err: cause}
	if byName.Error() != "decode serde: unexpected end of input" {
		t.Errorf("Error() = %q", byName.Error())
	}
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "readdir", Path: "/idx", Err: os.ErrPermission}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("IOError should unwrap to its cause")
	}
	if err.Error() != "readdir /idx: "+os.ErrPermission.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
}
