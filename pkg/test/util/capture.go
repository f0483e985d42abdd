package util

import (
	"io"
	"os"
)

// StdCapture redirects os.Stdout and os.Stderr into pipes. Output must fit
// in the pipe buffer since it is only drained after Stop.
type StdCapture struct {
	savedStdout, savedStderr *os.File
	outReader, outWriter     *os.File
	errReader, errWriter     *os.File
}

func (s StdCapture) Cleanup() {
	os.Stdout = s.savedStdout
	os.Stderr = s.savedStderr
}

func (s StdCapture) Stop() {
	if err := s.outWriter.Close(); err != nil {
		panic(err)
	}
	if err := s.errWriter.Close(); err != nil {
		panic(err)
	}
}

func (s StdCapture) Stdout() []byte {
	return readAll(s.outReader)
}

func (s StdCapture) Stderr() []byte {
	return readAll(s.errReader)
}

func readAll(r io.Reader) []byte {
	out, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	return out
}

func NewStdCapture() *StdCapture {
	capture := &StdCapture{}
	capture.savedStdout = os.Stdout
	capture.savedStderr = os.Stderr

	var err error
	capture.outReader, capture.outWriter, err = os.Pipe()
	if err != nil {
		panic(err)
	}
	capture.errReader, capture.errWriter, err = os.Pipe()
	if err != nil {
		panic(err)
	}
	os.Stdout = capture.outWriter
	os.Stderr = capture.errWriter

	return capture
}
