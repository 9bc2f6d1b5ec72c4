// Command tslamyu analyzes Na'vi sentences from the command line.
//
//	tslamyu parse [-v] "oel ngati kameie"
//	tslamyu lookup ioangìl
//	tslamyu decline tute
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	exitRejected = 1
	exitUsage    = 2
	exitLookup   = 3
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line args, reading sentences from in when none
// are given.
func run(in io.Reader, out io.Writer, args []string) error {
	root := newRootCmd(in, out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}
	return nil
}
