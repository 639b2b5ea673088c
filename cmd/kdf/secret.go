package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

var errSecretMismatch = errors.New("secrets do not match")

type passwordReader func(label string) ([]byte, error)

// zeroBytes overwrites a byte slice with zeros
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// secret returns KDF_SECRET when set. Otherwise it prompts on the terminal,
// twice with --confirm.
func (a *app) secret(prompt io.Writer) ([]byte, error) {
	if env := os.Getenv(SecretEnvVar); env != "" {
		return []byte(env), nil
	}

	read := a.readPassword
	if read == nil {
		read = terminalReader(prompt)
	}

	secret, err := read("Secret: ")
	if err != nil || !a.confirm {
		return secret, err
	}

	again, err := read("Confirm secret: ")
	defer zeroBytes(again)
	if err != nil {
		zeroBytes(secret)
		return nil, err
	}
	if !bytes.Equal(secret, again) {
		zeroBytes(secret)
		return nil, errSecretMismatch
	}
	return secret, nil
}

// terminalReader reads with echo disabled from STDIN, or from the
// controlling terminal when STDIN is a pipe. Labels go to prompt.
func terminalReader(prompt io.Writer) passwordReader {
	return func(label string) ([]byte, error) {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			tty, err := os.Open("/dev/tty")
			if err != nil {
				return nil, fmt.Errorf("no terminal to prompt on, set %s", SecretEnvVar)
			}
			defer tty.Close()
			fd = int(tty.Fd())
		}

		fmt.Fprint(prompt, label)
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		return secret, err
	}
}
