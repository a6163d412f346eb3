package main

import (
	"os"

	"golang.org/x/term"
)

// termReadPassword is replaced in tests so they never touch a terminal.
var termReadPassword = term.ReadPassword

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
