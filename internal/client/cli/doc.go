// Package cli provides the interactive FutureLetter terminal client.
//
// It wires configuration, the local session store, the gRPC client, identity
// bootstrap, the letter repository and the view-model, then runs a REPL:
//
//	help                 show available commands
//	write                compose and send a letter
//	list                 show pending letters
//	delete <n|id>        ask to cancel a letter, then answer yes or no
//	status               show connection details
//	reconnect            sign in again or reopen the live list
//	exit | quit          leave the program
//
// The live list is redrawn from a background subscription whenever the
// server reports a change.
package cli
