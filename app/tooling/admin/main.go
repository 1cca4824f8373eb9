// This program performs administrative tasks for the wallet gateway.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/skywallet/app/tooling/admin/commands"
	"github.com/ardanlabs/skywallet/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

// bookFile is used when GATEWAY_ADDRESSBOOK_FILE is not set.
const bookFile = "zwallet/addressbook.yaml"

func main() {

	// Construct the application logger.
	log, err := logger.New("ADMIN")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	log.Infow("startup", "build", build)

	book := os.Getenv("GATEWAY_ADDRESSBOOK_FILE")
	if book == "" {
		book = bookFile
	}

	return processCommands(os.Args, book)
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(args []string, book string) error {
	if len(args) < 2 {
		return errors.New("usage: admin book [add <address> <label> | rm <address>] | addr <hexkey> [version] | upgrade <current> <latest>")
	}

	switch args[1] {
	case "book":
		if err := commands.Book(args, book); err != nil {
			return fmt.Errorf("address book: %w", err)
		}
	case "addr":
		if err := commands.Address(args); err != nil {
			return fmt.Errorf("address: %w", err)
		}
	case "upgrade":
		if err := commands.Upgrade(args); err != nil {
			return fmt.Errorf("upgrade: %w", err)
		}
	default:
		return fmt.Errorf("unknown command %q", args[1])
	}

	return nil
}
