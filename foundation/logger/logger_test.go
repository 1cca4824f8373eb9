package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/skywallet/foundation/logger"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_NewWithFile(t *testing.T) {
	t.Log("Given the need to write logs into a rotating file.")
	{
		path := filepath.Join(t.TempDir(), "logs", "gateway.log")

		log, closeFn, err := logger.NewWithFile("TEST", logger.Config{File: path})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the logger: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to construct the logger.", success)

		log.Infow("startup", "status", "testing")
		log.Sync()
		if err := closeFn(); err != nil {
			t.Fatalf("\t%s\tShould be able to close the rotator: %v", failed, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to read the log file: %v", failed, err)
		}

		if !strings.Contains(string(data), `"service":"TEST"`) {
			t.Logf("\t\tgot: %s", data)
			t.Fatalf("\t%s\tShould find the service field in the log file.", failed)
		}
		t.Logf("\t%s\tShould find the service field in the log file.", success)
	}
}
