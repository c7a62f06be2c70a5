package service

import (
	"os"
	"testing"

	"github.com/techmaster-vietnam/goerrorkit"
)

func TestMain(m *testing.M) {
	goerrorkit.InitLogger(goerrorkit.LoggerOptions{
		ConsoleOutput: true,
		FileOutput:    false,
		JSONFormat:    true,
		LogLevel:      "error",
	})
	os.Exit(m.Run())
}
