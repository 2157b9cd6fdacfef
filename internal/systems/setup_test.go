package systems

import (
	"os"
	"testing"

	"hexcrawl-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}
