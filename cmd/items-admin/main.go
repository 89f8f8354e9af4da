package main

import (
	"os"

	"github.com/CloudsoftGithub/items-admin/internal/pkg/logger"
)

func main() {
	if err := Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
