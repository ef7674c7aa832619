package main

import (
	"log"

	contentManager "github.com/siherrmann/contentManager"
	"github.com/siherrmann/contentManager/helper"
)

// main is the entry point of the content manager. The configuration is read
// from the CONTENT_MANAGER_* and S3_* environment variables.
func main() {
	config, err := helper.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	contentManager.ManagerServer(config)
}
