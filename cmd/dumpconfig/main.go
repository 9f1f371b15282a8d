package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/radiopassport/radio-passport/internal/config"
)

func main() {
	configFile := flag.String("config", "", "path to a curator config file")
	flag.Parse()

	cfg, err := config.Load(config.Options{ConfigFile: *configFile})
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Keys stay out of dumps; everything else prints as resolved.
	cfg.Providers.OpenAI.APIKey = redact(cfg.Providers.OpenAI.APIKey)
	cfg.Providers.Gemini.APIKey = redact(cfg.Providers.Gemini.APIKey)
	cfg.Providers.OpenRouter.APIKey = redact(cfg.Providers.OpenRouter.APIKey)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		log.Fatalf("encode config: %v", err)
	}
}

func redact(value string) string {
	if value == "" {
		return ""
	}
	return "***"
}
