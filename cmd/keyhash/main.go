// Command keyhash prints a fresh admin API key together with the bcrypt hash
// to put in ADMIN_API_KEY_HASH.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_converter/internal/utils"
)

func main() {
	key := flag.String("key", "", "hash this key instead of generating one")
	size := flag.Int("bytes", 32, "random bytes in a generated key")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *key == "" {
		generated, err := utils.GenerateAPIKey(*size)
		if err != nil {
			logger.Error("Failed to generate API key", slog.String("error", err.Error()))
			os.Exit(1)
		}
		*key = generated
	}

	hash, err := utils.HashAPIKey(*key)
	if err != nil {
		logger.Error("Failed to hash API key", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("ADMIN_API_KEY=%s\n", *key)
	fmt.Printf("ADMIN_API_KEY_HASH=%s\n", hash)
}
