// Command hashkey prints a bcrypt hash suitable for API_KEY_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Abhijeetcode911/customgpt-payment/internal/pkg/auth"
)

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost (0 for library default)")
	flag.Parse()

	key := flag.Arg(0)
	if key == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "usage: hashkey [-cost N] <api-key> (or pipe the key on stdin)")
			os.Exit(2)
		}
		key = strings.TrimSpace(line)
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "api key must not be empty")
		os.Exit(2)
	}

	hash, err := auth.HashKey(key, *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash key: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
