package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Gitau-joseph/projectz/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

func resolvePassword(args []string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	return "", false
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password, ok := resolvePassword(os.Args[1:])
	if !ok {
		fatalfFn("usage: genhash <password>")
	}

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
	}

	printfFn("Bcrypt Hash: %s\n", hash)
}
