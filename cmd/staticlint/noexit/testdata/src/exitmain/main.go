package main

import (
	"os"
	exit "os"
)

func main() {
	if len(os.Args) > 3 {
		exit.Exit(3) // want "прямой вызов os.Exit в функции main запрещен"
	}
	defer func() {
		os.Exit(2)
	}()
	os.Exit(1) // want "прямой вызов os.Exit в функции main запрещен"
}

func fail() {
	os.Exit(1)
}
