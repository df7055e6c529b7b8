package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/Gunvolt24/slf4g/pkg/binding/all"
)

func main() {
	_ = godotenv.Load(".env.local")

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
