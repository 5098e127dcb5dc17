package main

import (
	"os"

	"github.com/chrisgreen1993/expo-native-codegen/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own errors; only the exit code matters here.
		os.Exit(cli.GetExitCode(err))
	}
}
