// Command topicfilter resolves topic filter queries against a YAML fixture
// and prints the resulting SQL, or dumps the filter catalog.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
