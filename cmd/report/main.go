package main

import (
	"fmt"
	"os"

	"link-analytics-service/internal/report"
)

func main() {
	if err := report.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
