package main

import (
	"fmt"
	"os"

	"github.com/yourcityvibes/vibes-backend/vibesservice"
)

func main() {
	if err := vibesservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
