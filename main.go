package main

import (
	"fmt"

	"jigsaw/ui"
)

func main() {
	EnableANSI()
	if err := ui.RunJigsaw(); err != nil {
		fmt.Println(err)
	}
}
