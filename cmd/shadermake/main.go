package main

import "github.com/gogpu/shadermake/cmd/shadermake/internal"

func main() {
	internal.Execute()
}
