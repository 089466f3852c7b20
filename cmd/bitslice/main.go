// cmd/bitslice/main.go
package main

import (
	"bitslice/internal/app"
	"bitslice/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
