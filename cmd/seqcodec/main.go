// cmd/seqcodec/main.go
package main

import (
	"seqcodec/internal/app"
	"seqcodec/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
