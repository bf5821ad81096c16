// cmd/gibbs/main.go
package main

import (
	"gibbs/internal/appshell"
	"gibbs/internal/motifapp"
)

func main() {
	appshell.Main(motifapp.RunContext)
}
