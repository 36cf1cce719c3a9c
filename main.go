package main

import (
	"fmt"
	"os"

	"jcarver/finpipe/cmd/ingest"
	pipelinecmd "jcarver/finpipe/cmd/pipeline"
	"jcarver/finpipe/cmd/root"
	"jcarver/finpipe/cmd/serve"
)

func init() {
	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(pipelinecmd.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
