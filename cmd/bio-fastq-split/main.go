package main

// See doc.go for documentation

import (
	"context"
	"os"

	"github.com/grailbio/base/log"
	"github.com/zwebbs/fqsplit/fqsplit"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	os.Exit(fqsplit.Main(context.Background(), os.Args, os.Stdin, os.Stdout))
}
