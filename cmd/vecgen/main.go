// Command vecgen generates the vector interfaces of package gvec, their
// implementation assertions and the concrete vector types of package vec,
// one file per interface tier and per scalar type.
//
// Usage:
//
//	vecgen [-root dir] [-check] [-v]
package main

import (
	"flag"
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vecgen: ")
	var g Generator
	flag.StringVar(&g.Root, "root", ".", "module root directory")
	flag.BoolVar(&g.Check, "check", false, "report out of date files instead of writing them")
	flag.BoolVar(&g.Verbose, "v", false, "log every file written")
	flag.Parse()
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
