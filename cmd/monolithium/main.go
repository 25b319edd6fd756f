// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"log"
	"os"

	"github.com/urfave/cli"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

// exit codes, per the configuration/resource error split
const (
	exitOK       = 0
	exitConfig   = 1
	exitResource = 2
)

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "monolithium"
	myApp.Usage = "search a seeded 2D noise world for monolith regions"
	myApp.Version = VERSION
	myApp.Commands = []cli.Command{
		findCommand,
		spawnCommand,
		perlinCommand,
		benchCommand,
	}
	myApp.CommandNotFound = func(c *cli.Context, name string) {
		log.Printf("unknown command: %s\n", name)
		os.Exit(exitConfig)
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(exitConfig)
	}
}

// checkConfig aborts the process with exitConfig if err is non-nil.
func checkConfig(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(exitConfig)
	}
}

// checkResource aborts the process with exitResource if err is non-nil.
func checkResource(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(exitResource)
	}
}
