// SPDX-License-Identifier: MIT

// Command lpsolve solves linear programs stored as YAML files.
//
//	lpsolve solve -f problem.yaml --strategy two-phase --trace
//	lpsolve dual -f problem.yaml
//	lpsolve convert -f problem.yaml
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	cmd := NewRootCommand(IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
