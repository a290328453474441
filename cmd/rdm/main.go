// rdm is the command-line client for the KBase ReferenceDataManager service.
package main

import "github.com/kbaseapps/refdatamgr/pkg/cli"

func main() {
	cli.Execute()
}
