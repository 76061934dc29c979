// Package files groups the packages that touch source files.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Data directory and source file checks
//   - csvreader: CSV parsing into typed frames
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/ecomload/internal/files/csvreader"
//	    "github.com/vvka-141/ecomload/internal/files/scanner"
//	)
//
//	s := scanner.NewScanner()
//	if err := s.VerifyFile("data/customers.csv"); err != nil {
//	    return err
//	}
//	frame, err := csvreader.NewReader().ReadFrame("data/customers.csv")
package files
