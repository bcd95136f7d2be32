// Command sqlkit is a small demonstration binary exercising the
// migrate package's generate/check lifecycle through a cobra CLI
// configured via koanf (SPEC_FULL.md §6). It is not a general-purpose
// schema-file tool: the schema it diffs against is a hardcoded demo
// (see schema.go), the same way the teacher repo's examples/ directory
// hardcodes a demo schema for its own standalone programs.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
