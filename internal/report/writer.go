// Package report serializes a classification summary to the aggregate text
// report.
package report

import (
	"bufio"
	"fmt"
	"os"

	"flowtagger/internal/model"
)

// Write serializes summary to a text report at path, overwriting any existing
// file. The report carries two sections, tag counts then port/protocol
// combination counts, each in the order the keys were first seen, separated by
// exactly one blank line. Output is byte-identical across runs for the same
// summary.
func Write(summary *model.Summary, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(file)
	w.WriteString("Tag Counts:\n")
	w.WriteString("Tag,Count\n")
	for _, tag := range summary.Tags.Tags() {
		fmt.Fprintf(w, "%s,%d\n", tag, summary.Tags.Get(tag))
	}
	fmt.Fprintf(w, "Untagged,%d\n\n", summary.Untagged)

	w.WriteString("Port/Protocol Combination Counts:\n")
	w.WriteString("Port,Protocol,Count\n")
	for _, key := range summary.Pairs.Keys() {
		fmt.Fprintf(w, "%s,%s,%d\n", key.Port, key.Protocol, summary.Pairs.Get(key))
	}

	// Flush surfaces the first error from any of the writes above.
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write report to '%s': %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write report to '%s': %w", path, err)
	}
	return nil
}
