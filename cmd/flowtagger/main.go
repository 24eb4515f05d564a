package main

import (
	"fmt"
	"log"
	"os"

	"flowtagger/internal/classifier"
	"flowtagger/internal/lookup"
	"flowtagger/internal/report"
)

func main() {
	// 1. Validate command-line arguments
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: flowtagger <flow_log_file> <lookup_file> <output_file>")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run executes the pipeline stages in order: load the lookup table, classify
// the flow log, write the report. Any stage error aborts the run before the
// output file is touched, so a failure never leaves a partial report behind.
func run(flowLogPath, lookupPath, outputPath string) error {
	// 2. Load the lookup table
	table, err := lookup.Load(lookupPath)
	if err != nil {
		return fmt.Errorf("loading lookup table '%s': %w", lookupPath, err)
	}
	log.Printf("Loaded %d lookup entries from '%s'.", table.Len(), lookupPath)

	// 3. Classify the flow log
	summary, err := classifier.Classify(flowLogPath, table)
	if err != nil {
		return fmt.Errorf("classifying flow log '%s': %w", flowLogPath, err)
	}
	log.Printf("Classified %d flow records.", summary.RecordCount())

	// 4. Write the report
	if err := report.Write(summary, outputPath); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Printf("Processing complete. Results saved to %s", outputPath)

	return nil
}
