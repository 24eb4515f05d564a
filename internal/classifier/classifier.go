// Package classifier streams a flow log, classifies each record against the
// lookup table and accumulates the summary aggregates.
package classifier

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"flowtagger/internal/lookup"
	"flowtagger/internal/model"
	"flowtagger/internal/protocol"
)

// Flow log records follow the version-2 VPC flow log layout:
//
//	version account-id interface-id srcaddr dstaddr srcport dstport
//	protocol packets bytes start end action log-status
//
// Only the destination port and protocol fields are consumed, but every line
// must carry the full record.
const (
	minFieldCount = 14
	fieldDstPort  = 6
	fieldProtocol = 7
)

var (
	// ErrLineTooShort reports a log line carrying fewer than minFieldCount
	// whitespace-delimited fields.
	ErrLineTooShort = errors.New("flow log line has fewer than 14 fields")

	// ErrInvalidProtocolNumber reports a protocol field that is not an integer.
	ErrInvalidProtocolNumber = errors.New("protocol field is not a valid integer")
)

// Classify reads the flow log at path line by line and classifies every
// record against table. Each record increments either its tag's count or the
// untagged count, and always increments its (port, protocol) pair count.
// The first malformed line aborts the whole run: partial aggregates are never
// returned.
func Classify(path string, table lookup.Table) (*model.Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flow log: %w", err)
	}
	defer file.Close()

	summary := model.NewSummary()
	scanner := bufio.NewScanner(file)
	// Log lines can exceed the scanner's default 64 KiB token limit.
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		record, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d of '%s': %w", lineNum, path, err)
		}

		key := record.Key()
		if tag, ok := table.Tag(key); ok {
			summary.Tags.Inc(tag)
		} else {
			summary.Untagged++
		}
		summary.Pairs.Inc(key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flow log '%s': %w", path, err)
	}

	return summary, nil
}

// parseLine splits a log line on whitespace runs and extracts the fields the
// classifier needs. The destination port stays text so its original
// formatting survives into the report.
func parseLine(line string) (model.FlowRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < minFieldCount {
		return model.FlowRecord{}, fmt.Errorf("%w: got %d", ErrLineTooShort, len(fields))
	}

	num, err := strconv.Atoi(fields[fieldProtocol])
	if err != nil {
		return model.FlowRecord{}, fmt.Errorf("%w: %q", ErrInvalidProtocolNumber, fields[fieldProtocol])
	}

	return model.FlowRecord{
		DstPort:      fields[fieldDstPort],
		ProtocolNum:  num,
		ProtocolName: protocol.Name(num),
	}, nil
}
