package model

// LookupKey identifies a (destination port, protocol) combination. The port is
// kept as text exactly as it appeared in the source file, and the protocol
// name is always lowercase, so keys built from the lookup table and keys built
// from flow records compare equal.
type LookupKey struct {
	Port     string
	Protocol string
}

// FlowRecord holds the fields extracted from a single flow log line.
type FlowRecord struct {
	DstPort      string
	ProtocolNum  int
	ProtocolName string // lowercase keyword, "" when the number is unassigned
}

// Key returns the lookup key for this record.
func (r FlowRecord) Key() LookupKey {
	return LookupKey{Port: r.DstPort, Protocol: r.ProtocolName}
}

// Summary holds the three aggregates produced by one pass over a flow log.
type Summary struct {
	Tags     *TagCounts
	Pairs    *PairCounts
	Untagged int
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{
		Tags:  NewTagCounts(),
		Pairs: NewPairCounts(),
	}
}

// RecordCount returns the number of flow records reflected in the summary.
// It always equals Pairs.Total(), since every record contributes one
// port/protocol count and either one tag count or one untagged count.
func (s *Summary) RecordCount() int {
	return s.Tags.Total() + s.Untagged
}
