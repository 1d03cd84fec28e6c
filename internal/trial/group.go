package trial

// GroupByAlgorithm buckets records by their algorithm tag. Every record
// lands in exactly one bucket regardless of input order; within a bucket
// the input order is preserved.
func GroupByAlgorithm(logs []*LogData) map[string][]*LogData {
	groups := make(map[string][]*LogData)
	for _, ld := range logs {
		groups[ld.Metadata.Algorithm] = append(groups[ld.Metadata.Algorithm], ld)
	}
	return groups
}

// GroupByAlgorithmAndDifficulty partitions records into
// algorithm × difficulty buckets. The partition is complete and
// disjoint: each record appears in exactly one bucket.
func GroupByAlgorithmAndDifficulty(logs []*LogData) map[string]map[string][]*LogData {
	groups := make(map[string]map[string][]*LogData)
	for algorithm, algLogs := range GroupByAlgorithm(logs) {
		byDifficulty := make(map[string][]*LogData)
		for _, ld := range algLogs {
			byDifficulty[ld.Metadata.Difficulty] = append(byDifficulty[ld.Metadata.Difficulty], ld)
		}
		groups[algorithm] = byDifficulty
	}
	return groups
}
