package relief

// BuildAdjacency registers every region with the lines on its border. Regions
// are visited in ascending label order so slot assignment is deterministic.
//
// A border reference to an unknown line is skipped with a WarnMissingLine
// warning. A line acquiring a third region aborts with an *IntegrityError.
func BuildAdjacency(regions Regions, lines Lines) ([]Warning, error) {
	var warnings []Warning
	for _, rl := range regions.SortedLabels() {
		r := regions[rl]
		for _, ll := range r.Lines {
			line, ok := lines[ll]
			if !ok {
				warnings = append(warnings, Warning{Kind: WarnMissingLine, Region: rl, Line: ll})
				continue
			}
			if err := line.AddRegion(rl); err != nil {
				return warnings, err
			}
		}
	}
	return warnings, nil
}
