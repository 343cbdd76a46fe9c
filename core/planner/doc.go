package planner

// Package planner selects charge and discharge hour windows from one day of
// normalized hourly costs. It enumerates candidate charge blocks, matches
// each block with its most profitable later discharge run, and commits
// non-overlapping pairs greedily, cheapest charging first. The result is a
// profitable heuristic plan, not a global optimum.
