package reflow

import (
	"math"
	"sort"
)

const inf = math.MaxInt

// dpRow holds cost[m][i] and next[m][i] for i in [lo, lo+len(cost)).
type dpRow struct {
	lo   int
	cost []int
	next []int
}

func (r dpRow) at(i int) int {
	if i < r.lo || i >= r.lo+len(r.cost) {
		return inf
	}
	return r.cost[i-r.lo]
}

// PackBalanced splits words into the same number of lines PackGreedy would
// produce, choosing the breakpoints that minimise the sum of squared
// shortfalls (maxLength - line length) over all lines.
//
// Algorithm Outline:
//  1. k = len(PackGreedy(words, maxLength)); n = len(words).
//  2. cost[m][i] is the cheapest way to set words[i:] on exactly m lines.
//     cost[0][n] = 0, every other cost[0][i] = +∞.
//  3. For m = 1..k, i = n-1..0, try every first line words[i:j]:
//     cost[m][i] = min(lineCost(i, j) + cost[m-1][j]).
//     A line longer than maxLength is infeasible unless it is a single
//     word, which costs 0.
//  4. Walk next[m][i] from (k, 0) to rebuild the lines.
//
// Row m only stores the window of i from which the remaining words fit on
// exactly m lines while words[:i] fits on exactly k-m. Both bounds come from
// greedy line counts (left to right for prefixes, right to left for
// suffixes). For ordinary prose each window spans a few lines' worth of
// words, so the table grows with n rather than k·n.
//
// Candidates are scanned with j ascending and replaced only on a strictly
// lower cost, so among equally good partitions the one whose breakpoints
// come earliest wins.
//
// Complexity: O(W·L) time and O(W) memory, where W is the total window
// size (at most k·n) and L the most words that fit on a line.
func PackBalanced(words []Word, maxLength int) []Line {
	greedy := PackGreedy(words, maxLength)
	k := len(greedy)
	if k <= 1 {
		return greedy
	}
	n := len(words)

	// prefix[i] is the total rune count of words[:i].
	prefix := make([]int, n+1)
	for i, w := range words {
		prefix[i+1] = prefix[i] + w.Len()
	}
	lineCost := func(i, j int) (int, bool) {
		if j-i == 1 && prefix[j]-prefix[i] > maxLength {
			return 0, true
		}
		length := prefix[j] - prefix[i] + (j - i - 1)
		if length > maxLength {
			return 0, false
		}
		short := maxLength - length
		return short * short, true
	}

	// head[i] is the fewest lines words[:i] needs, tail[i] the fewest for
	// words[i:].
	head := make([]int, n+1)
	tail := make([]int, n+1)
	for i, lines, start := 0, 0, 0; i < n; i++ {
		if lines == 0 || !fits(lineCost(start, i+1)) {
			lines++
			start = i
		}
		head[i+1] = lines
	}
	for i, lines, end := n-1, 0, n; i >= 0; i-- {
		if lines == 0 || !fits(lineCost(i, end)) {
			lines++
			end = i + 1
		}
		tail[i] = lines
	}

	rows := make([]dpRow, k+1)
	for m := 0; m <= k; m++ {
		// tail is non-increasing and head non-decreasing in i.
		lo := max(k-m, sort.Search(n+1, func(i int) bool { return tail[i] <= m }))
		hi := min(n-m, sort.Search(n+1, func(i int) bool { return head[i] > k-m })-1)
		size := max(hi-lo+1, 0)
		rows[m] = dpRow{lo: lo, cost: make([]int, size), next: make([]int, size)}
		for x := range rows[m].cost {
			rows[m].cost[x] = inf
		}
	}
	rows[0].cost[0] = 0 // rows[0] is exactly {n}

	for m := 1; m <= k; m++ {
		row, prev := rows[m], rows[m-1]
		prevHi := prev.lo + len(prev.cost) - 1
		for i := row.lo + len(row.cost) - 1; i >= row.lo; i-- {
			for j := i + 1; j <= prevHi; j++ {
				c, ok := lineCost(i, j)
				if !ok {
					break
				}
				rest := prev.at(j)
				if rest == inf {
					continue
				}
				if total := c + rest; total < row.cost[i-row.lo] {
					row.cost[i-row.lo] = total
					row.next[i-row.lo] = j
				}
			}
		}
	}

	// The greedy partition is always feasible, so cost[k][0] is finite.
	lines := make([]Line, 0, k)
	for m, i := k, 0; m > 0; m-- {
		j := rows[m].next[i-rows[m].lo]
		lines = append(lines, Line(words[i:j:j]))
		i = j
	}
	return lines
}

func fits(_ int, ok bool) bool { return ok }
