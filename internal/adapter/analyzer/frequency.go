package analyzer

// Frequencies maps each distinct token to its occurrence count.
type Frequencies map[string]int

// CountFrequency counts tokens in a single pass.
func CountFrequency(tokens []string) Frequencies {
	freq := make(Frequencies, len(tokens))
	for _, token := range tokens {
		freq[token]++
	}
	return freq
}

// Total returns the sum of all counts, which equals the number of tokens the
// map was built from.
func (f Frequencies) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Merge adds the counts of other into f.
func (f Frequencies) Merge(other map[string]int) {
	for word, count := range other {
		f[word] += count
	}
}
