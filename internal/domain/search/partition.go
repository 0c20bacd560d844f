package search

// Partition splits files into exactly n contiguous slices. Each slice holds
// len(files)/n files and the last one absorbs the remainder, so every file is
// assigned exactly once. When n exceeds len(files) the leading slices are
// empty. n <= 0 is treated as 1.
func Partition(files []string, n int) [][]string {
	if n <= 0 {
		n = 1
	}
	size := len(files) / n
	slices := make([][]string, n)
	for i := 0; i < n; i++ {
		start := i * size
		end := start + size
		if i == n-1 {
			end = len(files)
		}
		slices[i] = files[start:end:end]
	}
	return slices
}
