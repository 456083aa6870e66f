package strtab

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexedFromCSV turns a header line plus "id,value" lines into a sparse
// array indexed by id, leaving unreferenced indices empty.
//
// The initial array length is derived solely from the last line's leading
// integer, trusting the data to be sorted ascending by id. Rows with a
// larger id grow the array so out-of-order data is not silently truncated,
// but a last line whose leading field is not a valid integer is a parse
// error regardless of the rest of the data.
func IndexedFromCSV(lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("indexed csv: no lines")
	}

	last := lines[len(lines)-1]
	head, _, _ := strings.Cut(last, ",")
	size, err := strconv.Atoi(head)
	if err != nil {
		return nil, fmt.Errorf("indexed csv: bad id in last line %q: %w", last, err)
	}

	arr := make([]string, size+1)
	for _, line := range lines[1:] {
		id, value, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(id)
		if err != nil || n < 0 {
			continue
		}
		for n >= len(arr) {
			arr = append(arr, "")
		}
		arr[n] = value
	}
	return arr, nil
}
