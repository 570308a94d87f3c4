package utils

//PadSequence makes sure given sequence has the wanted length. In case it's longer it's truncated, in case it's shorter
//it's padded with values returned by empty.
func PadSequence[T any](seq []T, length int, empty func() T) []T {
	if length < 0 {
		length = 0
	}

	if len(seq) >= length {
		return seq[:length]
	}

	for len(seq) < length {
		seq = append(seq, empty())
	}

	return seq
}
