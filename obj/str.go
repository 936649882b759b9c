package obj

// Str is a string carrying the same slicing and concatenation surface
// as List, so both can stand in wherever a Slicer or Concater is
// asked for. Indexes address bytes, not runes.
type Str string

// Len returns the length in bytes.
func (s Str) Len() int {
	return len(s)
}

// At returns the byte at index i as a one-byte Str, or an empty Str
// if i is out of range.
func (s Str) At(i int) Str {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i : i+1]
}

// Slice returns the substring between index from (inclusive) and to
// (exclusive), with the index conventions of List.Slice.
func (s Str) Slice(from, to int) Str {
	n := clamp(from, len(s))
	m := clamp(to, len(s))
	if m < n {
		m = n
	}
	return s[n:m]
}

// Concat returns s followed by other.
func (s Str) Concat(other Str) Str {
	return s + other
}
