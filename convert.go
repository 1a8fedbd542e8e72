package skiprope

// CharsToUTF16 converts a character offset to the equivalent offset in UTF-16
// code units. The conversion is a single descent accumulating both metrics.
func (r *Rope) CharsToUTF16(pos uint64) (uint64, error) {
	c, err := r.locate(pos, byChars)
	if err != nil {
		return 0, err
	}
	return c.abs.UTF16, nil
}

// UTF16ToChars converts an offset in UTF-16 code units to the equivalent
// character offset. Offsets between the two code units of a surrogate pair
// are rejected with ErrNotCharBoundary.
func (r *Rope) UTF16ToChars(pos uint64) (uint64, error) {
	c, err := r.locate(pos, byUTF16)
	if err != nil {
		return 0, err
	}
	return c.abs.Chars, nil
}
