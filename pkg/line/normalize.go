package line

// Normalize folds a trailing "\r\n" or lone "\r" into "\n".
func Normalize(line []byte) []byte {
	ll := len(line)
	if ll > 1 && line[ll-2] == '\r' && line[ll-1] == '\n' {
		line[ll-2] = '\n'
		return line[:ll-1]
	}

	if ll > 0 && line[ll-1] == '\r' {
		line[ll-1] = '\n'
	}

	return line
}
