package dbformat

import "github.com/kvdb-project/ldbcore/internal/encoding"

// ShortSeparator returns an internal key k such that start <= k < limit
// (in internal-key order), shortening start's user-key prefix when doing so
// still keeps the result strictly between the inputs.
//
// It runs the bytewise short-separator algorithm on the user-key prefixes;
// if that shortens the prefix, the result gets a fresh trailer of
// (MaxSequenceNumber, Value-for-seek) appended. That trailer is the
// smallest possible trailer under the internal-key comparator's
// descending-trailer tie-break, which maximizes the chance the shortened
// key still falls strictly between start and limit.
// If the prefix is unchanged (start is a prefix of limit, or no separator
// exists), start is returned unchanged.
func (c *InternalKeyComparator) ShortSeparator(start, limit []byte) []byte {
	userStart := ExtractUserKey(start)
	userLimit := ExtractUserKey(limit)
	if userStart == nil || userLimit == nil {
		return start
	}

	shortened := bytewiseShortSeparator(userStart, userLimit)
	if len(shortened) >= len(userStart) {
		// No shortening occurred (or it was left unchanged); the trailer on
		// start is still valid, so start is already a legal result.
		return start
	}

	result := make([]byte, 0, len(shortened)+NumInternalBytes)
	result = append(result, shortened...)
	trailer := PackSequenceAndType(MaxSequenceNumber, LookupKeySeekType)
	result = encoding.AppendFixed64(result, trailer)
	return result
}

// ShortSuccessor returns an internal key k >= key (in internal-key order),
// shortening key's user-key prefix when a strictly-smaller successor byte
// exists. Analogous to ShortSeparator.
func (c *InternalKeyComparator) ShortSuccessor(key []byte) []byte {
	userKey := ExtractUserKey(key)
	if userKey == nil {
		return key
	}

	shortened := bytewiseShortSuccessor(userKey)
	if len(shortened) >= len(userKey) {
		return key
	}

	result := make([]byte, 0, len(shortened)+NumInternalBytes)
	result = append(result, shortened...)
	trailer := PackSequenceAndType(MaxSequenceNumber, LookupKeySeekType)
	result = encoding.AppendFixed64(result, trailer)
	return result
}

// bytewiseShortSeparator finds the first differing byte between start and
// limit; if start[i] can be incremented while staying below limit[i], it
// returns a truncated, incremented prefix. Otherwise it returns start
// unchanged.
func bytewiseShortSeparator(start, limit []byte) []byte {
	minLen := min(len(start), len(limit))
	diff := 0
	for diff < minLen && start[diff] == limit[diff] {
		diff++
	}
	if diff >= minLen {
		return start
	}
	if start[diff] < 0xff && start[diff]+1 < limit[diff] {
		result := make([]byte, diff+1)
		copy(result, start[:diff+1])
		result[diff]++
		return result
	}
	return start
}

// bytewiseShortSuccessor increments the first byte less than 0xff and
// truncates after it. An all-0xff input is returned unchanged.
func bytewiseShortSuccessor(key []byte) []byte {
	for i, b := range key {
		if b != 0xff {
			result := make([]byte, i+1)
			copy(result, key[:i+1])
			result[i]++
			return result
		}
	}
	return key
}
