package inline

// Delimiters is a pair of bracket delimiters, like "(" and ")". Either may be
// empty, as for invisible brackets or an unterminated group.
type Delimiters struct {
	Open, Close string
}

// Wrap puts inner content between a pair of delimiters. If strip is set, the
// delimiters are omitted and only the inner content is returned.
//
// Wrap is applied separately to every bracket group, with the same strip
// flag throughout a single render call.
func Wrap(d Delimiters, inner string, strip bool) string {
	if strip {
		return inner
	}
	return d.Open + inner + d.Close
}
