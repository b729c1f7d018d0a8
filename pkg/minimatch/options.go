package minimatch

// Options controls both the single-segment compiler (Parse/ToPattern)
// and the multi-segment Minimatch built on top of it.
type Options struct {
	/**
	 * Debug to stderr
	 */
	Debug bool

	/**
	 * NoBrace -  Do not expand {a,b} and {1..3} brace sets
	 */
	NoBrace bool

	/**
	 * Disable `**` matching against multiple folder names
	 */
	NoGlobStar bool

	///
	// Allow patterns to match filenames starting with a period, even if the
	// pattern does not explicitly have a period in that spot.
	//
	// Note that by default, a/**/b will not match a/.d/b, unless dot is set.
	//
	Dot bool

	/**
	 * Disable "extglob" style patterns like +(a|b).
	 */
	NoExt bool

	/**
	 * Perform a case-insensitive match.
	 */
	NoCase bool

	/**
	 * When NoCase is set, a purely-literal pattern still needs a regex if it
	 * contains casing-variable letters, unless this is set — in which case
	 * casing variance alone never forces a regex.
	 */
	NoCaseMagicOnly bool

	/**
	 * When a match is not found by minimatch.Match, return a list containing
	 * the pattern itself if this option is set. When not set, an empty list
	 * is returned if there are no matches.
	 */
	NoNull bool

	/**
	 * If set, then patterns without slashes will be matched against the
	 * basename of the path if it contains slashes. For example, a?b would
	 * match the path /xyz/123/acb, but not /xyz/acb/123.
	 */
	MatchBase bool

	/**
	 * Suppress the behavior of treating # at the start of a pattern as a
	 * comment.
	 */
	NoComment bool

	/**
	 * Suppress the behavior of treating a leading ! character as negation.
	 */
	NoNegate bool

	/**
	 * Returns from negate expressions the same as if they were not negated.
	 * (Ie, true on a hit, false on a miss.)
	 */
	FlipNegate bool
}
