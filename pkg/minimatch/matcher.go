package minimatch

import (
	"io/ioutil"
	"log"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type Minimatch interface {
	Match(path string, partial bool) bool
	MakeRe() (*regexp.Regexp, error)
}

var (
	emptyRegexp   = regexp.MustCompile(`^$`)
	braceShortcut = regexp.MustCompile(`\{.*\}`)
	slashSplit    = regexp.MustCompile(`/+`)

	// ** when dots are allowed.  Anything goes, except .. and .
	// not (^ or / followed by one or two dots followed by $ or /),
	// followed by anything, any number of times.
	twoStarDot = `(?:(?!(?:\/|^)(?:\.{1,2})($|\/)).)*?`

	// not a ^ or / followed by a dot,
	// followed by anything, any number of times.
	twoStarNoDot = `(?:(?!(?:\/|^)\.).)*?`
)

/**
* MatchString  - a strings against the pattern and options
 */
func MatchString(path string, pattern string, options Options) (bool, error) {
	mm, err := NewMinimatch(pattern, options)

	if err != nil {
		return false, err
	}

	return mm.Match(path, false), nil
}

/**
* Match - match a list of strings against the pattern and options
 */
func Match(list []string, pattern string, options Options) []string {
	mm, err := NewMinimatch(pattern, options)

	if err != nil {
		panic(err)
	}

	result := []string{}
	for _, item := range list {
		if mm.Match(item, false) {
			result = append(result, item)
		}
	}

	if options.NoNull && len(result) == 0 {
		return []string{pattern}
	}
	return result
}

type segment struct {
	pat        Pattern
	isGlobStar bool
}

type matcher struct {
	/*
		set A 2-dimensional array of compiled Patterns. Each row in the array
		corresponds to a brace-expanded pattern. Each item in the row
		corresponds to a single path-part.
	*/

	/**
	 * regexp Created by the makeRe method. A single regular expression expressing the entire pattern. This is useful in cases where you
	 * wish to use the pattern somewhat like fnmatch(3) with FNM_PATH enabled.
	 */
	regexp *regexp.Regexp

	/**
	 * Negate True if the pattern is negated
	 */
	Negate bool

	/**
	 * Empty True if the pattern is ""
	 */
	Empty bool

	/**
	 * Comment True if the pattern is a comment.
	 */
	Comment bool

	// The input pattern
	pattern string
	// The input options
	options Options

	// is the experssion negated
	negate bool

	// the set of per-segment matchers to use
	set [][]segment

	log *log.Logger
}

func NewMinimatch(pattern string, options Options) (Minimatch, error) {
	pattern = strings.TrimSpace(pattern)

	// windows support: need to use /, not \
	if runtime.GOOS == "windows" {
		pattern = strings.Join(strings.Split(pattern, string(os.PathSeparator)), "/")
	}

	m := &matcher{pattern: pattern, options: options}

	if options.Debug {
		m.log = log.New(os.Stderr, "minimatch:", 0)
	} else {
		m.log = log.New(ioutil.Discard, "", 0)
	}

	if err := m.make(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *matcher) MakeRe() (*regexp.Regexp, error) {
	if err := m.make(); err != nil {
		return nil, err
	}
	if m.regexp != nil {
		return m.regexp, nil
	}

	groupSrcs := make([]string, 0, len(m.set))
	for _, group := range m.set {
		segSrcs := make([]string, 0, len(group))
		for _, seg := range group {
			if seg.isGlobStar {
				if m.options.Dot {
					segSrcs = append(segSrcs, twoStarDot)
				} else {
					segSrcs = append(segSrcs, twoStarNoDot)
				}
				continue
			}
			if seg.pat.IsExact {
				segSrcs = append(segSrcs, regexp.QuoteMeta(seg.pat.Literal))
				continue
			}
			segSrcs = append(segSrcs, seg.pat.Src)
		}
		groupSrcs = append(groupSrcs, strings.Join(segSrcs, `\/`))
	}

	flags := ""
	if m.options.NoCase {
		flags = "(?i)"
	}

	src := flags + "^(?:" + strings.Join(groupSrcs, "|") + ")$"
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling combined pattern %q", m.pattern)
	}
	m.regexp = re
	return re, nil
}

func (m *matcher) make() error {
	if m.set != nil || m.regexp != nil {
		return nil
	}

	// comments match nothing; an empty pattern matches only the empty string.
	if !m.options.NoComment && len(m.pattern) > 0 && m.pattern[0] == '#' {
		m.Comment = true
		m.regexp = emptyRegexp
		return nil
	}
	if len(m.pattern) == 0 {
		m.Empty = true
		m.regexp = emptyRegexp
		return nil
	}

	// step 1: figure out negation, etc.
	m.parseNegate()

	// step 2: expand braces
	globSet := m.braceExpand()

	// step 3: now we have a set, so turn each one into a series of path-portion
	// matching patterns.
	// These will be compiled Patterns, except in the case of "**", which is
	// flagged isGlobStar for globstar behavior, and will not contain any /
	// characters
	globParts := [][]string{}
	for _, s := range globSet {
		globParts = append(globParts, slashSplit.Split(s, -1))
	}

	// glob --> per-segment patterns
	m.set = [][]segment{}
	for _, s := range globParts {
		group := []segment{}
		allGood := true
		for _, item := range s {
			if !m.options.NoGlobStar && item == "**" {
				group = append(group, segment{isGlobStar: true})
				continue
			}

			seg, ok := m.parse(item)
			if ok {
				group = append(group, seg)
			} else {
				allGood = false
			}
		}
		if allGood && len(group) != 0 {
			m.set = append(m.set, group)
		}
	}

	return nil
}

func (m *matcher) parseNegate() {
	if m.options.NoNegate {
		return
	}

	pattern := m.pattern
	idx := 0
	for ; idx < len(pattern) && pattern[idx] == '!'; idx++ {
		m.negate = !m.negate
	}
	m.Negate = m.negate

	// Don't copy unless needed
	if idx != 0 {
		m.pattern = m.pattern[idx:len(m.pattern)]
	}
}

/**
 * Brace expansion:
 * a{b,c}d -> abd acd
 * a{b,}c -> abc ac
 * a{0..3}d -> a0d a1d a2d a3d
 * a{b,c{d,e}f}g -> abg acdfg acefg
 * a{b,c}d{e,f}g -> abdeg abdfg acdeg acdfg
 *
 * Invalid sets are not expanded.
 * a{2..}b -> a{2..}b
 * a{b}c -> a{b}c
 */
func (m *matcher) braceExpand() []string {
	if m.options.NoBrace || !braceShortcut.MatchString(m.pattern) {
		return []string{m.pattern}
	}

	return BraceExpansion(m.pattern)
}

// parse compiles a single path-portion into a segment, delegating to the
// core Parse/ToPattern pipeline (spec sections 4.1-4.5). Following the lead
// of Bash 4.1, "**" is handled one level up in make(), since it only has
// special meaning as an entire path portion and the core compiler has no
// concept of it.
func (m *matcher) parse(pattern string) (segment, bool) {
	root, err := Parse(pattern, m.options)
	if err != nil {
		m.log.Printf("parse %q: %v\n", pattern, err)
		return segment{}, false
	}

	pat, err := ToPattern(root, m.options)
	if err != nil {
		m.log.Printf("compile %q: %v\n", pattern, err)
		return segment{}, false
	}

	return segment{pat: pat}, true
}

func (m *matcher) Match(f string, partial bool) bool {
	m.log.Println("match", f, m.pattern)
	// short-circuit in the case of busted things.
	// comments, etc.
	if m.Comment {
		return false
	}
	if m.Empty {
		return f == ""
	}

	if f == "/" && partial {
		return true
	}

	// windows: need to use /, not \
	if runtime.GOOS == "windows" {
		f = strings.Join(strings.Split(f, "\\"), "/")
	}

	// treat the test path as a set of pathparts.
	fparts := slashSplit.Split(f, -1)
	m.log.Printf("%#v split %#v\n", m.pattern, fparts)

	// just ONE of the pattern sets in this.set needs to match
	// in order for it to be valid.  If negating, then just one
	// match means that we have failed.
	// Either way, return on the first hit.

	m.log.Println(m.pattern, "set", m.set)

	// Find the basename of the path by looking for the last non-empty segment
	filename := ""
	for i := len(fparts) - 1; filename == "" && i >= 0; i-- {
		filename = fparts[i]
	}

	for _, pattern := range m.set {
		file := fparts
		if m.options.MatchBase && len(pattern) == 1 {
			file = []string{filename}
		}
		var hit = m.matchOne(file, pattern, partial)
		if hit {
			if m.options.FlipNegate {
				return true
			}
			return !m.negate
		}
	}

	// didn't get any hits.  this is success if it's a negative
	// pattern, failure otherwise.
	if m.options.FlipNegate {
		return false
	}
	return m.negate
}

func (m *matcher) matchSegment(seg segment, part string) bool {
	if seg.pat.IsExact {
		return part == seg.pat.Literal
	}
	return seg.pat.Re.MatchString(part)
}

func (m *matcher) matchOne(file []string, pattern []segment, partial bool) bool {
	m.log.Println("matchOne", file, pattern)

	m.log.Println("matchOne", len(file), len(pattern))

	fi := 0
	pi := 0
	fl := len(file)
	pl := len(pattern)

	for ; fi < fl && pi < pl; fi, pi = fi+1, pi+1 {
		m.log.Println("matchOne loop")
		var p = pattern[pi]
		var f = file[fi]

		m.log.Printf("%v %v %#v\n", pattern, p, f)

		if p.isGlobStar {
			m.log.Println("GLOBSTAR", pattern, p, f)

			// "**"
			// a/**/b/**/c would match the following:
			// a/b/x/y/z/c
			// a/x/y/z/b/c
			// a/b/x/b/x/c
			// a/b/c
			// To do this, take the rest of the pattern after
			// the **, and see if it would match the file remainder.
			// If so, return success.
			// If not, the ** "swallows" a segment, and try again.
			// This is recursively awful.
			var fr = fi
			var pr = pi + 1
			if pr == pl {
				m.log.Println("** at the end")
				// a ** at the end will just swallow the rest.
				// We have found a match.
				// however, it will not swallow /.x, unless
				// options.dot is set.
				// . and .. are *never* matched by **, for explosively
				// exponential reasons.
				for _, part := range file[fi:] {
					if part == "." || part == ".." || (!m.options.Dot && len(part) != 0 && part[0] == '.') {
						return false
					}
				}
				return true
			}

			// ok, let's see if we can swallow whatever we can.
			for fr < fl {
				swallowee := file[fr]

				m.log.Println("\nglobstar while", file, fr, pattern, pr, swallowee)

				if m.matchOne(file[fr:], pattern[pr:], partial) {
					m.log.Println("globstar found match!", fr, fl, swallowee)
					// found a match.
					return true
				} else {
					// can't swallow "." or ".." ever.
					// can only swallow ".foo" when explicitly asked.
					if swallowee == "." || swallowee == ".." || (!m.options.Dot && swallowee[0] == '.') {
						m.log.Println("dot detected!", file, fr, pattern, pr)
						break
					}

					// ** swallows a segment, and continue.
					m.log.Println("globstar swallow a segment, and continue")
					fr++
				}
			}

			// no match was found.
			// However, in partial mode, we can't say this is necessarily over.
			// If there's more *pattern* left, then
			if partial {
				// ran out of file
				m.log.Println("\n>>> no match, partial?", file, fr, pattern, pr)
				if fr == fl {
					return true
				}
			}

			return false
		}

		// something other than **
		// non-magic patterns just have to match exactly
		// patterns with magic have been turned into regexps.
		hit := m.matchSegment(p, f)
		m.log.Println("pattern match", p, f, hit)
		if !hit {
			return false
		}
	}

	// Note: ending in / means that we'll get a final ""
	// at the end of the pattern.  This can only match a
	// corresponding "" at the end of the file.
	// If the file ends in /, then it can only match a
	// a pattern that ends in /, unless the pattern just
	// doesn't have any more for it. But, a/b/ should *not*
	// match "a/b/*", even though "" matches against the
	// [^/]*? pattern, except in partial mode, where it might
	// simply not be reached yet.
	// However, a/b/ should still satisfy a/*

	// now either we fell off the end of the pattern, or we're done.
	if fi == fl && pi == pl {
		// ran out of pattern and filename at the same time.
		// an exact hit!
		return true
	} else if fi == fl {
		// ran out of file, but still had pattern left.
		// this is ok if we're doing the match as part of
		// a glob fs traversal.
		return partial
	} else if pi == pl {
		// ran out of pattern, still have file left.
		// this is only acceptable if we're on the very last
		// empty segment of a file with a trailing slash.
		// a/* should match a/b/
		return fi == fl-1 && file[fi] == ""
	}

	// should be unreachable.
	panic("wtf?")
}
