package tag

// Set is a canonical tag-set: a sorted, duplicate-free slice of tags.
// Terms of a Differential key on a Set, so the sorted representation makes
// two sets with the same members compare equal regardless of how they were
// built. A nil Set is the empty set.
//
// Sets are treated as immutable; every operation returns a fresh slice.
type Set []Tag

// NewSet builds a canonical set from the given tags.
func NewSet(tags ...Tag) Set {
	var s Set
	for _, t := range tags {
		s, _ = s.With(t)
	}
	return s
}

// Contains reports whether t is a member of s.
func (s Set) Contains(t Tag) bool {
	for _, x := range s {
		if x == t {
			return true
		}
		if x > t {
			return false
		}
	}
	return false
}

// With inserts t, keeping the set sorted. ok is false when t was already a
// member: a repeated tag means the surrounding term is algebraically zero
// (infinitesimals square to zero).
func (s Set) With(t Tag) (Set, bool) {
	i := 0
	for i < len(s) && s[i] < t {
		i++
	}
	if i < len(s) && s[i] == t {
		return nil, false
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, t)
	out = append(out, s[i:]...)
	return out, true
}

// Without removes t from s. Removing an absent tag is a no-op.
func (s Set) Without(t Tag) Set {
	for i, x := range s {
		if x == t {
			out := make(Set, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			return out
		}
	}
	return s
}

// Union merges two sets. ok is false when the sets intersect, in which
// case the product of the corresponding terms vanishes.
func (s Set) Union(other Set) (Set, bool) {
	out := make(Set, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			return nil, false
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)
	return out, true
}

// Intersects reports whether the two sets share a tag.
func (s Set) Intersects(other Set) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			return true
		}
	}
	return false
}

// Equal reports member-wise equality.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Max returns the greatest tag and true, or zero and false for the empty set.
func (s Set) Max() (Tag, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Rename replaces from with to. ok is false when the renaming collapses two
// members into one, annihilating the surrounding term.
func (s Set) Rename(from, to Tag) (Set, bool) {
	if from == to || !s.Contains(from) {
		return s, true
	}
	return s.Without(from).With(to)
}

// Compare orders sets for canonical term ordering: by size first, then
// lexicographically. The empty set (the primal term) sorts first.
func (s Set) Compare(other Set) int {
	if len(s) != len(other) {
		if len(s) < len(other) {
			return -1
		}
		return 1
	}
	for i := range s {
		if s[i] != other[i] {
			if s[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
