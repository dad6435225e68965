package diff

import "github.com/tangent-ml/tangent/internal/tag"

// Extract recovers t's tangent from v, along with the primal-with-respect-
// to-t remainder. Terms containing t move to the tangent side with t
// removed from their tag-set (the tangent is itself a Differential when
// higher or mixed derivatives are in play); the rest stay primal.
//
// A tag occurring nowhere in v is not an error: the input comes back
// unchanged with an exact zero tangent.
func Extract(v any, t tag.Tag) (primal any, tangent any) {
	d, ok := v.(*Differential)
	if !ok {
		return v, 0.0
	}
	var keep, tang []Term
	for _, tm := range d.terms {
		if tm.tags.Contains(t) {
			tang = append(tang, Term{tags: tm.tags.Without(t), coeff: tm.coeff})
		} else {
			keep = append(keep, tm)
		}
	}
	if len(tang) == 0 {
		return d, 0.0
	}
	return FromTerms(keep), FromTerms(tang)
}
