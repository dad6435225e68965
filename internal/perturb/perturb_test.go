package perturb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangent-ml/tangent/internal/diff"
	"github.com/tangent-ml/tangent/internal/tag"
)

func TestIsPerturbed(t *testing.T) {
	assert.False(t, IsPerturbed(3.0, 1))
	assert.True(t, IsPerturbed(diff.Bundle(3.0, 1.0, 1), 1))
	assert.False(t, IsPerturbed(diff.Bundle(3.0, 1.0, 1), 2))

	// A tag buried inside a coefficient still counts.
	nested := diff.Bundle(diff.Bundle(2.0, 1.0, 1), 1.0, 2)
	assert.True(t, IsPerturbed(nested, 1))

	assert.True(t, IsPerturbed([]any{1.0, diff.Bundle(2.0, 1.0, 3)}, 3))
	assert.False(t, IsPerturbed(map[string]any{"a": 1.0}, 1))
	assert.True(t, IsPerturbed(Pair{First: 1.0, Second: diff.Bundle(0.0, 1.0, 4)}, 4))

	// Functions are opaque, so the answer is conservatively yes.
	assert.True(t, IsPerturbed(Fn(func(args ...any) any { return args[0] }), 99))
}

// TestInsertTag_NumberIdentity tests that seeding a zero tangent on a
// number is the identity, thanks to zero suppression.
func TestInsertTag_NumberIdentity(t *testing.T) {
	assert.Equal(t, 3.0, InsertTag(3.0, 1))
	assert.Equal(t, 7, InsertTag(7, 1))
}

func TestInsertTag_Containers(t *testing.T) {
	got := InsertTag([]any{1.0, 2.0}, 1)
	assert.Empty(t, cmp.Diff([]any{1.0, 2.0}, got))

	p := InsertTag(Pair{First: 1.0, Second: 2.0}, 1)
	assert.Equal(t, Pair{First: 1.0, Second: 2.0}, p)
}

func TestInsertTag_UnknownTypePanics(t *testing.T) {
	assert.Panics(t, func() { InsertTag(struct{ x int }{1}, 1) })
}

func TestExtractTangent_Containers(t *testing.T) {
	v := []any{
		diff.Bundle(1.0, 10.0, 1),
		2.0,
		map[string]any{"k": diff.Bundle(3.0, 30.0, 1)},
		Pair{First: diff.Bundle(4.0, 40.0, 1), Second: 5.0},
	}
	want := []any{
		10.0,
		0.0,
		map[string]any{"k": 30.0},
		Pair{First: 40.0, Second: 0.0},
	}
	got := ExtractTangent(v, 1)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestExtractTangent_FloatSlice(t *testing.T) {
	got := ExtractTangent([]float64{1.5, 2.5, 3.5}, 1)
	assert.Empty(t, cmp.Diff([]float64{0, 0, 0}, got))
}

// TestExtractTangent_AbsentTag tests the idempotent zero: extraction for
// a tag occurring nowhere yields the typed zero of the same shape.
func TestExtractTangent_AbsentTag(t *testing.T) {
	assert.Equal(t, 0.0, ExtractTangent(3.0, 1))
	assert.Equal(t, 0, ExtractTangent(7, 1))
	assert.Equal(t, 0.0, ExtractTangent(diff.Bundle(3.0, 1.0, 2), 1))

	got := ExtractTangent([]any{1.0, 2}, 1)
	assert.Empty(t, cmp.Diff([]any{0.0, 0}, got))
}

func TestExtractTangent_UnknownTypePanics(t *testing.T) {
	assert.Panics(t, func() { ExtractTangent(struct{ x int }{1}, 1) })
}

func TestRenameTag(t *testing.T) {
	v := diff.FromTerms([]diff.Term{
		diff.NewTerm(nil, 5.0),
		diff.NewTerm(tag.NewSet(1), 2.0),
		diff.NewTerm(tag.NewSet(2), 3.0),
	})

	// 5 + 2ε1 + 3ε2, renamed 1→2, merges into 5 + 5ε2.
	got := RenameTag(v, 1, 2)
	assert.True(t, diff.StrictEqual(got, diff.Bundle(5.0, 5.0, 2)), "got %v", got)

	// Renaming to the same tag is the identity.
	assert.Equal(t, v, RenameTag(v, 1, 1))
}

// TestRenameTag_Annihilation tests that renaming a tag onto another tag
// already present in the same term squares it away.
func TestRenameTag_Annihilation(t *testing.T) {
	v := diff.FromTerms([]diff.Term{
		diff.NewTerm(nil, 5.0),
		diff.NewTerm(tag.NewSet(1, 2), 7.0),
	})
	assert.Equal(t, 5.0, RenameTag(v, 1, 2))
}

func TestRenameTag_Containers(t *testing.T) {
	v := []any{diff.Bundle(1.0, 2.0, 1), "opaque", 4}
	got := RenameTag(v, 1, 9).([]any)
	require.Len(t, got, 3)
	assert.True(t, diff.StrictEqual(got[0], diff.Bundle(1.0, 2.0, 9)))
	assert.Equal(t, "opaque", got[1])
	assert.Equal(t, 4, got[2])
}

// wrapped is a custom container exercising the Perturbable extension point.
type wrapped struct{ inner any }

func (w wrapped) IsPerturbed(t tag.Tag) bool   { return IsPerturbed(w.inner, t) }
func (w wrapped) InsertTag(t tag.Tag) any      { return wrapped{inner: InsertTag(w.inner, t)} }
func (w wrapped) ExtractTangent(t tag.Tag) any { return wrapped{inner: ExtractTangent(w.inner, t)} }
func (w wrapped) RenameTag(from, to tag.Tag) any {
	return wrapped{inner: RenameTag(w.inner, from, to)}
}

func TestPerturbableExtension(t *testing.T) {
	w := wrapped{inner: diff.Bundle(2.0, 3.0, 1)}

	assert.True(t, IsPerturbed(w, 1))
	assert.False(t, IsPerturbed(w, 2))

	got := ExtractTangent(w, 1)
	assert.Equal(t, wrapped{inner: 3.0}, got)

	renamed := RenameTag(w, 1, 5).(wrapped)
	assert.True(t, diff.StrictEqual(renamed.inner, diff.Bundle(2.0, 3.0, 5)))
}

func TestAsFn(t *testing.T) {
	if _, ok := AsFn(3.0); ok {
		t.Fatal("numbers are not functions")
	}

	f, ok := AsFn(func(x any) any { return x })
	require.True(t, ok)
	assert.Equal(t, 7.0, f(7.0))

	g, ok := AsFn(func(args ...any) any { return args[1] })
	require.True(t, ok)
	assert.Equal(t, "b", g("a", "b"))
}
