package lazy

import (
	"github.com/on-the-ground/lazyseq/shared/cmpop"
	"github.com/on-the-ground/lazyseq/shared/keypath"
)

// Where keeps pairs whose value at path compares true against target under
// op. Values whose path does not resolve compare as nil.
func (s Seq[K, V]) Where(path string, op cmpop.Operator, target any) Seq[K, V] {
	return s.Filter(func(v V, _ K) bool {
		got, _ := keypath.Resolve(v, path)
		return cmpop.Compare(got, op, target)
	})
}

// WhereEq is Where with loose equality.
func (s Seq[K, V]) WhereEq(path string, target any) Seq[K, V] {
	return s.Where(path, cmpop.OpEq, target)
}

// WhereStrict is Where with strict (type-exact) equality.
func (s Seq[K, V]) WhereStrict(path string, target any) Seq[K, V] {
	return s.Where(path, cmpop.OpIdentical, target)
}

// FirstWhere returns the first value matching Where's condition.
func (s Seq[K, V]) FirstWhere(path string, op cmpop.Operator, target any) (V, bool) {
	return s.Where(path, op, target).First()
}
