package typing

import (
	"testing"

	"mocha/ast"

	"github.com/stretchr/testify/assert"
)

// testClass is a minimal class declaration for subtyping tests.
type testClass struct {
	name  string
	super *testClass
}

func (tc *testClass) ClassName() string {
	return tc.name
}

func (tc *testClass) SuperInfo() ClassInfo {
	if tc.super == nil {
		return nil
	}

	return tc.super
}

func classOf(tc *testClass) *ClassType {
	return &ClassType{Name: tc.name, Class: tc}
}

var allPrimitives = []PrimitiveType{Int, Float, String, Boolean, Char, Void}

func TestPromotionTransitivity(t *testing.T) {
	for _, a := range allPrimitives {
		for _, b := range allPrimitives {
			for _, c := range allPrimitives {
				if CanPromote(a, b) && CanPromote(b, c) {
					assert.True(t, CanPromote(a, c), "%s -> %s -> %s", a.Repr(), b.Repr(), c.Repr())
				}
			}
		}
	}

	assert.Equal(t, CanPromote(Char, Float), CanPromote(Char, Int) && CanPromote(Int, Float))
}

func TestPromotionIsStrictWidening(t *testing.T) {
	assert.True(t, CanPromote(Char, Int))
	assert.True(t, CanPromote(Int, Float))
	assert.True(t, CanPromote(Char, Float))

	assert.False(t, CanPromote(Int, Int))
	assert.False(t, CanPromote(Float, Int))
	assert.False(t, CanPromote(Int, Char))
	assert.False(t, CanPromote(Boolean, Int))
	assert.False(t, CanPromote(Char, String))
}

func TestErrorIsAssignableEverywhere(t *testing.T) {
	object := &testClass{name: "Object"}
	others := []Type{
		Int, Float, String, Boolean, Char, Void, Null,
		classOf(object),
		NewArrayType(Int, 2),
		&FuncType{ReturnType: Void},
	}

	for _, other := range others {
		assert.True(t, IsAssignableFrom(Error, other), other.Repr())
		assert.True(t, IsAssignableFrom(other, Error), other.Repr())
		assert.True(t, CanCast(other, Error), other.Repr())
		assert.True(t, IsError(ResultOfBinaryOp(Error, other, ast.OpAdd)))
		assert.True(t, IsError(ResultOfBinaryOp(other, Error, ast.OpEq)))
	}
}

func TestNullAssignability(t *testing.T) {
	object := &testClass{name: "Object"}

	assert.True(t, IsAssignableFrom(classOf(object), Null))
	assert.True(t, IsAssignableFrom(NewArrayType(Int, 1), Null))

	assert.False(t, IsAssignableFrom(String, Null))
	assert.False(t, IsAssignableFrom(Int, Null))
	assert.False(t, IsAssignableFrom(Null, classOf(object)))
}

func TestClassAssignabilityFollowsChain(t *testing.T) {
	animal := &testClass{name: "Animal"}
	dog := &testClass{name: "Dog", super: animal}
	puppy := &testClass{name: "Puppy", super: dog}
	cat := &testClass{name: "Cat", super: animal}

	assert.True(t, IsAssignableFrom(classOf(animal), classOf(puppy)))
	assert.True(t, IsAssignableFrom(classOf(dog), classOf(puppy)))
	assert.False(t, IsAssignableFrom(classOf(puppy), classOf(animal)))
	assert.False(t, IsAssignableFrom(classOf(cat), classOf(dog)))

	// downcasts are allowed, unrelated casts are not
	assert.True(t, CanCast(classOf(animal), classOf(puppy)))
	assert.False(t, CanCast(classOf(cat), classOf(dog)))
}

func TestSubclassWalkTerminatesOnCycle(t *testing.T) {
	a := &testClass{name: "A"}
	b := &testClass{name: "B", super: a}
	a.super = b

	c := &testClass{name: "C"}
	assert.False(t, IsSubclass(a, c))
	assert.True(t, IsSubclass(a, b))
}

func TestArrayTypes(t *testing.T) {
	nested := NewArrayType(NewArrayType(Int, 1), 2)
	assert.True(t, Equals(nested, &ArrayType{Elem: Int, Dims: 3}))
	assert.Equal(t, "int[][][]", nested.Repr())

	assert.True(t, Equals(ElemType(nested.(*ArrayType)), NewArrayType(Int, 2)))
	assert.True(t, Equals(ElemType(&ArrayType{Elem: Char, Dims: 1}), Char))

	assert.False(t, IsAssignableFrom(NewArrayType(Float, 1), NewArrayType(Int, 1)))
	assert.False(t, IsAssignableFrom(NewArrayType(Int, 1), NewArrayType(Int, 2)))

	animal := &testClass{name: "Animal"}
	dog := &testClass{name: "Dog", super: animal}
	assert.True(t, IsAssignableFrom(NewArrayType(classOf(animal), 1), NewArrayType(classOf(dog), 1)))

	assert.True(t, IsError(NewArrayType(Error, 2)))
}

func TestCasts(t *testing.T) {
	assert.True(t, CanCast(Float, Int))
	assert.True(t, CanCast(Int, Char))
	assert.False(t, CanCast(Boolean, Int))
	assert.False(t, CanCast(Int, Boolean))
	assert.False(t, CanCast(String, Int))
	assert.True(t, CanCast(NewArrayType(Int, 1), NewArrayType(Float, 1)))
	assert.False(t, CanCast(NewArrayType(Int, 1), NewArrayType(Boolean, 1)))
}

func TestCommonSupertype(t *testing.T) {
	animal := &testClass{name: "Animal"}
	dog := &testClass{name: "Dog", super: animal}

	assert.Equal(t, Float, CommonSupertype(Int, Float))
	assert.Equal(t, Int, CommonSupertype(Int, Int))
	assert.True(t, Equals(classOf(animal), CommonSupertype(classOf(dog), classOf(animal))))
	assert.True(t, Equals(classOf(dog), CommonSupertype(Null, classOf(dog))))
	assert.True(t, IsError(CommonSupertype(Boolean, Int)))
}

func TestFunctionTypeEquality(t *testing.T) {
	f := &FuncType{ReturnType: Int, ParamTypes: []Type{Int, String}}
	g := &FuncType{ReturnType: Int, ParamTypes: []Type{Int, String}}
	h := &FuncType{ReturnType: Void, ParamTypes: []Type{Int, String}}
	k := &FuncType{ReturnType: Int, ParamTypes: []Type{Int}}

	assert.True(t, Equals(f, g))
	assert.False(t, Equals(f, h))
	assert.False(t, Equals(f, k))

	assert.True(t, Equals(
		&ConstructorType{ClassName: "A", ParamTypes: []Type{Float}},
		&ConstructorType{ClassName: "A", ParamTypes: []Type{Float}},
	))
	assert.Equal(t, "int(int, string)", f.Repr())
}
