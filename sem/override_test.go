package sem

import (
	"testing"

	"mocha/typing"

	"github.com/stretchr/testify/assert"
)

func TestCanOverride(t *testing.T) {
	animal := newClass("Animal", nil)
	dog := newClass("Dog", animal)

	tests := []struct {
		name  string
		super func() *MethodSymbol
		sub   func() *MethodSymbol
		want  OverrideProblem
	}{
		{
			name:  "identical",
			super: func() *MethodSymbol { return addMethod(nil, "m", typing.Int) },
			sub:   func() *MethodSymbol { return addMethod(nil, "m", typing.Int) },
			want:  OverrideOK,
		},
		{
			name:  "int versus void",
			super: func() *MethodSymbol { return addMethod(nil, "m", typing.Int) },
			sub:   func() *MethodSymbol { return addMethod(nil, "m", typing.Void) },
			want:  OverrideReturnType,
		},
		{
			name:  "covariant return",
			super: func() *MethodSymbol { return addMethod(nil, "make", animal.Type) },
			sub:   func() *MethodSymbol { return addMethod(nil, "make", dog.Type) },
			want:  OverrideOK,
		},
		{
			name:  "contravariant return",
			super: func() *MethodSymbol { return addMethod(nil, "make", dog.Type) },
			sub:   func() *MethodSymbol { return addMethod(nil, "make", animal.Type) },
			want:  OverrideReturnType,
		},
		{
			name:  "promoted return",
			super: func() *MethodSymbol { return addMethod(nil, "m", typing.Float) },
			sub:   func() *MethodSymbol { return addMethod(nil, "m", typing.Int) },
			want:  OverrideReturnType,
		},
		{
			name:  "different parameters",
			super: func() *MethodSymbol { return addMethod(nil, "m", typing.Void, typing.Int) },
			sub:   func() *MethodSymbol { return addMethod(nil, "m", typing.Void, typing.Float) },
			want:  OverrideSignature,
		},
		{
			name:  "reduced visibility",
			super: func() *MethodSymbol { return addMethod(nil, "m", typing.Void) },
			sub: func() *MethodSymbol {
				m := addMethod(nil, "m", typing.Void)
				m.Visibility = Protected
				return m
			},
			want: OverrideVisibility,
		},
		{
			name: "widened visibility",
			super: func() *MethodSymbol {
				m := addMethod(nil, "m", typing.Void)
				m.Visibility = Default
				return m
			},
			sub:  func() *MethodSymbol { return addMethod(nil, "m", typing.Void) },
			want: OverrideOK,
		},
		{
			name: "static mismatch",
			super: func() *MethodSymbol {
				m := addMethod(nil, "m", typing.Void)
				m.Static = true
				return m
			},
			sub:  func() *MethodSymbol { return addMethod(nil, "m", typing.Void) },
			want: OverrideStatic,
		},
		{
			name: "final super",
			super: func() *MethodSymbol {
				m := addMethod(nil, "m", typing.Void)
				m.Final = true
				return m
			},
			sub:  func() *MethodSymbol { return addMethod(nil, "m", typing.Void) },
			want: OverrideFinal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanOverride(tt.sub(), tt.super())
			assert.Equal(t, tt.want, got, got.String())
		})
	}
}
