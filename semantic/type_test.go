package semantic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"csv-serializer/semantic"
)

func Example() {
	for _, name := range []string{"int", "null", "Int", "enum", "object"} {
		t, ok := semantic.FromKeyword(name)
		fmt.Println(name, t, ok, t.FilterFlag())
	}
	// Output:
	// int TypeInt true FilterValidateInt
	// null TypeNull true FilterUnsafeRaw
	// Int Type(0) false FilterUnsafeRaw
	// enum Type(0) false FilterUnsafeRaw
	// object Type(0) false FilterUnsafeRaw
}

func TestFromKeyword(t *testing.T) {
	t.Parallel()

	expected := map[string]semantic.Type{
		"bool":     semantic.TypeBool,
		"true":     semantic.TypeTrue,
		"false":    semantic.TypeFalse,
		"null":     semantic.TypeNull,
		"int":      semantic.TypeInt,
		"float":    semantic.TypeFloat,
		"string":   semantic.TypeString,
		"mixed":    semantic.TypeMixed,
		"array":    semantic.TypeArray,
		"iterable": semantic.TypeIterable,
	}

	for name, want := range expected {
		got, ok := semantic.FromKeyword(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
		assert.Equal(t, name, got.Name())

		// no other keyword maps to the same tag
		for other, otherType := range expected {
			if other != name {
				assert.NotEqual(t, got, otherType, "%s and %s", name, other)
			}
		}
	}

	for _, name := range []string{"BOOL", "Int", " int", "enum", "date", "self", "static", "object", "callable", ""} {
		_, ok := semantic.FromKeyword(name)
		assert.False(t, ok, "%q must not be a keyword", name)
	}

	assert.Len(t, semantic.Keywords(), len(expected))
}

func TestType_IsScalar(t *testing.T) {
	t.Parallel()

	scalars := []semantic.Type{
		semantic.TypeBool, semantic.TypeTrue, semantic.TypeFalse,
		semantic.TypeInt, semantic.TypeFloat, semantic.TypeString,
	}

	var count int
	for _, typ := range semantic.All() {
		if typ.IsScalar() {
			count++
			assert.Contains(t, scalars, typ)
		}
	}

	assert.Equal(t, 6, count)
	assert.Len(t, semantic.All(), 12)
	assert.False(t, semantic.Type(0).IsScalar())
}

func TestType_FilterFlag(t *testing.T) {
	t.Parallel()

	for _, typ := range []semantic.Type{semantic.TypeBool, semantic.TypeTrue, semantic.TypeFalse} {
		assert.Equal(t, semantic.FilterValidateBool, typ.FilterFlag(), typ.String())
	}

	assert.Equal(t, semantic.FilterValidateInt, semantic.TypeInt.FilterFlag())
	assert.True(t, semantic.TypeInt.FilterFlag().Validates())
	assert.False(t, semantic.Filter(0).Validates())
	assert.Equal(t, semantic.FilterValidateFloat, semantic.TypeFloat.FilterFlag())

	raw := []semantic.Type{
		semantic.TypeString, semantic.TypeNull, semantic.TypeMixed, semantic.TypeArray,
		semantic.TypeIterable, semantic.TypeEnum, semantic.TypeDate,
	}
	for _, typ := range raw {
		assert.Equal(t, semantic.FilterUnsafeRaw, typ.FilterFlag(), typ.String())
		assert.False(t, typ.FilterFlag().Validates())
	}

	distinct := map[semantic.Filter]struct{}{}
	for _, typ := range semantic.All() {
		distinct[typ.FilterFlag()] = struct{}{}
	}
	assert.Len(t, distinct, 4)
}

func TestType_EqualsAndIsOneOf(t *testing.T) {
	t.Parallel()

	assert.True(t, semantic.TypeInt.Equals(semantic.TypeInt))
	assert.False(t, semantic.TypeInt.Equals(semantic.TypeFloat))
	assert.False(t, semantic.Type(0).Equals(semantic.Type(0)))

	assert.True(t, semantic.TypeDate.IsOneOf(semantic.TypeEnum, semantic.TypeDate))
	assert.False(t, semantic.TypeDate.IsOneOf(semantic.TypeEnum, semantic.TypeString))
	assert.False(t, semantic.TypeDate.IsOneOf())
}

func TestType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TypeIterable", semantic.TypeIterable.String())
	assert.Equal(t, "TypeDate", semantic.TypeDate.String())
	assert.Equal(t, "Type(13)", semantic.Type(13).String())
	assert.Equal(t, "date", semantic.TypeDate.Name())
	assert.Empty(t, semantic.Type(13).Name())
}
