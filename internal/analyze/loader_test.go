package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-serializer/typedecl"
)

const recordsPkg = "csv-serializer/internal/analyze/testdata/records"

func loadRecords(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer("").LoadPackages("./testdata/records")
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadRecords(t)

	assert.Contains(t, graph.Packages, recordsPkg)
	assert.Contains(t, graph.Types, TypeID{PkgPath: recordsPkg, Name: "Order"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: recordsPkg, Name: "Product"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: recordsPkg, Name: "Code"}, "unclassified declared types are kept")
	assert.Len(t, graph.Packages[recordsPkg].Types, 8)
}

func TestAnalyzer_Kinds(t *testing.T) {
	graph := loadRecords(t)

	kinds := map[string]TypeKind{
		"OrderStatus": TypeKindEnum,
		"Priority":    TypeKindEnum,
		"Stamp":       TypeKindDate,
		"Clock":       TypeKindDate,
		"Order":       TypeKindStruct,
		"Line":        TypeKindStruct,
		"Code":        TypeKindUnknown,
	}

	for name, kind := range kinds {
		info := graph.GetType(TypeID{PkgPath: recordsPkg, Name: name})
		require.NotNil(t, info, name)
		assert.Equal(t, kind, info.Kind, name)
		assert.False(t, info.External, name)
	}

	timeInfo := graph.GetType(TypeID{PkgPath: "time", Name: "Time"})
	require.NotNil(t, timeInfo, "referenced time.Time is analyzed")
	assert.Equal(t, TypeKindDate, timeInfo.Kind)
	assert.True(t, timeInfo.External)

	durationInfo := graph.GetType(TypeID{PkgPath: "time", Name: "Duration"})
	require.NotNil(t, durationInfo, "time.Duration has typed constants in its package")
	assert.Equal(t, TypeKindEnum, durationInfo.Kind)

	assert.Nil(t, graph.GetType(TypeID{PkgPath: "time", Name: "Location"}))
}

func TestAnalyzer_ImportedEnums(t *testing.T) {
	graph := loadRecords(t)

	assert.NotContains(t, graph.Packages, recordsPkg+"/money", "money is only imported")

	currency := graph.GetType(TypeID{PkgPath: recordsPkg + "/money", Name: "Currency"})
	require.NotNil(t, currency, "typed constants of an imported package are visible")
	assert.Equal(t, TypeKindEnum, currency.Kind)
	assert.True(t, currency.External)

	assert.Nil(t, graph.GetType(TypeID{PkgPath: recordsPkg + "/money", Name: "Cents"}))

	reg := graph.Registry("")
	assert.True(t, reg.IsEnum("money.Currency"))
	assert.False(t, reg.IsEnum("money.Cents"))

	line := graph.GetType(TypeID{PkgPath: recordsPkg, Name: "Line"})
	require.NotNil(t, line)
	assert.Equal(t, []typedecl.Member{
		typedecl.Property("ProductID", typedecl.Single{Name: "int"}),
		typedecl.Property("Quantity", typedecl.Single{Name: "int"}),
		typedecl.Property("Currency", typedecl.Single{Name: recordsPkg + "/money.Currency"}),
		typedecl.Property("Total", typedecl.Single{Name: recordsPkg + "/money.Cents"}),
	}, line.Members)
}

func TestAnalyzer_ProductMembers(t *testing.T) {
	graph := loadRecords(t)

	product := graph.GetType(TypeID{PkgPath: recordsPkg, Name: "Product"})
	require.NotNil(t, product)

	want := []typedecl.Member{
		typedecl.Property("id", typedecl.Single{Name: "int"}),
		typedecl.Property("sku", typedecl.Single{Name: "string"}),
		typedecl.Property("description", typedecl.Union{Names: []string{"string", "null"}}),
		typedecl.Property("price_cents", typedecl.Union{Names: []string{"int", "float"}}),
		typedecl.Property("available", typedecl.Single{Name: "bool"}),
		typedecl.Property("tags", typedecl.Single{Name: "array"}),
		typedecl.Property("created_at", typedecl.Single{Name: "time.Time"}),
		typedecl.Property("legacy", nil),
	}
	assert.Equal(t, want, product.Members)
}

func TestAnalyzer_OrderMembers(t *testing.T) {
	graph := loadRecords(t)

	order := graph.GetType(TypeID{PkgPath: recordsPkg, Name: "Order"})
	require.NotNil(t, order)

	want := []typedecl.Member{
		typedecl.Property("ID", typedecl.Single{Name: "int"}),
		typedecl.Property("Status", typedecl.Single{Name: recordsPkg + ".OrderStatus"}),
		typedecl.Property("Priority", typedecl.Union{Names: []string{recordsPkg + ".Priority", "null"}}),
		typedecl.Property("ShippedOn", typedecl.Single{Name: recordsPkg + ".Stamp"}),
		typedecl.Property("Lines", typedecl.Single{Name: "iterable"}),
		typedecl.Property("Metadata", typedecl.Single{Name: "mixed"}),
		typedecl.Property("Timeout", typedecl.Single{Name: "time.Duration"}),
		typedecl.Property("Next", typedecl.Union{Names: []string{recordsPkg + ".Order", "null"}}),
	}
	assert.Equal(t, want, order.Members)
}

func TestTypeGraph_Registry(t *testing.T) {
	graph := loadRecords(t)
	reg := graph.Registry("")

	assert.True(t, reg.IsEnum(recordsPkg+".OrderStatus"))
	assert.True(t, reg.IsEnum("records.Priority"))
	assert.False(t, reg.IsEnum("records.Code"))
	assert.True(t, reg.IsDate("records.Stamp"))
	assert.True(t, reg.IsDate("records.Clock"))
	assert.True(t, reg.IsDate("time.Time"))
	assert.True(t, reg.IsDate("DateTimeInterface"))
	assert.False(t, reg.IsDate("records.Order"))
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer("").LoadPackages("./testdata/missing")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: "example.com/app/records", Name: "Order"}
	assert.Equal(t, "example.com/app/records.Order", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "enum", TypeKindEnum.String())
	assert.Equal(t, "date", TypeKindDate.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
