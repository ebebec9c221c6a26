package mapper

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x12map/mapspec"
	"x12map/x12"
)

func loadTransaction(t *testing.T, name string, spec *mapspec.File) *x12.Transaction {
	t.Helper()

	data, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)

	tx := x12.ParseString(string(data))
	if spec != nil {
		spec.Apply(tx)
	}

	return tx
}

func loadSpec(t *testing.T, name string) *mapspec.File {
	t.Helper()

	f, err := mapspec.LoadFile("../testdata/" + name)
	require.NoError(t, err)
	require.True(t, f.Validate().IsValid())

	return f
}

func TestExtract_TransactionType(t *testing.T) {
	tx := x12.ParseString("ISA*00*          *00\nGS*GF*SCAC*RECEIVER*20230929*1200\nST*944*0001")
	spec := mapspec.NewGroup().Set("type", mapspec.NewFieldMap("ST", 0))

	assert.Equal(t, map[string]any{"type": "944"}, Extract(tx, spec))

	field, err := tx.Type()
	require.NoError(t, err)
	assert.Equal(t, "944", field.Content())
}

func TestExtract_944(t *testing.T) {
	spec := loadSpec(t, "944.yaml")
	tx := loadTransaction(t, "944.edi", spec)

	got := Extract(tx, spec.Map)

	assert.Equal(t, map[string]any{
		"sender":        "SENDER",
		"date":          "20230929",
		"type":          "944",
		"controlNumber": "0001",
	}, got["header"])
	assert.Equal(t, map[string]any{
		"date":          "20230929",
		"receiptNumber": "4280",
		"orderNumber":   "PO98765",
	}, got["receipt"])
	assert.Equal(t, "Distribution Center", got["warehouse"])
	assert.Equal(t, "600", got["totalReceived"])
	assert.Equal(t, "warehouse-receipt", got["source"])

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 5)

	assert.Equal(t, map[string]any{
		"quantity":  "120",
		"itemCode":  "100000154",
		"lotNumber": "22413960",
		"lotDate":   "20230901",
		"weight":    "1440",
	}, items[0])
	assert.Equal(t, "22413963", items[1].(map[string]any)["lotNumber"])
	assert.Equal(t, "100000158", items[4].(map[string]any)["itemCode"])
}

func TestExtract_990(t *testing.T) {
	spec := loadSpec(t, "990.yaml")
	tx := loadTransaction(t, "990.edi", spec)

	got := Extract(tx, spec.Map)

	assert.Equal(t, map[string]any{"sender": "SCAC", "controlNumber": "202"}, got["group"])

	responses, ok := got["responses"].([]any)
	require.True(t, ok)
	require.Len(t, responses, 3)

	assert.Equal(t, map[string]any{
		"shipmentId": "SHIP001",
		"date":       "20230929",
		"action":     "A",
		"carrier":    "ABC Hauling STAR USA",
		"references": []any{
			map[string]any{"qualifier": "CN", "reference": "3216547"},
			map[string]any{"qualifier": "CI", "reference": "AUGBIX2"},
			map[string]any{"qualifier": "CA", "reference": "ABC Hauling STAR USA"},
		},
	}, responses[0])
	assert.Equal(t, "D", responses[2].(map[string]any)["action"])
}

func TestExtract_Omissions(t *testing.T) {
	tx := loadTransaction(t, "944.edi", nil)

	tests := []struct {
		name string
		node mapspec.Node
	}{
		{name: "qualifier matches no segment", node: mapspec.NewQualifiedFieldMap("N1", 0, "ST", 1)},
		{name: "unknown segment", node: mapspec.NewFieldMap("ZZ", 0)},
		{name: "field out of range", node: mapspec.NewFieldMap("W17", 12)},
		{name: "ambiguous without qualifier", node: mapspec.NewFieldMap("N9", 1)},
		{name: "qualifier matches none of several", node: mapspec.NewQualifiedFieldMap("N9", 0, "ZZ", 1)},
		{name: "no loop registered", node: mapspec.NewLoopMap(0, mapspec.NewGroup())},
		{name: "nil literal", node: mapspec.Lit(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tx, mapspec.NewGroup().Set("key", tt.node))
			assert.NotContains(t, got, "key")
		})
	}
}

func TestExtract_QualifiedPick(t *testing.T) {
	tx := loadTransaction(t, "944.edi", nil)

	spec := mapspec.NewGroup().
		Set("third", mapspec.NewQualifiedFieldMap("N9", 1, "20230903", 0)).
		Set("warehouse", mapspec.NewQualifiedFieldMap("N1", 0, "WH", 3))

	assert.Equal(t, map[string]any{"third": "LT", "warehouse": "PC1234"}, Extract(tx, spec))
}

func TestExtract_RepeatingWithoutMatches(t *testing.T) {
	tx := loadTransaction(t, "944.edi", nil)

	spec := mapspec.NewGroup().
		Set("none", mapspec.NewRepeatingSegmentMap("ZZ", mapspec.NewGroup().Set("a", &mapspec.FieldMap{ValuePosition: 0}))).
		Set("lots", mapspec.NewQualifiedRepeatingSegmentMap("N9", 1, "20230902", mapspec.NewGroup().
			Set("date", &mapspec.FieldMap{ValuePosition: 1})))

	got := Extract(tx, spec)
	assert.Equal(t, []any{}, got["none"])
	assert.Equal(t, []any{map[string]any{"date": "20230902"}}, got["lots"])
}

func TestExtract_GroupsListsAndLiterals(t *testing.T) {
	tx := loadTransaction(t, "944.edi", nil)

	spec := mapspec.NewGroup().
		Set("header", mapspec.NewGroup().
			Set("type", mapspec.NewFieldMap("ST", 0)).
			Set("version", mapspec.Lit(1))).
		Set("pair", mapspec.NewList(mapspec.NewFieldMap("W14", 0), mapspec.NewFieldMap("ZZ", 0), mapspec.Lit(true)))

	assert.Equal(t, map[string]any{
		"header": map[string]any{"type": "944", "version": 1},
		"pair":   []any{"600", nil, true},
	}, Extract(tx, spec))
}

func TestExtract_UnknownTypeStillExtracts(t *testing.T) {
	tx := loadTransaction(t, "944.edi", nil)

	spec, diags := mapspec.ReviveGroup(map[string]any{
		"env": map[string]any{
			"_type": "Envelope",
			"type":  map[string]any{"_type": "FieldMap", "segmentIdentifier": "ST", "valuePosition": 0},
		},
	})
	require.True(t, diags.HasWarnings())

	assert.Equal(t, map[string]any{"env": map[string]any{"type": "944"}}, Extract(tx, spec))
}

func TestExtract_InferredLoop(t *testing.T) {
	tx := loadTransaction(t, "944.edi", nil)
	loop := tx.InferLoops()

	spec := mapspec.NewGroup().Set("items", mapspec.NewLoopMap(loop.Position, mapspec.NewGroup().
		Set("lot", mapspec.NewFieldMap("W07", 7))))

	items := Extract(tx, spec)["items"].([]any)
	require.Len(t, items, 5)
	assert.Equal(t, map[string]any{"lot": "22413963"}, items[1])
}

func TestExtract_NilSpec(t *testing.T) {
	assert.Empty(t, Extract(x12.NewTransaction(), nil))
}

func TestExtract_QualifierWithLeadingZeros(t *testing.T) {
	spec, err := mapspec.Parse([]byte(`
map:
  purpose: {_type: FieldMap, segmentIdentifier: BEG, identifierPosition: 0, identifierValue: 00, valuePosition: 1}
  other: {_type: FieldMap, segmentIdentifier: BEG, identifierPosition: 0, identifierValue: 01, valuePosition: 1}
`))
	require.NoError(t, err)

	tx := x12.ParseString("BEG*00*X\nBEG*05*Y")

	assert.Equal(t, map[string]any{"purpose": "X"}, Extract(tx, spec.Map))
}
