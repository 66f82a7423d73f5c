package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoprivacy/internal/geoprim"
)

func testRecords() []Record {
	return []Record{
		{ID: "A1", Location: geoprim.NewGeographic(4.37, 50.83), Attributes: map[string]string{"Age": "23", "Gender": "M"}},
		{ID: "A2", Location: geoprim.NewGeographic(4.38, 50.84), Attributes: map[string]string{"Age": "31", "Gender": "F"}},
		{ID: "A3", Location: geoprim.NewGeographic(4.39, 50.85), Attributes: map[string]string{"Age": "47", "Gender": "F"}},
		{ID: "A4", Location: geoprim.NewGeographic(4.40, 50.86), Attributes: map[string]string{"Age": "62", "Gender": "M"}},
	}
}

func TestDataset_ByID(t *testing.T) {
	ds := New(testRecords())

	r, ok := ds.ByID("A3")
	require.True(t, ok)
	assert.Equal(t, "F", r.Attr("Gender"))

	_, ok = ds.ByID("missing")
	assert.False(t, ok)
}

func TestBinNumeric_EqualWidth(t *testing.T) {
	ds := New(testRecords())

	binned, err := BinNumeric(ds, "Age", 4)
	require.NoError(t, err)
	require.Equal(t, 4, binned.Len())

	// Range 23..62, width 9.75: 23 in the first bin, 62 in the last.
	first := binned.Records()[0]
	last := binned.Records()[3]
	assert.Equal(t, "[23.00,32.75)", first.Attr("Age_group"))
	assert.Equal(t, "[52.25,62.00]", last.Attr("Age_group"))

	// Original dataset untouched.
	assert.Empty(t, ds.Records()[0].Attr("Age_group"))
}

func TestBinNumeric_BoundaryValueInUpperBin(t *testing.T) {
	ds := New([]Record{
		{ID: "a", Attributes: map[string]string{"Age": "0"}},
		{ID: "b", Attributes: map[string]string{"Age": "5"}},
		{ID: "c", Attributes: map[string]string{"Age": "10"}},
	})

	binned, err := BinNumeric(ds, "Age", 2)
	require.NoError(t, err)

	// The shared boundary 5 belongs to the upper bin, and the labels say
	// so: the lower bin is half-open.
	assert.Equal(t, "[0.00,5.00)", binned.Records()[0].Attr("Age_group"))
	assert.Equal(t, "[5.00,10.00]", binned.Records()[1].Attr("Age_group"))
	assert.Equal(t, "[5.00,10.00]", binned.Records()[2].Attr("Age_group"))
}

func TestBinNumeric_SingleValueRange(t *testing.T) {
	ds := New([]Record{
		{ID: "x", Attributes: map[string]string{"Age": "30"}},
		{ID: "y", Attributes: map[string]string{"Age": "30"}},
	})

	binned, err := BinNumeric(ds, "Age", 3)
	require.NoError(t, err)

	// Zero-width range: everything lands in the last bin.
	assert.Equal(t, binned.Records()[0].Attr("Age_group"), binned.Records()[1].Attr("Age_group"))
}

func TestBinNumeric_NonNumeric(t *testing.T) {
	ds := New(testRecords())

	_, err := BinNumeric(ds, "Gender", 4)
	require.Error(t, err)
}

func TestBinNumeric_InvalidBins(t *testing.T) {
	_, err := BinNumeric(New(testRecords()), "Age", 0)
	require.Error(t, err)
}
