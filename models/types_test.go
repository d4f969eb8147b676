package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"Back", "Shoulders", "Legs"}

	v, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestStringListScanTolerance(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
	}{
		{"nil", nil},
		{"empty bytes", []byte{}},
		{"empty string", ""},
		{"not json", "just some legacy text"},
		{"wrong json shape", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out StringList
			require.NoError(t, out.Scan(tc.input))
			assert.Equal(t, StringList{}, out)
		})
	}
}

func TestStringListNilValue(t *testing.T) {
	var in StringList
	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestPriceListRoundTrip(t *testing.T) {
	in := PriceList{
		{Duration: "60 min", Price: 120},
		{Duration: "90 min", Price: 165.5},
	}

	v, err := in.Value()
	require.NoError(t, err)

	var out PriceList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestPriceListScanTolerance(t *testing.T) {
	var out PriceList
	require.NoError(t, out.Scan("corrupted {]"))
	assert.Equal(t, PriceList{}, out)

	require.NoError(t, out.Scan(nil))
	assert.Equal(t, PriceList{}, out)
}

func TestScanRejectsUnsupportedType(t *testing.T) {
	var l StringList
	assert.Error(t, l.Scan(42))

	var p PriceList
	assert.Error(t, p.Scan(3.14))
}
