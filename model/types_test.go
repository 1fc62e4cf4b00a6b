package model

import (
	"encoding/json"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshalArray(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["Library","Lab","AC"]`), &l))
	assert.Equal(t, StringList{"Library", "Lab", "AC"}, l)
}

func TestStringListUnmarshalCSV(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"Library, Lab, AC"`), &l))
	assert.Equal(t, StringList{"Library", "Lab", "AC"}, l)
}

func TestStringListUnmarshalDropsEmptyItems(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"Library,, ,Lab"`), &l))
	assert.Equal(t, StringList{"Library", "Lab"}, l)
}

func TestStringListUnmarshalEmptyString(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`""`), &l))
	assert.Empty(t, l)
}

func TestStringListJoin(t *testing.T) {
	l := StringList{"Hostel", "Mess"}
	assert.Equal(t, "Hostel, Mess", l.Join())
}

func TestStringListScan(t *testing.T) {
	arr, err := pq.StringArray{"a", "b"}.Value()
	require.NoError(t, err)

	var l StringList
	require.NoError(t, l.Scan(arr))
	assert.Equal(t, StringList{"a", "b"}, l)
}
