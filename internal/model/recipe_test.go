package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringArray{"brown water", "sugar"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["brown water","sugar"]`, v)
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["rice","water"]`)))
	assert.Equal(t, StringArray{"rice", "water"}, a)

	require.NoError(t, a.Scan(`[]`))
	assert.NotNil(t, a)
	assert.Empty(t, a)

	require.NoError(t, a.Scan(nil))
	assert.NotNil(t, a)

	assert.Error(t, a.Scan(42))
	assert.Error(t, a.Scan("not json"))
}

func TestRecipeJSONHidesSeq(t *testing.T) {
	r := Recipe{Seq: 7, ID: "abc", Name: "coffee", Ingredients: StringArray{"brown water"}}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","name":"coffee","ingredients":["brown water"]}`, string(b))
}

func TestRecipeClone(t *testing.T) {
	r := Recipe{ID: "abc", Name: "coffee", Ingredients: StringArray{"brown water"}}
	c := r.Clone()
	c.Ingredients[0] = "tea"

	assert.Equal(t, "brown water", r.Ingredients[0])
	assert.Equal(t, r.ID, c.ID)
}
