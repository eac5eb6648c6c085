package model_test

import (
	"errors"
	"testing"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want model.Algorithm
	}{
		{"MD5", model.MD5},
		{"md5", model.MD5},
		{"sha1", model.SHA1},
		{"SHA-256", model.SHA256},
		{" sha512 ", model.SHA512},
	}
	for _, tt := range tests {
		got, err := model.ParseAlgorithm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseAlgorithm_Invalid(t *testing.T) {
	for _, in := range []string{"", "CRC32", "SHA3-256", "blake3"} {
		_, err := model.ParseAlgorithm(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, errclass.ErrUsage), in)
	}
}

func TestAlgorithm_HexLen(t *testing.T) {
	assert.Equal(t, 32, model.MD5.HexLen())
	assert.Equal(t, 40, model.SHA1.HexLen())
	assert.Equal(t, 64, model.SHA256.HexLen())
	assert.Equal(t, 128, model.SHA512.HexLen())
	assert.Equal(t, 0, model.Algorithm("CRC32").HexLen())
	assert.Equal(t, []model.Algorithm{model.MD5, model.SHA1, model.SHA256, model.SHA512}, model.Algorithms())
}

func TestParseMediumClass(t *testing.T) {
	assert.Equal(t, model.SolidState, model.ParseMediumClass("SSD"))
	assert.Equal(t, model.SolidState, model.ParseMediumClass(" ssd "))
	assert.Equal(t, model.Rotational, model.ParseMediumClass("HDD"))
	assert.Equal(t, model.Unknown, model.ParseMediumClass("Unspecified"))
	assert.Equal(t, model.Unknown, model.ParseMediumClass(""))
}

func TestMediumTable_Lookup(t *testing.T) {
	table := model.MediumTable{"C": "SSD", "/": "SSD", "/mnt/hdd": "HDD"}

	vol, raw, ok := table.Lookup(`c:\Users\file`)
	assert.True(t, ok)
	assert.Equal(t, "C", vol)
	assert.Equal(t, "SSD", raw)

	_, _, ok = table.Lookup(`D:\file`)
	assert.False(t, ok)

	vol, raw, ok = table.Lookup("/mnt/hdd/movies/a.mkv")
	assert.True(t, ok)
	assert.Equal(t, "/mnt/hdd", vol)
	assert.Equal(t, "HDD", raw)

	vol, _, ok = table.Lookup("/mnt/hddx/a")
	assert.True(t, ok)
	assert.Equal(t, "/", vol)

	_, _, ok = model.MediumTable{}.Lookup("/a")
	assert.False(t, ok)
	_, _, ok = model.MediumTable{"C": "SSD"}.Lookup("relative/a")
	assert.False(t, ok)
}
