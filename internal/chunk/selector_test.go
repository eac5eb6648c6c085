package chunk

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashcalc-project/hashcalc/pkg/logging"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

type staticSource struct {
	table     model.MediumTable
	supported bool
}

func (s staticSource) Table(context.Context) model.MediumTable { return s.table }
func (s staticSource) Supported() bool                         { return s.supported }

func TestSelect(t *testing.T) {
	table := model.MediumTable{
		"C":         "SSD",
		"D":         "HDD",
		"E":         "Unspecified",
		"/":         "SSD",
		"/mnt/disk": "HDD",
	}
	tests := []struct {
		name string
		path string
		want int
	}{
		{"ssd drive", `C:\data\file.iso`, 524288},
		{"lowercase drive", `c:\data\file.iso`, 524288},
		{"hdd drive", `D:\file.iso`, 262144},
		{"unrecognized class", `E:\file.iso`, 1048576},
		{"missing drive", `F:\file.iso`, 1048576},
		{"root mount", "/home/user/file.iso", 524288},
		{"longest mount wins", "/mnt/disk/file.iso", 262144},
	}
	s := NewSelector(staticSource{table: table, supported: true}, Sizes{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Select(context.Background(), tt.path))
		})
	}
}

func TestSelect_EmptyTableAlwaysDefault(t *testing.T) {
	for _, supported := range []bool{true, false} {
		s := NewSelector(staticSource{table: model.MediumTable{}, supported: supported}, Sizes{}, nil)
		for _, p := range []string{`C:\a.bin`, "/a.bin", "relative.bin"} {
			assert.Equal(t, 1048576, s.Select(context.Background(), p))
		}
	}
}

func TestSelect_LogsBranch(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewTextLogger(&buf, logging.LevelInfo)

	s := NewSelector(staticSource{table: model.MediumTable{"C": "SSD"}, supported: true}, Sizes{}, logger)
	s.Select(context.Background(), `C:\downloads\a-very-long-installer-name.exe`)
	assert.Contains(t, buf.String(), "SSD detected for file ...g-installer-name.exe. Chunk size set to 512KB")

	buf.Reset()
	s = NewSelector(staticSource{table: model.MediumTable{}, supported: false}, Sizes{}, logger)
	s.Select(context.Background(), "/a.bin")
	assert.Contains(t, buf.String(), "not available on this system. Default chunk size set to 1MB.")

	buf.Reset()
	s = NewSelector(staticSource{table: model.MediumTable{}, supported: true}, Sizes{}, logger)
	s.Select(context.Background(), "/a.bin")
	assert.Contains(t, buf.String(), "Unable to retrieve SSD or HDD information.")
}

func TestSelect_Overrides(t *testing.T) {
	s := NewSelector(staticSource{table: model.MediumTable{"C": "HDD"}, supported: true}, Sizes{HDD: 65536, SSD: -1}, nil)
	assert.Equal(t, 65536, s.Select(context.Background(), `C:\x`))
	assert.Equal(t, Sizes{Default: DefaultSize, SSD: SSDSize, HDD: 65536}, s.Sizes())
}

func TestForClass(t *testing.T) {
	s := NewSelector(staticSource{}, Sizes{}, nil)
	size, class := s.ForClass(model.ParseMediumClass("ssd"))
	assert.Equal(t, SSDSize, size)
	assert.Equal(t, model.SolidState, class)

	size, class = s.ForClass(model.ParseMediumClass("SCM"))
	assert.Equal(t, DefaultSize, size)
	assert.Equal(t, model.Unknown, class)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "1MB", formatSize(1048576))
	assert.Equal(t, "256KB", formatSize(262144))
	assert.Equal(t, "1000B", formatSize(1000))
}
