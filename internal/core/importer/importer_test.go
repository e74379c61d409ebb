package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsafe/devicehub/internal/core/domain"
)

func TestParse_SingleRow(t *testing.T) {
	res, err := Parse(strings.NewReader("id,name,location\nDEV010,Soil Sensor,Greenhouse"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, Row{Line: 2, ID: "DEV010", Name: "Soil Sensor", Location: "Greenhouse"}, res.Rows[0])
	assert.Empty(t, res.Skipped)
}

func TestParse_MissingColumn(t *testing.T) {
	res, err := Parse(strings.NewReader("id,name\nDEV010,Soil Sensor"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, res.Rows)
}

func TestParse_HeaderOrderAndCase(t *testing.T) {
	in := " Location ,NAME,Id,notes\r\nKitchen,Smart Lock,DEV020,spare\r\n"
	res, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "DEV020", res.Rows[0].ID)
	assert.Equal(t, "Smart Lock", res.Rows[0].Name)
	assert.Equal(t, "Kitchen", res.Rows[0].Location)
}

func TestParse_SkipsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"id,name,location",
		"DEV030,Camera,Garage",
		"",
		"DEV031,Short",
		"DEV032, ,Porch",
		"DEV030,Camera Again,Roof",
		"DEV033,Door Sensor,Hall",
	}, "\n")

	res, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "DEV030", res.Rows[0].ID)
	assert.Equal(t, "DEV033", res.Rows[1].ID)

	lines := make([]int, len(res.Skipped))
	for i, s := range res.Skipped {
		lines[i] = s.Line
	}
	assert.Equal(t, []int{4, 5, 6}, lines)
}

func TestParse_EmbeddedCommaSplits(t *testing.T) {
	// no quoting: the quoted name becomes two fields and shifts location
	res, err := Parse(strings.NewReader("id,name,location\nDEV040,\"Lock, Rear\",Yard"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, `"Lock`, res.Rows[0].Name)
	assert.Equal(t, `Rear"`, res.Rows[0].Location)
}

func TestParse_TooLarge(t *testing.T) {
	big := "id,name,location\n" + strings.Repeat("x", MaxSize)
	_, err := Parse(strings.NewReader(big))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
