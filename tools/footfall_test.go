package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailscope/footfall/tools"
)

func TestFootfallTool_Invoke_KnownLocation(t *testing.T) {
	ft := tools.NewFootfallTool()

	out, err := ft.Invoke(context.Background(), "footfall patterns for retail stores in Marathahalli, Bangalore")
	assert.NoError(t, err)

	var report tools.FootfallReport
	assert.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Marathahalli, Bangalore", report.Location)
	assert.Equal(t, 1250, report.FootfallData.AverageDaily)
	assert.Equal(t, "Saturday", report.FootfallData.BusiestDay)
	assert.Contains(t, report.CompetitorInsights.MajorPlayers, "Lifestyle")
}

func TestFootfallTool_Invoke_CaseInsensitive(t *testing.T) {
	ft := tools.NewFootfallTool()

	out, err := ft.Invoke(context.Background(), "peak hours in PUNE please")
	assert.NoError(t, err)

	var report tools.FootfallReport
	assert.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Pune, Maharashtra", report.Location)
	assert.Equal(t, "Medium", report.CompetitorInsights.Density)
}

func TestFootfallTool_Invoke_UnknownLocation(t *testing.T) {
	ft := tools.NewFootfallTool()

	out, err := ft.Invoke(context.Background(), "traffic in Atlantis")
	assert.NoError(t, err)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "No specific data available for this location", payload["error"])
}

func TestFootfallTool_Metadata(t *testing.T) {
	ft := tools.NewFootfallTool()
	assert.Equal(t, "retail_footprint_api", ft.Name())
	assert.Contains(t, ft.Description(), "footfall")
}
