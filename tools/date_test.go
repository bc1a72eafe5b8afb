package tools_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/retailscope/footfall/tools"
)

func TestDateTool_Invoke(t *testing.T) {
	dt := tools.NewDateTool()
	dt.Now = func() time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		expr      string
		expectErr bool
		want      string
	}{
		{
			name: "Date Object",
			expr: "new Date('2026-01-02T00:00:00Z')",
			want: "2026-01-02T00:00:00Z",
		},
		{
			name: "ISO String",
			expr: "'2026-01-02T00:00:00Z'",
			want: "2026-01-02T00:00:00Z",
		},
		{
			name: "Relative To Now",
			expr: "new Date(now + 86400000)",
			want: "2026-01-02T00:00:00Z",
		},
		{
			name: "LLM Generated Code",
			expr: "var d = new Date(now); d.setDate(d.getDate() + (12 - d.getDay()) % 7); if(d.getDay() !== 5 || d <= now) d.setDate(d.getDate() + 7); d",
		},
		{
			name:      "Number Result",
			expr:      "12345",
			expectErr: true,
		},
		{
			name:      "Null Result",
			expr:      "null",
			expectErr: true,
		},
		{
			name:      "No Result",
			expr:      "var x = 1;",
			expectErr: true,
		},
		{
			name:      "Syntax Error",
			expr:      "new Date(((",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := dt.Invoke(context.Background(), tt.expr)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, out)
			if tt.want != "" {
				assert.Equal(t, tt.want, out)
			}
			// Output always parses back as RFC 3339
			_, perr := time.Parse(time.RFC3339, out)
			assert.NoError(t, perr)
		})
	}
}

func TestDateTool_Metadata(t *testing.T) {
	dt := tools.NewDateTool()
	assert.Equal(t, "date_tool", dt.Name())
	assert.Contains(t, dt.Description(), "JavaScript")
}
