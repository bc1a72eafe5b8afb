package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/retailscope/footfall/agent"
)

// AnalysisRun is the persisted summary of one completed run. Raw
// conversation messages are deliberately not stored; state is discarded
// when the run ends.
type AnalysisRun struct {
	ID          uint   `gorm:"primaryKey"`
	RunID       string `gorm:"uniqueIndex"`
	Query       string
	FinalAnswer string
	Steps       int
	ToolCalls   int
	DurationMs  int64
	CreatedAt   time.Time
}

// SaveRun records a completed run.
func SaveRun(db *gorm.DB, result *agent.RunResult) error {
	run := AnalysisRun{
		RunID:       result.RunID,
		Query:       result.Query,
		FinalAnswer: result.FinalAnswer,
		Steps:       result.Steps,
		ToolCalls:   result.ToolCalls,
		DurationMs:  result.Duration.Milliseconds(),
	}
	return db.Create(&run).Error
}

// GetRun retrieves one run by its run ID.
func GetRun(db *gorm.DB, runID string) (*AnalysisRun, error) {
	var run AnalysisRun
	if err := db.Where("run_id = ?", runID).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// RecentRuns returns the newest runs first, up to limit.
func RecentRuns(db *gorm.DB, limit int) ([]AnalysisRun, error) {
	var runs []AnalysisRun
	err := db.Order("created_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
