package model

import "time"

// ToolType identifies which self-assessment tool produced a session
type ToolType string

const (
	ToolDiary      ToolType = "diary"
	ToolBarrierBot ToolType = "barrier-bot"
	ToolPsychBot   ToolType = "psych-bot"
	ToolCareerTest ToolType = "career-test"
	ToolIncomeBot  ToolType = "income-bot"
	ToolPlanBot    ToolType = "plan-bot"
	ToolProgress   ToolType = "progress"
	ToolTrainer    ToolType = "trainer"
)

// ToolSession is one completed tool session as synced between
// devices. Data is the tool-specific payload; the server treats it as
// opaque apart from fingerprinting.
type ToolSession struct {
	ID        string                 `json:"id" bson:"_id,omitempty"`
	UserID    string                 `json:"userId" bson:"userId"`
	Tool      ToolType               `json:"toolType" bson:"toolType"`
	Data      map[string]interface{} `json:"sessionData" bson:"sessionData"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}

// SyncRequest is the client-to-server sync payload
type SyncRequest struct {
	UserID   string                   `json:"userId"`
	Tool     ToolType                 `json:"toolType"`
	Sessions []map[string]interface{} `json:"sessions"`
}

// SyncResponse returns the server's canonical session list
type SyncResponse struct {
	Sessions []map[string]interface{} `json:"sessions"`
	Synced   int                      `json:"synced"`
}
