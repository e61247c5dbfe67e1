// Package records defines the response envelope of the records API. The
// server speaks it to browsers and to other farmdash instances, and
// pkg/backend speaks it as a client.
package records

import (
	"encoding/json"
)

const (
	TableFields   = "fields"
	TableCrops    = "crops"
	TableTasks    = "tasks"
	TableExpenses = "expenses"

	PathWeather  = "weather"
	PathForecast = "weather/forecast"
	PathAlerts   = "weather/alerts"
)

// Response is the envelope of every records API call. Reads carry Data,
// writes carry one Result per submitted record.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Results []Result        `json:"results,omitempty"`
}

type Result struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"` // apperr code of a failed record
	Data    json.RawMessage `json:"data,omitempty"`
}

// WriteRequest is the body of create and update calls. Update records must
// carry an "id" key; the remaining keys are merged into the stored record.
type WriteRequest struct {
	Records []json.RawMessage `json:"records"`
}

type DeleteRequest struct {
	RecordIDs []int `json:"record_ids"`
}

func OK(data any) (Response, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return Response{}, err
	}
	return Response{Success: true, Data: b}, nil
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// Batch wraps per-record results. The envelope only succeeds when every
// record did.
func Batch(results []Result) Response {
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	resp := Response{Success: failed == 0, Results: results}
	if failed > 0 {
		resp.Message = "one or more records failed"
	}
	return resp
}

// Split separates successful and failed results.
func Split(results []Result) (ok, failed []Result) {
	for _, r := range results {
		if r.Success {
			ok = append(ok, r)
		} else {
			failed = append(failed, r)
		}
	}
	return ok, failed
}
