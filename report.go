package main

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/launchdarkly/bdd-adapter/framework"
	"github.com/launchdarkly/bdd-adapter/host"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type reportStatus string

const (
	statusPassed  reportStatus = "passed"
	statusFailed  reportStatus = "failed"
	statusSkipped reportStatus = "skipped"
)

type report struct {
	OK      bool          `json:"ok"`
	Tests   []reportEntry `json:"tests"`
	Summary reportSummary `json:"summary"`
}

type reportSummary struct {
	Total   int `json:"total"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

type reportEntry struct {
	ID            string              `json:"id"`
	Path          []string            `json:"path"`
	Status        reportStatus        `json:"status"`
	SkipReason    string              `json:"skipReason,omitempty"`
	ExceptionType string              `json:"exceptionType,omitempty"`
	Messages      []string            `json:"messages,omitempty"`
	TimeoutMS     ldvalue.OptionalInt `json:"timeoutMs"`
	DurationMS    float64             `json:"durationMs"`
}

func newReport(results framework.Results) report {
	r := report{
		OK:    results.OK(),
		Tests: make([]reportEntry, 0, len(results.Tests)),
		Summary: reportSummary{
			Total:   len(results.Tests),
			Failed:  len(results.Failures),
			Skipped: len(results.Skipped),
		},
	}
	for _, t := range results.Tests {
		e := reportEntry{
			ID:         t.TestID.String(),
			Path:       t.TestID.Path,
			Status:     statusPassed,
			DurationMS: float64(t.Duration) / float64(time.Millisecond),
		}
		if t.Timeout > 0 {
			e.TimeoutMS = ldvalue.NewOptionalInt(int(t.Timeout / time.Millisecond))
		}
		switch {
		case t.Skipped:
			e.Status = statusSkipped
			e.SkipReason = t.SkipReason
		case len(t.Errors) != 0:
			e.Status = statusFailed
			for _, err := range t.Errors {
				var fe *host.FailureError
				if e.ExceptionType == "" && errors.As(err, &fe) {
					e.ExceptionType = fe.ExceptionType
					e.Messages = append(e.Messages, fe.Message)
					continue
				}
				e.Messages = append(e.Messages, err.Error())
			}
		}
		r.Tests = append(r.Tests, e)
	}
	return r
}

func writeReport(path string, results framework.Results) error {
	data, err := json.MarshalIndent(newReport(results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
