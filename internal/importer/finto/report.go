package finto

import (
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageBootstrap Stage = "bootstrap"
	StageFetch     Stage = "fetch"
	StageExtract   Stage = "extract"
	StageDiff      Stage = "diff"
	StageLabels    Stage = "labels"
	StageKeywords  Stage = "keywords"
	StageDeprecate Stage = "deprecate"
)

// ItemResult records a single per-item failure. Successful items are counted,
// not recorded individually.
type ItemResult struct {
	Ref   string
	Stage Stage
	Err   error
}

// Report summarizes one import run. Per-item failures never abort the run;
// they are collected here instead of being swallowed after logging.
type Report struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time

	Triples          int
	Extracted        int
	DeprecatedPairs  int
	SkippedUnchanged int
	LabelPairs       int
	KeywordsUpserted int
	Replaced         int
	MarkedDeprecated int

	Failures []ItemResult
}

func newReport() *Report {
	return &Report{RunID: uuid.New(), StartedAt: time.Now()}
}

func (r *Report) fail(stage Stage, ref string, err error) {
	r.Failures = append(r.Failures, ItemResult{Ref: ref, Stage: stage, Err: err})
}

func (r *Report) finish() {
	r.FinishedAt = time.Now()
}

// Clean reports whether every item the run attempted succeeded.
func (r *Report) Clean() bool {
	return len(r.Failures) == 0
}
