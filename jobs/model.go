package jobs

import "github.com/go-openapi/strfmt"

// JobStatus is the lifecycle status of a job execution.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusSucceeded  JobStatus = "SUCCEEDED"
	JobStatusFailed     JobStatus = "FAILED"
	JobStatusTimedOut   JobStatus = "TIMED_OUT"
	JobStatusRejected   JobStatus = "REJECTED"
	JobStatusCanceled   JobStatus = "CANCELED"
	JobStatusRemoved    JobStatus = "REMOVED"
)

// DescribeJobExecutionRequest asks for the details of one job execution
// on a thing. ThingName and JobID are required, they address the
// request topic; everything else is optional.
type DescribeJobExecutionRequest struct {
	ThingName          string
	JobID              string
	ClientToken        *string
	ExecutionNumber    *int64
	IncludeJobDocument *bool
}

type DescribeJobExecutionResponse struct {
	ClientToken *string
	Execution   *JobExecutionData
	Timestamp   *strfmt.DateTime
}

type GetPendingJobExecutionsRequest struct {
	ThingName   string
	ClientToken *string
}

type GetPendingJobExecutionsResponse struct {
	ClientToken    *string
	InProgressJobs []JobExecutionSummary
	QueuedJobs     []JobExecutionSummary
	Timestamp      *strfmt.DateTime
}

type StartNextPendingJobExecutionRequest struct {
	ThingName            string
	ClientToken          *string
	StatusDetails        map[string]string
	StepTimeoutInMinutes *int64
}

type StartNextJobExecutionResponse struct {
	ClientToken *string
	Execution   *JobExecutionData
	Timestamp   *strfmt.DateTime
}

type UpdateJobExecutionRequest struct {
	ThingName                string
	JobID                    string
	ClientToken              *string
	Status                   *JobStatus
	StatusDetails            map[string]string
	ExpectedVersion          *int64
	ExecutionNumber          *int64
	IncludeJobDocument       *bool
	IncludeJobExecutionState *bool
}

type UpdateJobExecutionResponse struct {
	ClientToken    *string
	ExecutionState *JobExecutionState
	JobDocument    *string
	Timestamp      *strfmt.DateTime
}

// JobExecutionData is the full state of one job execution as the
// service reports it.
type JobExecutionData struct {
	JobID           *string
	ThingName       *string
	JobDocument     *string
	Status          *JobStatus
	QueuedAt        *strfmt.DateTime
	StartedAt       *strfmt.DateTime
	LastUpdatedAt   *strfmt.DateTime
	VersionNumber   *int64
	ExecutionNumber *int64
}

// JobExecutionState is the slice of execution state echoed back by
// update operations and rejections.
type JobExecutionState struct {
	Status        *JobStatus
	StatusDetails map[string]string
	VersionNumber *int64
}

// JobExecutionSummary is the compact listing entry used by pending-job
// queries and change events.
type JobExecutionSummary struct {
	ExecutionNumber *int64
	QueuedAt        *strfmt.DateTime
	StartedAt       *strfmt.DateTime
	LastUpdatedAt   *strfmt.DateTime
}

// JobExecutionsChangedSubscription addresses the notify topic of one
// thing.
type JobExecutionsChangedSubscription struct {
	ThingName string
}

type JobExecutionsChangedEvent struct {
	Jobs      *JobExecutionsChangedJobs
	Timestamp *strfmt.DateTime
}

type JobExecutionsChangedJobs struct {
	JobExecutionState []JobExecutionSummary
}

// NextJobExecutionChangedSubscription addresses the notify-next topic
// of one thing.
type NextJobExecutionChangedSubscription struct {
	ThingName string
}

type NextJobExecutionChangedEvent struct {
	Execution *JobExecutionData
	Timestamp *strfmt.DateTime
}
