package jobs

import "github.com/casualjim/courier/wire"

// Shape codecs. Wire keys are lower camel case; absent fields stay nil
// on decode and nil fields stay absent on encode.

func (r DescribeJobExecutionRequest) encode() (wire.Document, error) {
	e := wire.NewEncoder()
	e.String("clientToken", r.ClientToken)
	e.Int64("executionNumber", r.ExecutionNumber)
	e.Bool("includeJobDocument", r.IncludeJobDocument)
	return e.Document()
}

func (r GetPendingJobExecutionsRequest) encode() (wire.Document, error) {
	e := wire.NewEncoder()
	e.String("clientToken", r.ClientToken)
	return e.Document()
}

func (r StartNextPendingJobExecutionRequest) encode() (wire.Document, error) {
	e := wire.NewEncoder()
	e.String("clientToken", r.ClientToken)
	e.StringMap("statusDetails", r.StatusDetails)
	e.Int64("stepTimeoutInMinutes", r.StepTimeoutInMinutes)
	return e.Document()
}

func (r UpdateJobExecutionRequest) encode() (wire.Document, error) {
	e := wire.NewEncoder()
	e.String("clientToken", r.ClientToken)
	e.Int64("executionNumber", r.ExecutionNumber)
	e.Int64("expectedVersion", r.ExpectedVersion)
	e.Bool("includeJobDocument", r.IncludeJobDocument)
	e.Bool("includeJobExecutionState", r.IncludeJobExecutionState)
	e.String("status", statusString(r.Status))
	e.StringMap("statusDetails", r.StatusDetails)
	return e.Document()
}

func decodeDescribeJobExecutionResponse(payload []byte) (DescribeJobExecutionResponse, error) {
	var out DescribeJobExecutionResponse
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return out, err
	}
	out.ClientToken = d.String("clientToken")
	if exec := d.Object("execution"); exec != nil {
		out.Execution = decodeJobExecutionData(exec)
	}
	out.Timestamp = d.Time("timestamp")
	return out, d.Err()
}

func decodeGetPendingJobExecutionsResponse(payload []byte) (GetPendingJobExecutionsResponse, error) {
	var out GetPendingJobExecutionsResponse
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return out, err
	}
	out.ClientToken = d.String("clientToken")
	out.InProgressJobs = decodeSummaries(d.Objects("inProgressJobs"))
	out.QueuedJobs = decodeSummaries(d.Objects("queuedJobs"))
	out.Timestamp = d.Time("timestamp")
	return out, d.Err()
}

func decodeStartNextJobExecutionResponse(payload []byte) (StartNextJobExecutionResponse, error) {
	var out StartNextJobExecutionResponse
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return out, err
	}
	out.ClientToken = d.String("clientToken")
	if exec := d.Object("execution"); exec != nil {
		out.Execution = decodeJobExecutionData(exec)
	}
	out.Timestamp = d.Time("timestamp")
	return out, d.Err()
}

func decodeUpdateJobExecutionResponse(payload []byte) (UpdateJobExecutionResponse, error) {
	var out UpdateJobExecutionResponse
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return out, err
	}
	out.ClientToken = d.String("clientToken")
	if state := d.Object("executionState"); state != nil {
		out.ExecutionState = decodeJobExecutionState(state)
	}
	out.JobDocument = d.String("jobDocument")
	out.Timestamp = d.Time("timestamp")
	return out, d.Err()
}

func decodeJobExecutionsChangedEvent(payload []byte) (JobExecutionsChangedEvent, error) {
	var out JobExecutionsChangedEvent
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return out, err
	}
	if jobs := d.Object("jobs"); jobs != nil {
		out.Jobs = &JobExecutionsChangedJobs{
			JobExecutionState: decodeSummaries(jobs.Objects("JobExecutionState")),
		}
	}
	out.Timestamp = d.Time("timestamp")
	return out, d.Err()
}

func decodeNextJobExecutionChangedEvent(payload []byte) (NextJobExecutionChangedEvent, error) {
	var out NextJobExecutionChangedEvent
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return out, err
	}
	if exec := d.Object("execution"); exec != nil {
		out.Execution = decodeJobExecutionData(exec)
	}
	out.Timestamp = d.Time("timestamp")
	return out, d.Err()
}

// decodeRejected is the Reject decoder shared by every exchange. A
// payload that decodes cleanly yields a *RejectedError; a malformed one
// yields the wire.DecodeError itself. Either way the outcome rejects.
func decodeRejected(payload []byte) error {
	d, err := wire.NewDecoder(payload)
	if err != nil {
		return err
	}
	rejection := &RejectedError{
		ClientToken: d.String("clientToken"),
		Code:        d.String("code"),
		Message:     d.String("message"),
		Timestamp:   d.Time("timestamp"),
	}
	if state := d.Object("executionState"); state != nil {
		rejection.ExecutionState = decodeJobExecutionState(state)
	}
	if err := d.Err(); err != nil {
		return err
	}
	return rejection
}

func decodeJobExecutionData(d *wire.Decoder) *JobExecutionData {
	return &JobExecutionData{
		JobID:           d.String("jobId"),
		ThingName:       d.String("thingName"),
		JobDocument:     d.String("jobDocument"),
		Status:          toStatus(d.String("status")),
		QueuedAt:        d.Time("queuedAt"),
		StartedAt:       d.Time("startedAt"),
		LastUpdatedAt:   d.Time("lastUpdatedAt"),
		VersionNumber:   d.Int64("versionNumber"),
		ExecutionNumber: d.Int64("executionNumber"),
	}
}

func decodeJobExecutionState(d *wire.Decoder) *JobExecutionState {
	return &JobExecutionState{
		Status:        toStatus(d.String("status")),
		StatusDetails: d.StringMap("statusDetails"),
		VersionNumber: d.Int64("versionNumber"),
	}
}

func decodeSummaries(elements []*wire.Decoder) []JobExecutionSummary {
	if elements == nil {
		return nil
	}
	out := make([]JobExecutionSummary, 0, len(elements))
	for _, el := range elements {
		out = append(out, JobExecutionSummary{
			ExecutionNumber: el.Int64("executionNumber"),
			QueuedAt:        el.Time("queuedAt"),
			StartedAt:       el.Time("startedAt"),
			LastUpdatedAt:   el.Time("lastUpdatedAt"),
		})
	}
	return out
}

func toStatus(s *string) *JobStatus {
	if s == nil {
		return nil
	}
	status := JobStatus(*s)
	return &status
}

func statusString(s *JobStatus) *string {
	if s == nil {
		return nil
	}
	str := string(*s)
	return &str
}
