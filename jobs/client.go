package jobs

import (
	"context"
	"errors"

	"github.com/fogfish/opts"
	"github.com/go-openapi/swag"

	"github.com/casualjim/courier"
	"github.com/casualjim/courier/correlate"
	"github.com/casualjim/courier/pkg/uuidx"
	"github.com/casualjim/courier/transport"
)

// Client issues job-execution operations over a shared transport
// connection. All operations are safe for concurrent use.
type Client struct {
	courier *courier.Client
}

// New builds a jobs client on top of a transport connection. Options
// are the courier client options (courier.WithQOS, courier.WithLogger).
func New(conn transport.Transport, options ...opts.Option[courier.Client]) (*Client, error) {
	c, err := courier.New(conn, options...)
	if err != nil {
		return nil, err
	}
	return &Client{courier: c}, nil
}

// DescribeJobExecution fetches the details of one job execution. The
// returned outcome resolves with the accepted response or rejects with
// a *RejectedError, a *wire.DecodeError or a transport failure.
func (c *Client) DescribeJobExecution(ctx context.Context, req DescribeJobExecutionRequest) (*correlate.Outcome[DescribeJobExecutionResponse], error) {
	var err error
	if req.ThingName == "" {
		err = errors.Join(err, errors.New("thing name is required"))
	}
	if req.JobID == "" {
		err = errors.Join(err, errors.New("job id is required"))
	}
	if err != nil {
		return nil, err
	}

	if req.ClientToken == nil {
		req.ClientToken = swag.String(uuidx.NewString())
	}
	payload, err := req.encode()
	if err != nil {
		return nil, err
	}

	request := describeTopic(req.ThingName, req.JobID)
	return courier.Request(ctx, c.courier, courier.Call[DescribeJobExecutionResponse]{
		Topic:   request,
		Payload: payload,
		Routes: []correlate.Route[DescribeJobExecutionResponse]{
			{Topic: accepted(request), Accept: decodeDescribeJobExecutionResponse},
			{Topic: rejected(request), Reject: decodeRejected},
		},
	}), nil
}

// GetPendingJobExecutions lists the queued and in-progress job
// executions for a thing.
func (c *Client) GetPendingJobExecutions(ctx context.Context, req GetPendingJobExecutionsRequest) (*correlate.Outcome[GetPendingJobExecutionsResponse], error) {
	if req.ThingName == "" {
		return nil, errors.New("thing name is required")
	}

	if req.ClientToken == nil {
		req.ClientToken = swag.String(uuidx.NewString())
	}
	payload, err := req.encode()
	if err != nil {
		return nil, err
	}

	request := getPendingTopic(req.ThingName)
	return courier.Request(ctx, c.courier, courier.Call[GetPendingJobExecutionsResponse]{
		Topic:   request,
		Payload: payload,
		Routes: []correlate.Route[GetPendingJobExecutionsResponse]{
			{Topic: accepted(request), Accept: decodeGetPendingJobExecutionsResponse},
			{Topic: rejected(request), Reject: decodeRejected},
		},
	}), nil
}

// StartNextPendingJobExecution transitions the next queued job
// execution to IN_PROGRESS and returns it.
func (c *Client) StartNextPendingJobExecution(ctx context.Context, req StartNextPendingJobExecutionRequest) (*correlate.Outcome[StartNextJobExecutionResponse], error) {
	if req.ThingName == "" {
		return nil, errors.New("thing name is required")
	}

	if req.ClientToken == nil {
		req.ClientToken = swag.String(uuidx.NewString())
	}
	payload, err := req.encode()
	if err != nil {
		return nil, err
	}

	request := startNextTopic(req.ThingName)
	return courier.Request(ctx, c.courier, courier.Call[StartNextJobExecutionResponse]{
		Topic:   request,
		Payload: payload,
		Routes: []correlate.Route[StartNextJobExecutionResponse]{
			{Topic: accepted(request), Accept: decodeStartNextJobExecutionResponse},
			{Topic: rejected(request), Reject: decodeRejected},
		},
	}), nil
}

// UpdateJobExecution reports a status change for one job execution.
func (c *Client) UpdateJobExecution(ctx context.Context, req UpdateJobExecutionRequest) (*correlate.Outcome[UpdateJobExecutionResponse], error) {
	var err error
	if req.ThingName == "" {
		err = errors.Join(err, errors.New("thing name is required"))
	}
	if req.JobID == "" {
		err = errors.Join(err, errors.New("job id is required"))
	}
	if req.Status == nil {
		err = errors.Join(err, errors.New("status is required"))
	}
	if err != nil {
		return nil, err
	}

	if req.ClientToken == nil {
		req.ClientToken = swag.String(uuidx.NewString())
	}
	payload, err := req.encode()
	if err != nil {
		return nil, err
	}

	request := updateTopic(req.ThingName, req.JobID)
	return courier.Request(ctx, c.courier, courier.Call[UpdateJobExecutionResponse]{
		Topic:   request,
		Payload: payload,
		Routes: []correlate.Route[UpdateJobExecutionResponse]{
			{Topic: accepted(request), Accept: decodeUpdateJobExecutionResponse},
			{Topic: rejected(request), Reject: decodeRejected},
		},
	}), nil
}

// JobExecutionsChanged subscribes to the notify topic of a thing. Every
// change event is handed to fn; an undecodable event is delivered with
// its decode error set rather than dropped. The returned outcome
// resolves once the subscription is acknowledged.
func (c *Client) JobExecutionsChanged(ctx context.Context, sub JobExecutionsChangedSubscription, fn func(correlate.Result[JobExecutionsChangedEvent])) (*correlate.Outcome[struct{}], error) {
	if fn == nil {
		return nil, errors.New("event callback is required")
	}
	if sub.ThingName == "" {
		return nil, errors.New("thing name is required")
	}
	return courier.Subscribe(ctx, c.courier,
		courier.Event(notifyTopic(sub.ThingName), decodeJobExecutionsChangedEvent, fn),
	), nil
}

// NextJobExecutionChanged subscribes to the notify-next topic of a
// thing, which reports changes to the next job execution in line.
func (c *Client) NextJobExecutionChanged(ctx context.Context, sub NextJobExecutionChangedSubscription, fn func(correlate.Result[NextJobExecutionChangedEvent])) (*correlate.Outcome[struct{}], error) {
	if fn == nil {
		return nil, errors.New("event callback is required")
	}
	if sub.ThingName == "" {
		return nil, errors.New("thing name is required")
	}
	return courier.Subscribe(ctx, c.courier,
		courier.Event(notifyNextTopic(sub.ThingName), decodeNextJobExecutionChangedEvent, fn),
	), nil
}
