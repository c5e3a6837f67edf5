package e2e

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxClient reads back the points written by the schedule sink.
type InfluxClient struct {
	bucket string
	client influxdb2.Client
	query  api.QueryAPI
}

// NewInfluxClient creates a new client for the given parameters. It assumes
// the server is already running and set up.
func NewInfluxClient(url, org, bucket, token string) *InfluxClient {
	c := influxdb2.NewClient(url, token)
	return &InfluxClient{
		bucket: bucket,
		client: c,
		query:  c.QueryAPI(org),
	}
}

// CountSchedules returns the number of schedule_generated points for raceID
// written during the last five minutes.
func (c *InfluxClient) CountSchedules(ctx context.Context, raceID string) (int, error) {
	flux := fmt.Sprintf(`from(bucket:%q)
  |> range(start:-5m)
  |> filter(fn: (r) => r._measurement == "schedule_generated" and r.race_id == %q and r._field == "heats")`,
		c.bucket, raceID)
	res, err := c.query.Query(ctx, flux)
	if err != nil {
		return 0, err
	}
	defer func() { _ = res.Close() }()
	n := 0
	for res.Next() {
		n++
	}
	return n, res.Err()
}

// Close releases the underlying client resources.
func (c *InfluxClient) Close() { c.client.Close() }
