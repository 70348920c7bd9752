package queue

import (
	"context"
	"time"

	"github.com/adityakr/bazaari/pkg/mongodb"
)

// failedJobsCollection is where exhausted jobs are archived for inspection.
const failedJobsCollection = "failed_jobs"

type failedJobRecord struct {
	JobID    string    `bson:"job_id"`
	Name     string    `bson:"name"`
	Payload  string    `bson:"payload"`
	Attempts int       `bson:"attempts"`
	Reason   string    `bson:"reason"`
	FailedAt time.Time `bson:"failed_at"`
}

// MongoFailureSink archives failed jobs in MongoDB.
type MongoFailureSink struct{}

// NewMongoFailureSink returns a sink writing to the failed_jobs collection.
func NewMongoFailureSink() *MongoFailureSink { return &MongoFailureSink{} }

func (s *MongoFailureSink) Record(ctx context.Context, job Job, reason string) error {
	_, err := mongodb.Collection(failedJobsCollection).InsertOne(ctx, failedJobRecord{
		JobID:    job.ID,
		Name:     job.Name,
		Payload:  string(job.Payload),
		Attempts: job.Attempts,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
	})
	return err
}
