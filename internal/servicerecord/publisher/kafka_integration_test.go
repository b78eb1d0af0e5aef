//go:build integration

package publisher_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"roster/internal/servicerecord/models"
	"roster/internal/servicerecord/publisher"
	"roster/pkg/domain"
	"roster/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	redpanda *containers.RedpandaContainer
	topic    string
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redpanda = mgr.GetRedpanda(s.T())
}

func (s *KafkaPublisherSuite) SetupTest() {
	ctx := context.Background()
	s.topic = "service-records-" + uuid.NewString()

	admin, err := kgo.NewClient(kgo.SeedBrokers(s.redpanda.Brokers...))
	s.Require().NoError(err)
	defer admin.Close()

	resp, err := kadm.NewClient(admin).CreateTopics(ctx, 1, 1, nil, s.topic)
	s.Require().NoError(err)
	for _, r := range resp {
		s.Require().NoError(r.Err)
	}
}

func (s *KafkaPublisherSuite) TestPublishKeyedBySoldier() {
	ctx := context.Background()
	pub, err := publisher.NewKafka(s.redpanda.Brokers, s.topic, publisher.WithTimeout(10*time.Second))
	s.Require().NoError(err)
	defer pub.Close()

	soldierID := domain.SoldierID(uuid.New())
	entry, err := models.NewEntry(soldierID, models.ActionEnlistment, models.EnlistmentPayload{
		EnlistmentID:    uuid.NewString(),
		DisplayName:     "Doe",
		PerformedByName: "Unknown",
	}, nil, models.VisibilityPublic, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(pub.Publish(ctx, entry))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(s.topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	pollCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(pollCtx)
	s.Require().Empty(fetches.Errors())

	records := fetches.Records()
	s.Require().Len(records, 1)
	s.Equal(soldierID.String(), string(records[0].Key))

	var ev publisher.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &ev))
	s.Equal(entry.ID.String(), ev.RecordID)
	s.Equal("enlistment", ev.ActionType)
}
