package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasePublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	pub := NewPurchasePublisher(mockKafka)

	event := models.PurchaseEvent{
		EventID:    "evt-1",
		PurchaseID: 7,
		PartID:     3,
		PartName:   "bolt",
		Username:   "alice",
		Quantity:   2,
		UnitPrice:  1.25,
		Timestamp:  1700000000,
	}

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "evt-1", string(msgs[0].Key))

			var got models.PurchaseEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, event, got)
			return nil
		})
	pub.Publish(context.Background(), event)

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error"))
	pub.Publish(context.Background(), event)
}

func TestPurchasePublisher_PublishOutlivesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	pub := NewPurchasePublisher(mockKafka)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ...kafka.Message) error {
			assert.NoError(t, ctx.Err())
			return nil
		})
	pub.Publish(ctx, models.PurchaseEvent{EventID: "evt-2"})
}

func TestPurchasePublisher_NoWriter(t *testing.T) {
	pub := NewPurchasePublisher(nil)
	pub.Publish(context.Background(), models.PurchaseEvent{EventID: "evt-3"})
	assert.NoError(t, pub.Close())
}

func TestPurchasePublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().Close().Return(errors.New("close failed"))

	assert.EqualError(t, NewPurchasePublisher(mockKafka).Close(), "close failed")
}

func TestNewKafkaWriter(t *testing.T) {
	assert.Nil(t, NewKafkaWriter(nil, "purchases"))

	w := NewKafkaWriter([]string{"localhost:9092"}, "purchases")
	require.NotNil(t, w)
	kw, ok := w.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "purchases", kw.Topic)
}
