package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/EdilKulzhabay/tochkaLi-sub001/internal/mocks/worker"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/rabbitmq/queue"
)

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

type fixture struct {
	consumer *mocks.MockbroadcastConsumer
	handler  *mocks.MockmessageHandler
	service  *mocks.MockbroadcastService
	b        *Broadcaster
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		consumer: mocks.NewMockbroadcastConsumer(ctrl),
		handler:  mocks.NewMockmessageHandler(ctrl),
		service:  mocks.NewMockbroadcastService(ctrl),
	}
	f.b = NewBroadcaster(f.consumer, f.handler, f.service)

	return f
}

// run starts the pool and returns a func that stops it and waits for Run to return.
func (f fixture) run(t *testing.T, workers int) func() {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	go func() {
		f.b.Run(ctx, strategy, workers)
		close(stopped)
	}()

	return func() {
		cancel()
		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("broadcaster did not stop")
		}
	}
}

func deliver(msgs ...queue.BroadcastMessage) func(context.Context, chan<- queue.BroadcastMessage, retry.Strategy) error {
	return func(_ context.Context, out chan<- queue.BroadcastMessage, _ retry.Strategy) error {
		for _, m := range msgs {
			out <- m
		}
		return nil
	}
}

func TestBroadcaster_Run_HandlesPendingJob(t *testing.T) {
	f := setup(t)
	msg := queue.BroadcastMessage{JobID: uuid.New(), SendAt: time.Now()}
	handled := make(chan struct{})

	f.consumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(deliver(msg))
	f.service.EXPECT().GetJobStatus(gomock.Any(), strategy, msg.JobID).Return(model.JobPending, nil)
	f.handler.EXPECT().HandleMessage(gomock.Any(), msg, strategy).Do(
		func(context.Context, queue.BroadcastMessage, retry.Strategy) { close(handled) },
	)

	stop := f.run(t, 1)
	defer stop()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}
}

func TestBroadcaster_Run_ResumesRunningJob(t *testing.T) {
	f := setup(t)
	msg := queue.BroadcastMessage{JobID: uuid.New()}
	handled := make(chan struct{})

	f.consumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(deliver(msg))
	f.service.EXPECT().GetJobStatus(gomock.Any(), strategy, msg.JobID).Return(model.JobRunning, nil)
	f.handler.EXPECT().HandleMessage(gomock.Any(), msg, strategy).Do(
		func(context.Context, queue.BroadcastMessage, retry.Strategy) { close(handled) },
	)

	stop := f.run(t, 2)
	defer stop()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}
}

func TestBroadcaster_Run_SkipsFinishedJobs(t *testing.T) {
	f := setup(t)
	cancelled := queue.BroadcastMessage{JobID: uuid.New()}
	completed := queue.BroadcastMessage{JobID: uuid.New()}
	checked := make(chan struct{}, 2)

	f.consumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(deliver(cancelled, completed))
	f.service.EXPECT().GetJobStatus(gomock.Any(), strategy, cancelled.JobID).DoAndReturn(
		func(context.Context, retry.Strategy, uuid.UUID) (string, error) {
			checked <- struct{}{}
			return model.JobCancelled, nil
		},
	)
	f.service.EXPECT().GetJobStatus(gomock.Any(), strategy, completed.JobID).DoAndReturn(
		func(context.Context, retry.Strategy, uuid.UUID) (string, error) {
			checked <- struct{}{}
			return model.JobCompleted, nil
		},
	)

	stop := f.run(t, 1)

	require.Eventually(t, func() bool { return len(checked) == 2 }, time.Second, 5*time.Millisecond)
	stop()
}

func TestBroadcaster_Run_GetStatusError(t *testing.T) {
	f := setup(t)
	msg := queue.BroadcastMessage{JobID: uuid.New()}
	checked := make(chan struct{})

	f.consumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(deliver(msg))
	f.service.EXPECT().GetJobStatus(gomock.Any(), strategy, msg.JobID).DoAndReturn(
		func(context.Context, retry.Strategy, uuid.UUID) (string, error) {
			close(checked)
			return "", errors.New("db error")
		},
	)

	stop := f.run(t, 1)

	select {
	case <-checked:
	case <-time.After(time.Second):
		t.Fatal("status was not checked")
	}
	stop()
}

func TestBroadcaster_Run_StopsOnCancel(t *testing.T) {
	f := setup(t)

	f.consumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, _ chan<- queue.BroadcastMessage, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		},
	).AnyTimes()

	stop := f.run(t, 3)
	stop()
}
