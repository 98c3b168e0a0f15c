package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"company_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestNewSQSNotifier_MissingQueueURL(t *testing.T) {
	_, err := NewSQSNotifier("  ")
	if !errors.Is(err, ErrMissingQueueURL) {
		t.Fatalf("expected ErrMissingQueueURL, got %v", err)
	}
}

func TestSQSNotifier_SendSubscriptionPaid(t *testing.T) {
	t.Run("standard queue", func(t *testing.T) {
		fake := &fakeSQS{}
		n := &SQSNotifier{client: fake, queueURL: "https://sqs.us-east-1.amazonaws.com/123/subscription-paid"}

		err := n.SendSubscriptionPaid(context.Background(), "company-1", "txn-1", entities.TransactionStatusSuccessful)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.inputs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(fake.inputs))
		}

		input := fake.inputs[0]
		if *input.QueueUrl != n.queueURL {
			t.Fatalf("unexpected queue url: %s", *input.QueueUrl)
		}
		if input.MessageGroupId != nil || input.MessageDeduplicationId != nil {
			t.Fatalf("fifo attributes must not be set on standard queues")
		}

		var msg map[string]string
		if err := json.Unmarshal([]byte(*input.MessageBody), &msg); err != nil {
			t.Fatalf("body must be json: %v", err)
		}
		if msg["companyId"] != "company-1" || msg["transactionId"] != "txn-1" || msg["status"] != "SUCCESSFUL" {
			t.Fatalf("unexpected body: %s", *input.MessageBody)
		}
	})

	t.Run("fifo queue sets group and dedup ids", func(t *testing.T) {
		fake := &fakeSQS{}
		n := &SQSNotifier{client: fake, queueURL: "https://sqs.us-east-1.amazonaws.com/123/subscription-paid.fifo"}

		err := n.SendSubscriptionPaid(context.Background(), "company-1", "txn-1", entities.TransactionStatusFailed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := fake.inputs[0]
		if input.MessageGroupId == nil || *input.MessageGroupId != "company-1" {
			t.Fatalf("expected group id company-1, got %v", input.MessageGroupId)
		}
		if input.MessageDeduplicationId == nil || *input.MessageDeduplicationId != "txn-1:FAILED" {
			t.Fatalf("expected dedup id txn-1:FAILED, got %v", input.MessageDeduplicationId)
		}
	})

	t.Run("send error propagates", func(t *testing.T) {
		fake := &fakeSQS{err: errors.New("sqs unreachable")}
		n := &SQSNotifier{client: fake, queueURL: "https://sqs.us-east-1.amazonaws.com/123/subscription-paid"}

		err := n.SendSubscriptionPaid(context.Background(), "company-1", "txn-1", entities.TransactionStatusSuccessful)
		if err == nil || err.Error() != "sqs unreachable" {
			t.Fatalf("expected sqs unreachable, got %v", err)
		}
	})
}
