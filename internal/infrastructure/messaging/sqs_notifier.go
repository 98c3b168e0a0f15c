package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"company_payments/internal/domain/entities"
	"company_payments/internal/infrastructure/database"
	"company_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

var ErrMissingQueueURL = errors.New("missing SUBSCRIPTION_PAID_QUEUE_URL")

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier publishes subscription-paid notifications to the well-known
// queue, one message per status-changing event, keyed by company id.

type SQSNotifier struct {
	client   sqsAPI
	queueURL string
}

var _ interfaces.IPaymentNotifier = (*SQSNotifier)(nil)

func NewSQSNotifier(queueURL string) (*SQSNotifier, error) {
	if strings.TrimSpace(queueURL) == "" {
		return nil, ErrMissingQueueURL
	}

	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		return nil, err
	}

	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint := os.Getenv("SQS_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Printf("[notifier][sqs] client initialized queue=%s", queueURL)

	return &SQSNotifier{client: client, queueURL: queueURL}, nil
}

type subscriptionPaidMessage struct {
	CompanyID     string `json:"companyId"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

func (n *SQSNotifier) SendSubscriptionPaid(ctx context.Context, companyID, transactionID string, status entities.TransactionStatus) error {
	body, err := json.Marshal(subscriptionPaidMessage{
		CompanyID:     companyID,
		TransactionID: transactionID,
		Status:        string(status),
	})
	if err != nil {
		return err
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueURL),
		MessageBody: aws.String(string(body)),
	}
	if strings.HasSuffix(n.queueURL, ".fifo") {
		input.MessageGroupId = aws.String(companyID)
		input.MessageDeduplicationId = aws.String(transactionID + ":" + string(status))
	}

	if _, err := n.client.SendMessage(ctx, input); err != nil {
		return err
	}

	log.Printf("[notifier][sqs] subscription paid sent company_id=%s transaction_id=%s status=%s", companyID, transactionID, status)
	return nil
}
