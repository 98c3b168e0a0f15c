package repository

import (
	"context"
	"log"
	"time"

	"company_payments/internal/domain/entities"
	"company_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "company_payments"
	checkoutSessionIDIndex   = "stripe_checkout_session_id-index"
	paymentIntentIDIndex     = "stripe_payment_intent_id-index"
)

type companyPaymentItem struct {
	ID          string  `dynamodbav:"id"`
	CompanyID   string  `dynamodbav:"company_id"`
	Amount      float64 `dynamodbav:"amount"`
	Currency    string  `dynamodbav:"currency"`
	Gateway     string  `dynamodbav:"gateway"`
	Method      string  `dynamodbav:"method"`
	Status      string  `dynamodbav:"status"`
	PurchasedAt string  `dynamodbav:"purchased_at"`

	StripeCheckoutSessionID string `dynamodbav:"stripe_checkout_session_id,omitempty"`
	StripePaymentIntentID   string `dynamodbav:"stripe_payment_intent_id,omitempty"`
	PaymentTransactionID    string `dynamodbav:"payment_transaction_id,omitempty"`
	SubscriptionID          string `dynamodbav:"subscription_id,omitempty"`
}

// CompanyPaymentDynamoRepository persists CompanyPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: stripe_checkout_session_id-index (PK: stripe_checkout_session_id)
//   - GSI: stripe_payment_intent_id-index (PK: stripe_payment_intent_id)

type CompanyPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyPaymentRepository = (*CompanyPaymentDynamoRepository)(nil)

func NewCompanyPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *CompanyPaymentDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName)
	}
	return &CompanyPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *CompanyPaymentDynamoRepository) Create(ctx context.Context, p entities.CompanyPayment) (entities.CompanyPayment, error) {
	it := toCompanyPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CompanyPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CompanyPayment{}, err
	}
	return p, nil
}

func (r *CompanyPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CompanyPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompanyPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompanyPayment{}, nil
	}

	var it companyPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CompanyPayment{}, err
	}
	return fromCompanyPaymentItem(it), nil
}

func (r *CompanyPaymentDynamoRepository) GetByCheckoutSessionID(ctx context.Context, sessionID string) (entities.CompanyPayment, error) {
	return r.queryOneByIndex(ctx, checkoutSessionIDIndex, "stripe_checkout_session_id", sessionID)
}

func (r *CompanyPaymentDynamoRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.CompanyPayment, error) {
	return r.queryOneByIndex(ctx, paymentIntentIDIndex, "stripe_payment_intent_id", paymentIntentID)
}

// queryOneByIndex relies on the invariant that at most one payment exists
// per correlation id; Limit 1 makes that assumption explicit.
func (r *CompanyPaymentDynamoRepository) queryOneByIndex(ctx context.Context, indexName, keyName, value string) (entities.CompanyPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": keyName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CompanyPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.CompanyPayment{}, nil
	}

	var it companyPaymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CompanyPayment{}, err
	}
	return fromCompanyPaymentItem(it), nil
}

func (r *CompanyPaymentDynamoRepository) List(ctx context.Context) ([]entities.CompanyPayment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CompanyPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it companyPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCompanyPaymentItem(it))
	}
	return items, nil
}

func (r *CompanyPaymentDynamoRepository) Update(ctx context.Context, p entities.CompanyPayment) (entities.CompanyPayment, error) {
	it := toCompanyPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CompanyPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CompanyPayment{}, err
	}
	return p, nil
}

func (r *CompanyPaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ApplyStatus writes the transition as a single atomic UpdateItem, so
// concurrent duplicate deliveries cannot interleave into a half-applied
// state. The settlement id overwrites any prior value (last-writer-wins).
// Re-applying the current status is a persisted no-op; ALL_OLD lets the
// caller detect it.
func (r *CompanyPaymentDynamoRepository) ApplyStatus(ctx context.Context, id string, status entities.TransactionStatus, paymentTransactionID string) (entities.CompanyPayment, entities.TransactionStatus, error) {
	update := "SET #status = :status"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if paymentTransactionID != "" {
		update += ", payment_transaction_id = :txn"
		values[":txn"] = &types.AttributeValueMemberS{Value: paymentTransactionID}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.CompanyPayment{}, "", err
	}

	var old companyPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &old); err != nil {
		return entities.CompanyPayment{}, "", err
	}

	updated := fromCompanyPaymentItem(old)
	previous := updated.Status
	updated.Status = status
	if paymentTransactionID != "" {
		updated.PaymentTransactionID = paymentTransactionID
	}
	return updated, previous, nil
}

func toCompanyPaymentItem(p entities.CompanyPayment) companyPaymentItem {
	return companyPaymentItem{
		ID:                      p.ID,
		CompanyID:               p.CompanyID,
		Amount:                  p.Amount,
		Currency:                p.Currency,
		Gateway:                 p.Gateway,
		Method:                  string(p.Method),
		Status:                  string(p.Status),
		PurchasedAt:             p.PurchasedAt.UTC().Format(time.RFC3339Nano),
		StripeCheckoutSessionID: p.StripeCheckoutSessionID,
		StripePaymentIntentID:   p.StripePaymentIntentID,
		PaymentTransactionID:    p.PaymentTransactionID,
		SubscriptionID:          p.SubscriptionID,
	}
}

func fromCompanyPaymentItem(it companyPaymentItem) entities.CompanyPayment {
	dt, err := time.Parse(time.RFC3339Nano, it.PurchasedAt)
	if err != nil {
		log.Printf("[payment][repository] invalid purchased_at payment_id=%s value=%q err=%v", it.ID, it.PurchasedAt, err)
	}
	return entities.CompanyPayment{
		ID:                      it.ID,
		CompanyID:               it.CompanyID,
		Amount:                  it.Amount,
		Currency:                it.Currency,
		Gateway:                 it.Gateway,
		Method:                  entities.PaymentMethod(it.Method),
		Status:                  entities.TransactionStatus(it.Status),
		PurchasedAt:             dt,
		StripeCheckoutSessionID: it.StripeCheckoutSessionID,
		StripePaymentIntentID:   it.StripePaymentIntentID,
		PaymentTransactionID:    it.PaymentTransactionID,
		SubscriptionID:          it.SubscriptionID,
	}
}
