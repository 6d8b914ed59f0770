package repository

import (
	"context"
	"errors"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSalePaymentsTableName = "sale_payments"
	salePaymentsSaleIDIndex      = "sale_id-index"
)

type salePaymentItem struct {
	ID                string                 `dynamodbav:"id"`
	SaleID            string                 `dynamodbav:"sale_id"`
	ProviderPaymentID string                 `dynamodbav:"provider_payment_id"`
	Date              string                 `dynamodbav:"date"`
	Status            string                 `dynamodbav:"status"`
	Amount            string                 `dynamodbav:"amount"`
	QRCode            string                 `dynamodbav:"qr_code,omitempty"`
	QRCodeBase64      string                 `dynamodbav:"qr_code_base64,omitempty"`
	TicketURL         string                 `dynamodbav:"ticket_url,omitempty"`
	MPPayload         map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw      string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// SalePaymentDynamoRepository persists SalePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sale_id-index (PK: sale_id)
type SalePaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISalePaymentRepository = (*SalePaymentDynamoRepository)(nil)

func NewSalePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *SalePaymentDynamoRepository {
	return newSalePaymentRepository(ddb, tableName)
}

func newSalePaymentRepository(ddb dynamoAPI, tableName string) *SalePaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultSalePaymentsTableName
	}
	return &SalePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

// EnsureTable creates the table and its sale id index when missing. Meant for
// local DynamoDB; production tables are provisioned outside the service.
func (r *SalePaymentDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return err
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(r.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("sale_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
			IndexName:  aws.String(salePaymentsSaleIDIndex),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("sale_id"), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}},
	})
	if err != nil {
		return err
	}
	log.Info().Str("table", r.tableName).Msg("[payment][repository] table created")
	return nil
}

func (r *SalePaymentDynamoRepository) Create(ctx context.Context, p entities.SalePayment) (entities.SalePayment, error) {
	it := toSalePaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SalePayment{}, err
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
		return entities.SalePayment{}, err
	}
	return p, nil
}

// GetByID returns a zero SalePayment when the id is unknown.
func (r *SalePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SalePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SalePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.SalePayment{}, nil
	}

	var it salePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SalePayment{}, err
	}
	return fromSalePaymentItem(it), nil
}

func (r *SalePaymentDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(salePaymentsSaleIDIndex),
		KeyConditionExpression: aws.String("sale_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: saleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SalePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it salePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSalePaymentItem(it))
	}
	return items, nil
}

func toSalePaymentItem(p entities.SalePayment) salePaymentItem {
	return salePaymentItem{
		ID:                p.ID,
		SaleID:            p.SaleID,
		ProviderPaymentID: p.ProviderPaymentID,
		Date:              formatTime(p.Date),
		Status:            string(p.Status),
		Amount:            p.Amount.StringFixed(2),
		QRCode:            p.QRCode,
		QRCodeBase64:      p.QRCodeBase64,
		TicketURL:         p.TicketURL,
		MPPayload:         p.MPPayload,
		MPPayloadRaw:      string(p.MPPayloadRaw),
	}
}

func fromSalePaymentItem(it salePaymentItem) entities.SalePayment {
	p := entities.SalePayment{
		ID:                it.ID,
		SaleID:            it.SaleID,
		ProviderPaymentID: it.ProviderPaymentID,
		Date:              parseTime(it.Date),
		Status:            entities.PaymentStatus(it.Status),
		Amount:            parseDecimal(it.Amount),
		QRCode:            it.QRCode,
		QRCodeBase64:      it.QRCodeBase64,
		TicketURL:         it.TicketURL,
		MPPayload:         it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
