package repository

import (
	"context"
	"encoding/json"
	"time"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSavedPrescriptionsTableName = "saved_prescriptions"
	savedPrescriptionsUserIndex        = "user_id-index"
)

type savedPrescriptionItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	Label        string `dynamodbav:"label"`
	Prescription string `dynamodbav:"prescription"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// SavedPrescriptionDynamoRepository reads the customer's stored
// prescriptions for the saved capture mode.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (user_id-index): user_id
//
// The prescription record is kept as a JSON blob attribute; this service
// only reads it and the schema is owned by the accounts system.

type SavedPrescriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISavedPrescriptionRepository = (*SavedPrescriptionDynamoRepository)(nil)

func NewSavedPrescriptionDynamoRepository(ddb *dynamodb.Client) *SavedPrescriptionDynamoRepository {
	return &SavedPrescriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SAVED_PRESCRIPTIONS_TABLE", defaultSavedPrescriptionsTableName),
	}
}

func (r *SavedPrescriptionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.SavedPrescription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(savedPrescriptionsUserIndex),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.SavedPrescription, 0, len(out.Items))
	for _, item := range out.Items {
		var it savedPrescriptionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromSavedPrescriptionItem(it))
	}
	return records, nil
}

func (r *SavedPrescriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedPrescription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.SavedPrescription{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavedPrescription{}, nil
	}

	var it savedPrescriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavedPrescription{}, err
	}
	return fromSavedPrescriptionItem(it), nil
}

func fromSavedPrescriptionItem(it savedPrescriptionItem) entities.SavedPrescription {
	var p entities.Prescription
	_ = json.Unmarshal([]byte(it.Prescription), &p)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.SavedPrescription{
		ID:           it.ID,
		UserID:       it.UserID,
		Label:        it.Label,
		Prescription: p,
		CreatedAt:    createdAt,
	}
}
