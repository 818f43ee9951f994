package repository

import (
	"context"
	"strconv"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTreatmentsTableName = "lens_treatments"

type treatmentItem struct {
	ID                 string   `dynamodbav:"id"`
	Name               string   `dynamodbav:"name"`
	Category           string   `dynamodbav:"category"`
	Price              string   `dynamodbav:"price"`
	Active             bool     `dynamodbav:"active"`
	ExcludedUsageTypes []string `dynamodbav:"excluded_usage_types,omitempty"`
	RequiredMaterials  []string `dynamodbav:"required_materials,omitempty"`
	IncompatibleWith   []string `dynamodbav:"incompatible_with,omitempty"`
}

// TreatmentDynamoRepository reads the treatment reference table, including
// the compatibility metadata the treatments step filters against.
//
// Table requirements:
//   - PK: id (string)

type TreatmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITreatmentRepository = (*TreatmentDynamoRepository)(nil)

func NewTreatmentDynamoRepository(ddb *dynamodb.Client) *TreatmentDynamoRepository {
	return &TreatmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TREATMENTS_TABLE", defaultTreatmentsTableName),
	}
}

func (r *TreatmentDynamoRepository) ListActive(ctx context.Context) ([]entities.Treatment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	treatments := make([]entities.Treatment, 0, len(out.Items))
	for _, item := range out.Items {
		var it treatmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		treatments = append(treatments, fromTreatmentItem(it))
	}
	return treatments, nil
}

func (r *TreatmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Treatment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Treatment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Treatment{}, nil
	}

	var it treatmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Treatment{}, err
	}
	return fromTreatmentItem(it), nil
}

func fromTreatmentItem(it treatmentItem) entities.Treatment {
	price, _ := strconv.ParseFloat(it.Price, 64)
	excluded := make([]entities.UsageType, 0, len(it.ExcludedUsageTypes))
	for _, u := range it.ExcludedUsageTypes {
		excluded = append(excluded, entities.UsageType(u))
	}
	return entities.Treatment{
		ID:                 it.ID,
		Name:               it.Name,
		Category:           it.Category,
		Price:              price,
		Active:             it.Active,
		ExcludedUsageTypes: excluded,
		RequiredMaterials:  it.RequiredMaterials,
		IncompatibleWith:   it.IncompatibleWith,
	}
}
