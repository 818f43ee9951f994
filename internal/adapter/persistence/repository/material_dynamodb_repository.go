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

const defaultMaterialsTableName = "lens_materials"

type materialItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Index  string `dynamodbav:"lens_index"`
	Price  string `dynamodbav:"price"`
	Active bool   `dynamodbav:"active"`
}

// MaterialDynamoRepository reads the lens-material reference table.
//
// Table requirements:
//   - PK: id (string)
//
// The table is small and read-only from this service, so ListActive is a
// filtered Scan rather than an index query.

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) ListActive(ctx context.Context) ([]entities.LensMaterial, error) {
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

	materials := make([]entities.LensMaterial, 0, len(out.Items))
	for _, item := range out.Items {
		var it materialItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		materials = append(materials, fromMaterialItem(it))
	}
	return materials, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.LensMaterial, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.LensMaterial{}, err
	}
	if len(out.Item) == 0 {
		return entities.LensMaterial{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LensMaterial{}, err
	}
	return fromMaterialItem(it), nil
}

func fromMaterialItem(it materialItem) entities.LensMaterial {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.LensMaterial{
		ID:     it.ID,
		Name:   it.Name,
		Index:  it.Index,
		Price:  price,
		Active: it.Active,
	}
}
