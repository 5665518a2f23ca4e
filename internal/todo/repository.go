package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrNotFound = errors.New("todo not found")

// ================== Interface ==================

// TodoRepository is the item store contract: a key-value table holding
// todos keyed by id, with per-key atomicity.
type TodoRepository interface {
	Scan(ctx context.Context) ([]Todo, error)
	Put(ctx context.Context, t Todo) error
	Get(ctx context.Context, id string) (*Todo, error)
	UpdateCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

type DynamoRepo struct {
	db    *dynamodb.Client
	table string
}

func NewDynamoRepository(db *dynamodb.Client, table string) TodoRepository {
	return &DynamoRepo{db: db, table: table}
}

func (r *DynamoRepo) key(id string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"id": &ddbtypes.AttributeValueMemberS{Value: id},
	}
}

// Scan reads the whole table in one call. No pagination: unbounded result
// size is an accepted limitation of the list operation.
func (r *DynamoRepo) Scan(ctx context.Context) ([]Todo, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.table, err)
	}

	var todos []Todo
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &todos); err != nil {
		return nil, fmt.Errorf("unmarshal scan result: %w", err)
	}

	return todos, nil
}

func (r *DynamoRepo) Put(ctx context.Context, t Todo) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("marshal todo %s: %w", t.ID, err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put todo %s: %w", t.ID, err)
	}

	return nil
}

// Get performs a consistent read so a read-after-write (the update path)
// reflects stored state rather than the caller's assumption.
func (r *DynamoRepo) Get(ctx context.Context, id string) (*Todo, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            r.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get todo %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var t Todo
	if err := attributevalue.UnmarshalMap(out.Item, &t); err != nil {
		return nil, fmt.Errorf("unmarshal todo %s: %w", id, err)
	}

	return &t, nil
}

// UpdateCompleted writes only the completed attribute, leaving title
// untouched. The condition keeps UpdateItem from upserting a shell item
// for an unknown id.
func (r *DynamoRepo) UpdateCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 r.key(id),
		UpdateExpression:    aws.String("SET completed = :completed"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":completed": &ddbtypes.AttributeValueMemberBOOL{Value: completed},
		},
	})
	if err != nil {
		var cfe *ddbtypes.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrNotFound
		}
		return fmt.Errorf("update todo %s: %w", id, err)
	}

	return nil
}

// Delete removes by key without an existence check; deleting an unknown id
// succeeds.
func (r *DynamoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}

	return nil
}
