package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

const productsCollection = "estoque"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateProduct
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"codigo": code}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

// Update applies only the allow-listed fields carried by input; the product
// code itself is never rewritten.
func (r *ProductRepository) Update(ctx context.Context, code string, input ports.UpdateProductInput) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.Name != nil {
		set["produto"] = *input.Name
	}
	if input.Price != nil {
		set["preco"] = *input.Price
	}
	if input.Brand != nil {
		set["marca"] = *input.Brand
	}
	if input.Color != nil {
		set["cor"] = *input.Color
	}
	if input.Quantity != nil {
		set["quantidade"] = *input.Quantity
	}
	if input.Condition != nil {
		set["condicao"] = *input.Condition
	}
	if input.Weight != nil {
		set["peso"] = *input.Weight
	}
	if input.Notes != nil {
		set["observacoes"] = *input.Notes
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"codigo": code}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"codigo": code})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// EnsureIndexes creates the unique product-code index. Idempotent; run once at
// startup.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "codigo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
