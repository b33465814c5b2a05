// Package mongo persists bank branches in MongoDB. Branch documents
// carry an application-assigned integer _id drawn from a counters
// collection with an atomic $inc, so IDs stay dense and monotonic even
// under concurrent creates.
package mongo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bfb/corebank/internal/adapter/repository/retry"
	"github.com/bfb/corebank/internal/cache"
	"github.com/bfb/corebank/internal/domain"
)

const (
	branchCollection  = "branches"
	counterCollection = "counters"
	branchCounterID   = "branchid"

	keyBranchPrefix = "branches:"
	keyBranchAll    = "branches:all"
)

func keyBranchID(id int) string {
	return keyBranchPrefix + "id:" + strconv.Itoa(id)
}

func keyBranchesByBank(bankID int) string {
	return keyBranchPrefix + "bank:" + strconv.Itoa(bankID)
}

// branchDoc is the stored shape of a branch.
type branchDoc struct {
	ID          int       `bson:"_id"`
	BankID      int       `bson:"bankId"`
	BranchName  string    `bson:"branchName"`
	Address     string    `bson:"address"`
	City        string    `bson:"city"`
	State       string    `bson:"state"`
	ZipCode     string    `bson:"zipCode"`
	PhoneNumber string    `bson:"phoneNumber"`
	IsActive    bool      `bson:"isActive"`
	CreatedDate time.Time `bson:"createdDate"`
}

// BankBranchRepository implements usecase.BankBranchRepository.
type BankBranchRepository struct {
	branches *mongo.Collection
	counters *mongo.Collection
	cache    *cache.Cache
	retry    *retry.Policy
}

// NewBankBranchRepository creates a new BankBranchRepository against the
// given database.
func NewBankBranchRepository(db *mongo.Database, c *cache.Cache, p *retry.Policy) *BankBranchRepository {
	return &BankBranchRepository{
		branches: db.Collection(branchCollection),
		counters: db.Collection(counterCollection),
		cache:    c,
		retry:    p,
	}
}

// GetAll lists all branches ordered by ID.
func (r *BankBranchRepository) GetAll(ctx context.Context) ([]*domain.BankBranch, error) {
	if cached, ok := r.cache.Get(keyBranchAll); ok {
		return cached.([]*domain.BankBranch), nil
	}

	branches, err := r.find(ctx, "GetAllBranches", bson.M{})
	if err != nil {
		return nil, err
	}

	r.cache.Set(keyBranchAll, branches)

	return branches, nil
}

// GetByID retrieves a branch by ID.
func (r *BankBranchRepository) GetByID(ctx context.Context, id int) (*domain.BankBranch, error) {
	key := keyBranchID(id)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*domain.BankBranch), nil
	}

	var branch *domain.BankBranch
	err := r.retry.Do(ctx, "GetBranchByID", func() error {
		var doc branchDoc
		err := r.branches.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.NotFoundError("bank branch", id)
		}
		if err != nil {
			return err
		}

		branch = docToBranch(doc)

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, branch)

	return branch, nil
}

// GetByBankID lists the branches of one bank.
func (r *BankBranchRepository) GetByBankID(ctx context.Context, bankID int) ([]*domain.BankBranch, error) {
	key := keyBranchesByBank(bankID)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]*domain.BankBranch), nil
	}

	branches, err := r.find(ctx, "GetBranchesByBankID", bson.M{"bankId": bankID})
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, branches)

	return branches, nil
}

// Create inserts a branch under a freshly allocated ID.
func (r *BankBranchRepository) Create(ctx context.Context, branch *domain.BankBranch) (*domain.BankBranch, error) {
	created := *branch

	err := r.retry.Do(ctx, "CreateBranch", func() error {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}

		created.ID = id
		_, err = r.branches.InsertOne(ctx, branchToDoc(&created))

		return err
	})
	if err != nil {
		return nil, err
	}

	r.cache.InvalidatePrefix(keyBranchPrefix)

	return &created, nil
}

// Update fully replaces a branch document.
func (r *BankBranchRepository) Update(ctx context.Context, id int, branch *domain.BankBranch) error {
	err := r.retry.Do(ctx, "UpdateBranch", func() error {
		updated := *branch
		updated.ID = id

		result, err := r.branches.ReplaceOne(ctx, bson.M{"_id": id}, branchToDoc(&updated))
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return domain.NotFoundError("bank branch", id)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyBranchPrefix)

	return nil
}

// Delete removes a branch.
func (r *BankBranchRepository) Delete(ctx context.Context, id int) error {
	err := r.retry.Do(ctx, "DeleteBranch", func() error {
		result, err := r.branches.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return domain.NotFoundError("bank branch", id)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.InvalidatePrefix(keyBranchPrefix)

	return nil
}

// nextID draws the next branch ID from the counters collection. The
// upsert plus $inc is atomic on the server, so two concurrent creates
// can never observe the same value.
func (r *BankBranchRepository) nextID(ctx context.Context) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": branchCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

func (r *BankBranchRepository) find(ctx context.Context, operation string, filter bson.M) ([]*domain.BankBranch, error) {
	var branches []*domain.BankBranch
	err := r.retry.Do(ctx, operation, func() error {
		cursor, err := r.branches.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		var docs []branchDoc
		if err := cursor.All(ctx, &docs); err != nil {
			return err
		}

		branches = make([]*domain.BankBranch, 0, len(docs))
		for _, doc := range docs {
			branches = append(branches, docToBranch(doc))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return branches, nil
}

func docToBranch(doc branchDoc) *domain.BankBranch {
	return &domain.BankBranch{
		ID:          doc.ID,
		BankID:      doc.BankID,
		BranchName:  doc.BranchName,
		Address:     doc.Address,
		City:        doc.City,
		State:       doc.State,
		ZipCode:     doc.ZipCode,
		PhoneNumber: doc.PhoneNumber,
		IsActive:    doc.IsActive,
		CreatedDate: doc.CreatedDate,
	}
}

func branchToDoc(branch *domain.BankBranch) branchDoc {
	return branchDoc{
		ID:          branch.ID,
		BankID:      branch.BankID,
		BranchName:  branch.BranchName,
		Address:     branch.Address,
		City:        branch.City,
		State:       branch.State,
		ZipCode:     branch.ZipCode,
		PhoneNumber: branch.PhoneNumber,
		IsActive:    branch.IsActive,
		CreatedDate: branch.CreatedDate,
	}
}
