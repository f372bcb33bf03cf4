package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"innkeep/internal/domain/rates"
)

// RateProfileRepository persists room rate configuration. Decimals are
// stored as strings to survive the round trip without float drift.
type RateProfileRepository struct {
	col *mongo.Collection
}

func NewRateProfileRepository(db *mongo.Database) *RateProfileRepository {
	return &RateProfileRepository{col: db.Collection("rate_profiles")}
}

func (r *RateProfileRepository) ByRoomType(ctx context.Context, id rates.RoomTypeID) (*rates.RoomRateProfile, error) {
	var doc rateProfileDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, rates.ErrProfileNotFound
		}
		return nil, err
	}
	return doc.toProfile()
}

func (r *RateProfileRepository) Save(ctx context.Context, profile *rates.RoomRateProfile) error {
	doc, err := newRateProfileDocument(profile)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": doc.ID, "version": profile.Version}
	doc.Version = profile.Version + 1
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": doc}, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	profile.Version = doc.Version
	return nil
}

func (r *RateProfileRepository) List(ctx context.Context) ([]*rates.RoomRateProfile, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*rates.RoomRateProfile
	for cursor.Next(ctx) {
		var doc rateProfileDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		profile, err := doc.toProfile()
		if err != nil {
			return nil, err
		}
		out = append(out, profile)
	}
	return out, cursor.Err()
}

type rateProfileDocument struct {
	ID             string             `bson:"_id"`
	DisplayName    string             `bson:"display_name"`
	BasePrice      string             `bson:"base_price"`
	RootCost       string             `bson:"root_cost"`
	CommissionRate *string            `bson:"commission_rate,omitempty"`
	Overrides      []overrideDocument `bson:"overrides,omitempty"`
	UpdatedAt      int64              `bson:"updated_at"`
	Version        int64              `bson:"version"`
}

type overrideDocument struct {
	Date           int64   `bson:"date"`
	Price          *string `bson:"price,omitempty"`
	RootPrice      *string `bson:"root_price,omitempty"`
	CommissionRate *string `bson:"commission_rate,omitempty"`
}

func newRateProfileDocument(p *rates.RoomRateProfile) (rateProfileDocument, error) {
	doc := rateProfileDocument{
		ID:             string(p.RoomType),
		DisplayName:    p.DisplayName,
		BasePrice:      p.BasePrice.String(),
		RootCost:       p.RootCost.String(),
		CommissionRate: encodeDecimalPtr(p.CommissionRate),
		UpdatedAt:      p.UpdatedAt.UnixMilli(),
		Version:        p.Version,
	}
	for _, o := range p.Overrides {
		doc.Overrides = append(doc.Overrides, overrideDocument{
			Date:           o.Date.UnixMilli(),
			Price:          encodeDecimalPtr(o.Price),
			RootPrice:      encodeDecimalPtr(o.RootPrice),
			CommissionRate: encodeDecimalPtr(o.CommissionRate),
		})
	}
	return doc, nil
}

func (d rateProfileDocument) toProfile() (*rates.RoomRateProfile, error) {
	basePrice, err := decimal.NewFromString(d.BasePrice)
	if err != nil {
		return nil, err
	}
	rootCost, err := decimal.NewFromString(d.RootCost)
	if err != nil {
		return nil, err
	}
	commission, err := decodeDecimalPtr(d.CommissionRate)
	if err != nil {
		return nil, err
	}
	profile := &rates.RoomRateProfile{
		RoomType:       rates.RoomTypeID(d.ID),
		DisplayName:    d.DisplayName,
		BasePrice:      basePrice,
		RootCost:       rootCost,
		CommissionRate: commission,
		UpdatedAt:      timestampToTime(d.UpdatedAt),
		Version:        d.Version,
	}
	for _, o := range d.Overrides {
		price, err := decodeDecimalPtr(o.Price)
		if err != nil {
			return nil, err
		}
		rootPrice, err := decodeDecimalPtr(o.RootPrice)
		if err != nil {
			return nil, err
		}
		overrideCommission, err := decodeDecimalPtr(o.CommissionRate)
		if err != nil {
			return nil, err
		}
		profile.Overrides = append(profile.Overrides, rates.RateOverride{
			Date:           timestampToTime(o.Date),
			Price:          price,
			RootPrice:      rootPrice,
			CommissionRate: overrideCommission,
		})
	}
	return profile, nil
}

func encodeDecimalPtr(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func decodeDecimalPtr(v *string) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
