package mongo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"innkeep/internal/domain/billing"
	"innkeep/internal/domain/rates"
	domainreservation "innkeep/internal/domain/reservation"
	domainrange "innkeep/internal/domain/shared/daterange"
	"innkeep/internal/domain/stay"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("agg_reservation")}
}

func (r *ReservationRepository) ByID(ctx context.Context, id domainreservation.ReservationID) (*domainreservation.Reservation, error) {
	var doc reservationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainreservation.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toAggregate()
}

func (r *ReservationRepository) Save(ctx context.Context, res *domainreservation.Reservation) error {
	doc := newReservationDocument(res)
	filter := bson.M{"_id": doc.ID, "version": res.Version}
	doc.Version = res.Version + 1
	opts := options.Update().SetUpsert(true)
	result, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": doc}, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	res.Version = doc.Version
	return nil
}

type reservationDocument struct {
	ID              string               `bson:"_id"`
	GuestName       string               `bson:"guest_name"`
	Range           rangeDocument        `bson:"range"`
	Lines           []lineDocument       `bson:"lines,omitempty"`
	CardNumber      string               `bson:"card_number,omitempty"`
	PaymentMode     string               `bson:"payment_mode,omitempty"`
	LegacyCaptured  bool                 `bson:"legacy_captured"`
	CapturedPayment *capturedPaymentDoc  `bson:"captured_payment,omitempty"`
	PaidOnline      string               `bson:"paid_online"`
	PaidOffline     string               `bson:"paid_offline"`
	Allocations     []allocationDocument `bson:"allocations,omitempty"`
	State           string               `bson:"state"`
	CreatedAt       int64                `bson:"created_at"`
	UpdatedAt       int64                `bson:"updated_at"`
	Version         int64                `bson:"version"`
}

type rangeDocument struct {
	CheckIn  int64 `bson:"check_in"`
	CheckOut int64 `bson:"check_out"`
}

type lineDocument struct {
	RoomType         string          `bson:"room_type"`
	DisplayName      string          `bson:"display_name"`
	Count            int             `bson:"count"`
	Nights           []nightDocument `bson:"nights,omitempty"`
	ChosenPrice      string          `bson:"chosen_price"`
	RootToTotalRatio string          `bson:"root_to_total_ratio"`
	CommissionRate   string          `bson:"commission_rate"`
}

type nightDocument struct {
	Date                   int64  `bson:"date"`
	Price                  string `bson:"price"`
	RootPrice              string `bson:"root_price"`
	CommissionRate         string `bson:"commission_rate"`
	TotalWithCommission    string `bson:"total_with_commission"`
	TotalWithoutCommission string `bson:"total_without_commission"`
}

type allocationDocument struct {
	RoomType    string          `bson:"room_type"`
	DisplayName string          `bson:"display_name"`
	Nights      []nightDocument `bson:"nights,omitempty"`
	ChosenPrice string          `bson:"chosen_price"`
	GuestTotal  string          `bson:"guest_total"`
	OwnerTotal  string          `bson:"owner_total"`
}

type capturedPaymentDoc struct {
	Initial   captureDocument   `bson:"initial"`
	Followups []captureDocument `bson:"followups,omitempty"`
}

type captureDocument struct {
	Amount string `bson:"amount"`
	Status string `bson:"status"`
	At     int64  `bson:"at"`
}

func newReservationDocument(r *domainreservation.Reservation) reservationDocument {
	doc := reservationDocument{
		ID:             string(r.ID),
		GuestName:      r.GuestName,
		Range:          rangeDocument{CheckIn: r.Range.CheckIn.UnixMilli(), CheckOut: r.Range.CheckOut.UnixMilli()},
		CardNumber:     r.CardNumber,
		PaymentMode:    r.PaymentMode,
		LegacyCaptured: r.LegacyCaptured,
		PaidOnline:     r.PaidOnline.String(),
		PaidOffline:    r.PaidOffline.String(),
		State:          string(r.State),
		CreatedAt:      r.CreatedAt.UnixMilli(),
		UpdatedAt:      r.UpdatedAt.UnixMilli(),
		Version:        r.Version,
	}
	for i := range r.Lines {
		doc.Lines = append(doc.Lines, newLineDocument(&r.Lines[i]))
	}
	for i := range r.Allocations {
		doc.Allocations = append(doc.Allocations, newAllocationDocument(&r.Allocations[i]))
	}
	if r.CapturedPayment != nil {
		captured := capturedPaymentDoc{Initial: newCaptureDocument(r.CapturedPayment.Initial)}
		for _, f := range r.CapturedPayment.Followups {
			captured.Followups = append(captured.Followups, newCaptureDocument(f))
		}
		doc.CapturedPayment = &captured
	}
	return doc
}

func newLineDocument(l *stay.PickedRoomLine) lineDocument {
	doc := lineDocument{
		RoomType:         string(l.RoomType),
		DisplayName:      l.DisplayName,
		Count:            l.Count,
		ChosenPrice:      l.ChosenPrice.String(),
		RootToTotalRatio: l.RootToTotalRatio.String(),
		CommissionRate:   l.CommissionRate.String(),
	}
	for _, n := range l.PricingByDay {
		doc.Nights = append(doc.Nights, newNightDocument(n))
	}
	return doc
}

func newNightDocument(n stay.NightlyPriceRecord) nightDocument {
	return nightDocument{
		Date:                   n.Date.UnixMilli(),
		Price:                  n.Price.String(),
		RootPrice:              n.RootPrice.String(),
		CommissionRate:         n.CommissionRate.String(),
		TotalWithCommission:    n.TotalPriceWithCommission.String(),
		TotalWithoutCommission: n.TotalPriceWithoutCommission.String(),
	}
}

func newAllocationDocument(a *stay.RoomAllocation) allocationDocument {
	doc := allocationDocument{
		RoomType:    string(a.RoomType),
		DisplayName: a.DisplayName,
		ChosenPrice: a.ChosenPrice.String(),
		GuestTotal:  a.GuestTotal.String(),
		OwnerTotal:  a.OwnerTotal.String(),
	}
	for _, n := range a.PricingByDay {
		doc.Nights = append(doc.Nights, newNightDocument(n))
	}
	return doc
}

func newCaptureDocument(c billing.Capture) captureDocument {
	return captureDocument{Amount: c.Amount.String(), Status: c.Status, At: c.At.UnixMilli()}
}

func (d reservationDocument) toAggregate() (*domainreservation.Reservation, error) {
	paidOnline, err := decodeDecimal(d.PaidOnline)
	if err != nil {
		return nil, err
	}
	paidOffline, err := decodeDecimal(d.PaidOffline)
	if err != nil {
		return nil, err
	}
	agg := &domainreservation.Reservation{
		ID:             domainreservation.ReservationID(d.ID),
		GuestName:      d.GuestName,
		Range:          domainrange.DateRange{CheckIn: timestampToTime(d.Range.CheckIn), CheckOut: timestampToTime(d.Range.CheckOut)},
		CardNumber:     d.CardNumber,
		PaymentMode:    d.PaymentMode,
		LegacyCaptured: d.LegacyCaptured,
		PaidOnline:     paidOnline,
		PaidOffline:    paidOffline,
		State:          domainreservation.State(d.State),
		CreatedAt:      timestampToTime(d.CreatedAt),
		UpdatedAt:      timestampToTime(d.UpdatedAt),
		Version:        d.Version,
	}
	for _, l := range d.Lines {
		line, err := l.toLine()
		if err != nil {
			return nil, err
		}
		agg.Lines = append(agg.Lines, line)
	}
	for _, a := range d.Allocations {
		allocation, err := a.toAllocation()
		if err != nil {
			return nil, err
		}
		agg.Allocations = append(agg.Allocations, allocation)
	}
	if d.CapturedPayment != nil {
		captured, err := d.CapturedPayment.toCapturedPayment()
		if err != nil {
			return nil, err
		}
		agg.CapturedPayment = captured
	}
	return agg, nil
}

func (d lineDocument) toLine() (stay.PickedRoomLine, error) {
	chosen, err := decodeDecimal(d.ChosenPrice)
	if err != nil {
		return stay.PickedRoomLine{}, err
	}
	ratio, err := decodeDecimal(d.RootToTotalRatio)
	if err != nil {
		return stay.PickedRoomLine{}, err
	}
	commission, err := decodeDecimal(d.CommissionRate)
	if err != nil {
		return stay.PickedRoomLine{}, err
	}
	line := stay.PickedRoomLine{
		RoomType:         rates.RoomTypeID(d.RoomType),
		DisplayName:      d.DisplayName,
		Count:            d.Count,
		ChosenPrice:      chosen,
		RootToTotalRatio: ratio,
		CommissionRate:   commission,
	}
	for _, n := range d.Nights {
		night, err := n.toRecord()
		if err != nil {
			return stay.PickedRoomLine{}, err
		}
		line.PricingByDay = append(line.PricingByDay, night)
	}
	return line, nil
}

func (d nightDocument) toRecord() (stay.NightlyPriceRecord, error) {
	price, err := decodeDecimal(d.Price)
	if err != nil {
		return stay.NightlyPriceRecord{}, err
	}
	rootPrice, err := decodeDecimal(d.RootPrice)
	if err != nil {
		return stay.NightlyPriceRecord{}, err
	}
	commission, err := decodeDecimal(d.CommissionRate)
	if err != nil {
		return stay.NightlyPriceRecord{}, err
	}
	total, err := decodeDecimal(d.TotalWithCommission)
	if err != nil {
		return stay.NightlyPriceRecord{}, err
	}
	totalWithout, err := decodeDecimal(d.TotalWithoutCommission)
	if err != nil {
		return stay.NightlyPriceRecord{}, err
	}
	return stay.NightlyPriceRecord{
		Date:                        timestampToTime(d.Date),
		Price:                       price,
		RootPrice:                   rootPrice,
		CommissionRate:              commission,
		TotalPriceWithCommission:    total,
		TotalPriceWithoutCommission: totalWithout,
	}, nil
}

func (d allocationDocument) toAllocation() (stay.RoomAllocation, error) {
	chosen, err := decodeDecimal(d.ChosenPrice)
	if err != nil {
		return stay.RoomAllocation{}, err
	}
	guestTotal, err := decodeDecimal(d.GuestTotal)
	if err != nil {
		return stay.RoomAllocation{}, err
	}
	ownerTotal, err := decodeDecimal(d.OwnerTotal)
	if err != nil {
		return stay.RoomAllocation{}, err
	}
	allocation := stay.RoomAllocation{
		RoomType:    rates.RoomTypeID(d.RoomType),
		DisplayName: d.DisplayName,
		ChosenPrice: chosen,
		GuestTotal:  guestTotal,
		OwnerTotal:  ownerTotal,
	}
	for _, n := range d.Nights {
		night, err := n.toRecord()
		if err != nil {
			return stay.RoomAllocation{}, err
		}
		allocation.PricingByDay = append(allocation.PricingByDay, night)
	}
	return allocation, nil
}

func (d capturedPaymentDoc) toCapturedPayment() (*billing.CapturedPayment, error) {
	initial, err := d.Initial.toCapture()
	if err != nil {
		return nil, err
	}
	captured := &billing.CapturedPayment{Initial: initial}
	for _, f := range d.Followups {
		followup, err := f.toCapture()
		if err != nil {
			return nil, err
		}
		captured.Followups = append(captured.Followups, followup)
	}
	return captured, nil
}

func (d captureDocument) toCapture() (billing.Capture, error) {
	amount, err := decodeDecimal(d.Amount)
	if err != nil {
		return billing.Capture{}, err
	}
	return billing.Capture{Amount: amount, Status: d.Status, At: timestampToTime(d.At)}, nil
}

func decodeDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
