package dto

import "github.com/shopspring/decimal"

type Quote struct {
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	Nights     int             `json:"nights"`
	Lines      []RoomLine      `json:"lines"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	OwnerTotal decimal.Decimal `json:"owner_total"`
}
