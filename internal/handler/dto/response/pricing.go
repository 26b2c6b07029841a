package response

import "gym-reservation-engine/internal/domain/pricing"

func quoteBody(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		HourlyRate:      q.HourlyRate,
		Hours:           q.Hours,
		BaseAmount:      q.BaseAmount,
		DiscountPercent: q.Discount.Percent,
		DiscountSource:  string(q.Discount.Source),
		DiscountCardID:  q.Discount.CardID,
		DiscountAmount:  q.DiscountAmount,
		Amount:          q.Amount,
	}
}
