package domain

import "github.com/shopspring/decimal"

const NoVotesMessage = "No votes on this movie yet!"

type Rating struct {
	Votes   int
	Average decimal.Decimal
}

// AggregateRating computes the arithmetic mean of the given vote values.
func AggregateRating(values []int) Rating {
	if len(values) == 0 {
		return Rating{Average: decimal.Zero}
	}

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromInt(int64(v)))
	}

	return Rating{
		Votes:   len(values),
		Average: sum.Div(decimal.NewFromInt(int64(len(values)))),
	}
}

func (r Rating) HasVotes() bool {
	return r.Votes > 0
}

func (r Rating) String() string {
	if !r.HasVotes() {
		return NoVotesMessage
	}

	return r.Average.String()
}

type RatingSummary struct {
	Movie         MovieDetails
	AverageRating string
}
