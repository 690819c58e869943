package domain

// RankingEntry is one place in the customers-of-the-month ranking: a customer
// together with the total scheduled minutes that earned the place. Entries are
// derived per aggregation call and never persisted.
type RankingEntry struct {
	Customer     Customer
	TotalMinutes int64
}

// CustomerRanking holds the top places of a monthly ranking. Unfilled places
// stay nil: fewer qualifying customers than places is a normal outcome, not an
// error.
type CustomerRanking [TopCustomersPlaces]*RankingEntry
