// Package compare provides generic three-way comparisons.
package compare

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/sboehler/txnlog/lib/currency"
)

type Order int

const (
	Smaller Order = -1
	Equal   Order = 0
	Greater Order = 1
)

type Compare[T any] func(t1, t2 T) Order

func Ordered[T constraints.Ordered](t1, t2 T) Order {
	switch {
	case t1 < t2:
		return Smaller
	case t1 > t2:
		return Greater
	}
	return Equal
}

func Decimal(d1, d2 decimal.Decimal) Order {
	return Order(d1.Cmp(d2))
}

func Currency(c1, c2 currency.Currency) Order {
	return Decimal(c1.Decimal(), c2.Decimal())
}

// Desc reverses the given order.
func Desc[T any](c Compare[T]) Compare[T] {
	return func(t1, t2 T) Order {
		return c(t2, t1)
	}
}

// Combine orders by the first comparison which does not return Equal.
func Combine[T any](cs ...Compare[T]) Compare[T] {
	return func(t1, t2 T) Order {
		for _, c := range cs {
			if o := c(t1, t2); o != Equal {
				return o
			}
		}
		return Equal
	}
}

// Sort sorts ts stably.
func Sort[T any](ts []T, c Compare[T]) {
	slices.SortStableFunc(ts, func(t1, t2 T) bool {
		return c(t1, t2) == Smaller
	})
}
