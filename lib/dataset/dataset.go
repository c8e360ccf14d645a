// Package dataset loads the five CSV tables of the e-commerce dataset
// into an immutable in-memory snapshot. The snapshot is constructed
// once at startup and shared read-only afterwards; nothing in this
// package mutates it after Load returns.
package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"github.com/shopdash/shopdash/lib/common/compare"
	"github.com/shopdash/shopdash/lib/common/date"
	"github.com/shopdash/shopdash/lib/common/set"
	"github.com/shopdash/shopdash/lib/model"
)

// File names within the data directory.
const (
	OrdersFile   = "orders_dataset.csv"
	PaymentsFile = "order_payments_dataset.csv"
	ProductsFile = "products_dataset.csv"
	SellersFile  = "sellers_dataset.csv"
	ItemsFile    = "order_items_dataset.csv"
)

const timestampLayout = "2006-01-02 15:04:05"

// Snapshot holds the fully loaded tables. It is safe to share across
// goroutines because it is never written after Load returns.
type Snapshot struct {
	Orders   []model.Order
	Payments []model.Payment
	Products []model.Product
	Sellers  []model.Seller
	Items    []model.Item
}

// Period returns the span from the earliest to the latest purchase
// timestamp. A snapshot without orders yields the zero period.
func (s *Snapshot) Period() date.Period {
	var p date.Period
	for _, o := range s.Orders {
		p = p.Extend(date.Day(o.Purchased))
	}
	return p
}

// Categories returns the distinct non-empty product categories, sorted.
func (s *Snapshot) Categories() []string {
	res := set.New[string]()
	for _, p := range s.Products {
		if p.Category != "" {
			res.Add(p.Category)
		}
	}
	return res.Sorted(compare.Ordered[string])
}

// PaymentTypes returns the distinct payment types, sorted.
func (s *Snapshot) PaymentTypes() []string {
	res := set.New[string]()
	for _, p := range s.Payments {
		if p.Type != "" {
			res.Add(p.Type)
		}
	}
	return res.Sorted(compare.Ordered[string])
}

// LoadError reports a file which could not be loaded, either because
// it is missing, malformed, or lacks a required column. Any LoadError
// is fatal at startup.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Options configures loading.
type Options struct {
	// Latin1 decodes the files as ISO 8859-1 instead of UTF-8.
	Latin1 bool
}

// Load reads the five tables from dir. The files load concurrently;
// the first error aborts the load.
func Load(ctx context.Context, dir string, opts Options) (*Snapshot, error) {
	s := new(Snapshot)
	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() (err error) {
		s.Orders, err = readTable(ctx, dir, OrdersFile, opts, parseOrder)
		return err
	})
	wg.Go(func() (err error) {
		s.Payments, err = readTable(ctx, dir, PaymentsFile, opts, parsePayment)
		return err
	})
	wg.Go(func() (err error) {
		s.Products, err = readTable(ctx, dir, ProductsFile, opts, parseProduct)
		return err
	})
	wg.Go(func() (err error) {
		s.Sellers, err = readTable(ctx, dir, SellersFile, opts, parseSeller)
		return err
	})
	wg.Go(func() (err error) {
		s.Items, err = readTable(ctx, dir, ItemsFile, opts, parseItem)
		return err
	})
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	// Orders come back in file order; sort them chronologically so that
	// downstream output does not depend on how the source was written.
	compare.Sort(s.Orders, model.CompareOrders)
	return s, nil
}

// record is one CSV record with header-addressed fields.
type record struct {
	cols map[string]int
	rec  []string
}

func (r record) field(name string) string {
	return r.rec[r.cols[name]]
}

type parseFunc[T any] func(r record) (T, error)

func readTable[T any](ctx context.Context, dir, file string, opts Options, parse parseFunc[T]) (res []T, err error) {
	f, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		return nil, &LoadError{File: file, Err: err}
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			if _, ok := err.(*LoadError); !ok {
				err = &LoadError{File: file, Err: err}
			}
		}
	}()
	var reader io.Reader = bufio.NewReader(f)
	if opts.Latin1 {
		reader = charmap.ISO8859_1.NewDecoder().Reader(reader)
	}
	csvr := csv.NewReader(reader)
	csvr.TrimLeadingSpace = true
	cols, err := readHeader(csvr, requiredColumns[file])
	if err != nil {
		return nil, err
	}
	for i := 0; ; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := csvr.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		t, err := parse(record{cols: cols, rec: rec})
		if err != nil {
			return nil, fmt.Errorf("invalid record %v: %w", rec, err)
		}
		res = append(res, t)
	}
}

var requiredColumns = map[string][]string{
	OrdersFile:   {"order_id", "order_status", "order_purchase_timestamp"},
	PaymentsFile: {"order_id", "payment_type", "payment_installments", "payment_value"},
	ProductsFile: {"product_id", "product_category_name"},
	SellersFile:  {"seller_id", "seller_city", "seller_state"},
	ItemsFile:    {"order_id", "product_id", "seller_id", "price", "freight_value"},
}

func readHeader(csvr *csv.Reader, required []string) (map[string]int, error) {
	header, err := csvr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

func parseOrder(r record) (model.Order, error) {
	purchased, err := time.Parse(timestampLayout, r.field("order_purchase_timestamp"))
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{
		ID:        r.field("order_id"),
		Status:    r.field("order_status"),
		Purchased: purchased,
	}, nil
}

func parsePayment(r record) (model.Payment, error) {
	installments, err := strconv.Atoi(r.field("payment_installments"))
	if err != nil {
		return model.Payment{}, err
	}
	value, err := decimal.NewFromString(r.field("payment_value"))
	if err != nil {
		return model.Payment{}, err
	}
	return model.Payment{
		OrderID:      r.field("order_id"),
		Type:         r.field("payment_type"),
		Installments: installments,
		Value:        value,
	}, nil
}

func parseProduct(r record) (model.Product, error) {
	return model.Product{
		ID:       r.field("product_id"),
		Category: r.field("product_category_name"),
	}, nil
}

func parseSeller(r record) (model.Seller, error) {
	return model.Seller{
		ID:    r.field("seller_id"),
		City:  r.field("seller_city"),
		State: r.field("seller_state"),
	}, nil
}

func parseItem(r record) (model.Item, error) {
	price, err := decimal.NewFromString(r.field("price"))
	if err != nil {
		return model.Item{}, err
	}
	freight, err := decimal.NewFromString(r.field("freight_value"))
	if err != nil {
		return model.Item{}, err
	}
	return model.Item{
		OrderID:   r.field("order_id"),
		ProductID: r.field("product_id"),
		SellerID:  r.field("seller_id"),
		Price:     price,
		Freight:   freight,
	}, nil
}
